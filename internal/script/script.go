package script

// Tone is the stylistic register of a generated script.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneEnthusiastic Tone = "enthusiastic"
)

// ParseTone maps a raw tone value to a Tone. Unrecognized values fall
// back to professional; callers are never rejected over the tone.
func ParseTone(s string) Tone {
	switch Tone(s) {
	case ToneProfessional, ToneCasual, ToneEnthusiastic:
		return Tone(s)
	default:
		return ToneProfessional
	}
}

// ScriptType is the call context a script is written for.
type ScriptType string

const (
	TypeColdCall     ScriptType = "cold_call"
	TypePresentation ScriptType = "presentation"
)

// ParseScriptType maps a raw script type value to a ScriptType. The branch
// is deliberately binary: exactly "cold_call" selects the cold-call
// template family, anything else selects presentation.
func ParseScriptType(s string) ScriptType {
	if ScriptType(s) == TypeColdCall {
		return TypeColdCall
	}
	return TypePresentation
}

// Request carries the inputs for one script composition. Tone and
// ScriptType are kept raw so the fallback policy stays inside the composer.
type Request struct {
	ProductName    string
	TargetAudience string
	KeyBenefits    []string
	Tone           string
	ScriptType     string
}

// Result is the outcome of a composition. ScriptType echoes the raw
// requested value, not the resolved template family.
type Result struct {
	Success           bool
	Script            string
	ScriptType        string
	WordCount         int
	EstimatedDuration string
	Tips              []string
}
