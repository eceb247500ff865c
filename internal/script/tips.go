package script

// maxTips caps the tip list in every result.
const maxTips = 5

var coldCallTips = []string{
	"Speak clearly and at a moderate pace",
	"Pause after questions to allow responses",
	"Be prepared for objections",
	"Have your calendar ready for scheduling",
	"Practice saying the product name confidently",
}

var presentationTips = []string{
	"Make eye contact with your audience",
	"Use gestures to emphasize key points",
	"Pause for questions at natural breaks",
	"Have backup slides ready",
	"End with a clear call to action",
}

var toneTips = map[Tone]string{
	ToneProfessional: "Maintain professional demeanor throughout",
	ToneCasual:       "Keep the conversation natural and relaxed",
	ToneEnthusiastic: "Let your genuine excitement show through",
}

// tipsFor builds the coaching tip list: the fixed base list for the script
// type, then the tone-specific tip, then a hard truncation to maxTips.
// The append-then-truncate order is part of the contract. With a full base
// list the tone tip lands at position six and is dropped.
func tipsFor(scriptType ScriptType, tone Tone) []string {
	var base []string
	if scriptType == TypeColdCall {
		base = coldCallTips
	} else {
		base = presentationTips
	}

	tips := make([]string, 0, len(base)+1)
	tips = append(tips, base...)

	toneTip, ok := toneTips[tone]
	if !ok {
		toneTip = toneTips[ToneProfessional]
	}
	tips = append(tips, toneTip)

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}

// failureTips is the tip list attached to a failed composition.
func failureTips() []string {
	return []string{"Please try again with valid parameters"}
}
