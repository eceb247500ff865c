package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHasAllSixTemplates(t *testing.T) {
	require.Len(t, catalog, 6)

	for _, scriptType := range []ScriptType{TypeColdCall, TypePresentation} {
		for _, tone := range []Tone{ToneProfessional, ToneCasual, ToneEnthusiastic} {
			_, ok := catalog[templateKey{scriptType, tone}]
			assert.True(t, ok, "missing template for %s/%s", scriptType, tone)
		}
	}
}

func TestLookupTemplateDefaultArm(t *testing.T) {
	// A tone outside the catalog resolves to the professional phrasing of
	// the same script-type family.
	got := lookupTemplate(TypePresentation, Tone("sarcastic"))
	want := catalog[templateKey{TypePresentation, ToneProfessional}]
	assert.Same(t, want, got)
}

func TestParseTone(t *testing.T) {
	assert.Equal(t, ToneCasual, ParseTone("casual"))
	assert.Equal(t, ToneEnthusiastic, ParseTone("enthusiastic"))
	assert.Equal(t, ToneProfessional, ParseTone("professional"))
	assert.Equal(t, ToneProfessional, ParseTone(""))
	assert.Equal(t, ToneProfessional, ParseTone("PROFESSIONAL"))
}

func TestParseScriptTypeBinaryBranch(t *testing.T) {
	assert.Equal(t, TypeColdCall, ParseScriptType("cold_call"))

	// Everything that is not exactly "cold_call" is a presentation.
	assert.Equal(t, TypePresentation, ParseScriptType("presentation"))
	assert.Equal(t, TypePresentation, ParseScriptType(""))
	assert.Equal(t, TypePresentation, ParseScriptType("COLD_CALL"))
	assert.Equal(t, TypePresentation, ParseScriptType("webinar"))
}
