package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() Request {
	return Request{
		ProductName:    "AI Analytics Platform",
		TargetAudience: "Small business owners",
		KeyBenefits:    []string{"Saves time", "Increases revenue", "Easy to use"},
		Tone:           "professional",
		ScriptType:     "cold_call",
	}
}

func TestComposeColdCallProfessionalScenario(t *testing.T) {
	res, err := NewComposer(Options{}).Compose(validRequest())
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "cold_call", res.ScriptType)
	assert.Contains(t, res.Script, "AI Analytics Platform")
	assert.Contains(t, res.Script, "• Saves time")
	assert.Contains(t, res.Script, "• Increases revenue")
	assert.Contains(t, res.Script, "• Easy to use")
	assert.Len(t, res.Tips, 5)
	assert.NotEmpty(t, res.EstimatedDuration)
}

func TestComposeWordCountMatchesScript(t *testing.T) {
	requests := []Request{
		validRequest(),
		{ProductName: "X", TargetAudience: "Y", KeyBenefits: nil, Tone: "casual", ScriptType: "presentation"},
		{ProductName: "", TargetAudience: "", KeyBenefits: []string{""}, Tone: "enthusiastic", ScriptType: "cold_call"},
		{ProductName: "CRM Suite", TargetAudience: "sales teams", KeyBenefits: []string{"one"}, Tone: "weird", ScriptType: "whatever"},
	}

	for _, req := range requests {
		res, err := NewComposer(Options{}).Compose(req)
		require.NoError(t, err)
		assert.Equal(t, len(strings.Fields(res.Script)), res.WordCount)
	}
}

func TestComposeTipsNeverExceedFive(t *testing.T) {
	tones := []string{"professional", "casual", "enthusiastic", "bogus"}
	types := []string{"cold_call", "presentation", "bogus"}

	for _, tone := range tones {
		for _, st := range types {
			req := validRequest()
			req.Tone = tone
			req.ScriptType = st

			res, err := NewComposer(Options{}).Compose(req)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(res.Tips), 5, "tone=%s type=%s", tone, st)
		}
	}
}

func TestComposeUnknownToneFallsBackToProfessional(t *testing.T) {
	known := validRequest()
	unknown := validRequest()
	unknown.Tone = "sarcastic"

	knownRes, err := NewComposer(Options{}).Compose(known)
	require.NoError(t, err)

	unknownRes, err := NewComposer(Options{}).Compose(unknown)
	require.NoError(t, err)

	assert.Equal(t, knownRes.Script, unknownRes.Script)
	assert.Equal(t, knownRes.WordCount, unknownRes.WordCount)
}

func TestComposeEmptyBenefitsUsesFallbackHook(t *testing.T) {
	req := validRequest()
	req.KeyBenefits = nil

	res, err := NewComposer(Options{}).Compose(req)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Contains(t, res.Script, "improve your business")
	assert.NotContains(t, res.Script, "•")
}

func TestComposeDropsBlankBenefits(t *testing.T) {
	req := validRequest()
	req.KeyBenefits = []string{"Saves time", "   ", "", "Easy to use"}

	res, err := NewComposer(Options{}).Compose(req)
	require.NoError(t, err)

	assert.Contains(t, res.Script, "• Saves time")
	assert.Contains(t, res.Script, "• Easy to use")
	assert.Equal(t, 2, strings.Count(res.Script, "•"))
}

func TestComposeToneTipTruncation(t *testing.T) {
	// The tone tip is appended after the full five-item base list and then
	// truncated away; the result is exactly the base list.
	res, err := NewComposer(Options{}).Compose(validRequest())
	require.NoError(t, err)

	assert.Equal(t, coldCallTips, res.Tips)
	assert.NotContains(t, res.Tips, toneTips[ToneProfessional])
}

func TestComposeIsDeterministic(t *testing.T) {
	req := validRequest()

	first, err := NewComposer(Options{}).Compose(req)
	require.NoError(t, err)

	second, err := NewComposer(Options{}).Compose(req)
	require.NoError(t, err)

	assert.Equal(t, first.Script, second.Script)
	assert.Equal(t, first.WordCount, second.WordCount)
}

func TestComposeSingleTemplateIgnoresToneAndType(t *testing.T) {
	req := validRequest()
	req.Tone = "enthusiastic"
	req.ScriptType = "presentation"

	collapsed, err := NewComposer(Options{SingleTemplate: true}).Compose(req)
	require.NoError(t, err)

	baseline := validRequest()
	full, err := NewComposer(Options{}).Compose(baseline)
	require.NoError(t, err)

	assert.Equal(t, full.Script, collapsed.Script)
	assert.Empty(t, collapsed.EstimatedDuration)
	assert.Empty(t, collapsed.Tips)
	// The requested type is echoed even though the template was collapsed.
	assert.Equal(t, "presentation", collapsed.ScriptType)
}

func TestComposeStrictValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		message string
	}{
		{
			name:    "empty product name",
			mutate:  func(r *Request) { r.ProductName = "  " },
			message: "product name is required",
		},
		{
			name:    "empty target audience",
			mutate:  func(r *Request) { r.TargetAudience = "" },
			message: "target audience is required",
		},
		{
			name:    "no benefits",
			mutate:  func(r *Request) { r.KeyBenefits = nil },
			message: "at least one key benefit is required",
		},
		{
			name:    "only blank benefits",
			mutate:  func(r *Request) { r.KeyBenefits = []string{"", "   "} },
			message: "at least one key benefit is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			res, err := NewComposer(Options{Strict: true, SingleTemplate: true}).Compose(req)
			assert.Nil(t, res)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

func TestComposeStrictAcceptsValidInput(t *testing.T) {
	res, err := NewComposer(Options{Strict: true, SingleTemplate: true}).Compose(validRequest())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Positive(t, res.WordCount)
}

func TestEstimateDuration(t *testing.T) {
	assert.Equal(t, "1-2 minutes", estimateDuration(0))
	assert.Equal(t, "1-2 minutes", estimateDuration(149))
	assert.Equal(t, "1-2 minutes", estimateDuration(150))
	assert.Equal(t, "2-3 minutes", estimateDuration(300))
	assert.Equal(t, "3-4 minutes", estimateDuration(599))
}
