package script

import (
	"bytes"
	"fmt"
	"strings"
)

// fallbackPrimaryBenefit is the hook phrase used when no benefits are supplied.
const fallbackPrimaryBenefit = "improve your business"

// wordsPerMinute is the speaking-rate assumption behind duration estimates.
const wordsPerMinute = 150

// Options configure a Composer.
type Options struct {
	// Strict rejects empty inputs with a ValidationError before composing.
	Strict bool

	// SingleTemplate collapses the tone and script-type matrix to the
	// professional cold-call template and skips duration and tips.
	SingleTemplate bool
}

// Composer turns a Request into a formatted sales-call script. It is pure:
// identical inputs always produce byte-identical scripts.
type Composer struct {
	opts Options
}

// NewComposer creates a Composer with the given options.
func NewComposer(opts Options) *Composer {
	return &Composer{opts: opts}
}

// Compose selects a template, interpolates the request into it, and
// derives word count, duration, and tips.
//
// In strict mode, invalid input returns a *ValidationError and any later
// failure is returned as an error for the boundary to surface. Otherwise
// failures are folded into a Result with Success=false, so the caller
// always gets a well-formed payload.
func (c *Composer) Compose(req Request) (*Result, error) {
	if c.opts.Strict {
		if err := validate(req); err != nil {
			return nil, err
		}
	}

	tone := ParseTone(req.Tone)
	scriptType := ParseScriptType(req.ScriptType)
	if c.opts.SingleTemplate {
		tone = ToneProfessional
		scriptType = TypeColdCall
	}

	data := templateData{
		ProductName:    req.ProductName,
		TargetAudience: req.TargetAudience,
		BenefitsList:   benefitsList(req.KeyBenefits),
		PrimaryBenefit: primaryBenefit(req.KeyBenefits),
	}

	var buf bytes.Buffer
	if err := lookupTemplate(scriptType, tone).Execute(&buf, data); err != nil {
		if c.opts.Strict {
			return nil, fmt.Errorf("execute template: %w", err)
		}
		return failureResult(req, err), nil
	}

	text := strings.TrimSpace(buf.String())

	result := &Result{
		Success:    true,
		Script:     text,
		ScriptType: req.ScriptType,
		WordCount:  len(strings.Fields(text)),
	}

	if !c.opts.SingleTemplate {
		result.EstimatedDuration = estimateDuration(result.WordCount)
		result.Tips = tipsFor(scriptType, tone)
	}

	return result, nil
}

// validate enforces the strict-variant input rules.
func validate(req Request) error {
	if strings.TrimSpace(req.ProductName) == "" {
		return &ValidationError{Field: "product_name", Message: "product name is required"}
	}
	if strings.TrimSpace(req.TargetAudience) == "" {
		return &ValidationError{Field: "target_audience", Message: "target audience is required"}
	}
	for _, b := range req.KeyBenefits {
		if strings.TrimSpace(b) != "" {
			return nil
		}
	}
	return &ValidationError{Field: "key_benefits", Message: "at least one key benefit is required"}
}

// benefitsList renders one bullet line per non-blank benefit, in input order.
func benefitsList(benefits []string) string {
	lines := make([]string, 0, len(benefits))
	for _, b := range benefits {
		if strings.TrimSpace(b) == "" {
			continue
		}
		lines = append(lines, "• "+b)
	}
	return strings.Join(lines, "\n")
}

// primaryBenefit returns the first supplied benefit, or the generic
// fallback phrase when none were supplied.
func primaryBenefit(benefits []string) string {
	if len(benefits) > 0 {
		return benefits[0]
	}
	return fallbackPrimaryBenefit
}

// estimateDuration renders the speaking-time range for a word count.
func estimateDuration(wordCount int) string {
	low := wordCount / wordsPerMinute
	if low < 1 {
		low = 1
	}
	return fmt.Sprintf("%d-%d minutes", low, low+1)
}

// failureResult is the non-strict failure contract: a well-formed payload
// with Success=false and an explanatory message in place of the script.
func failureResult(req Request, err error) *Result {
	return &Result{
		Success:           false,
		Script:            "Error generating script: " + err.Error(),
		ScriptType:        req.ScriptType,
		WordCount:         0,
		EstimatedDuration: "0 minutes",
		Tips:              failureTips(),
	}
}
