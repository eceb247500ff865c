package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/ekisa-team/salescript/internal/config"
	"github.com/ekisa-team/salescript/internal/script"
	"github.com/ekisa-team/salescript/internal/service"
	"github.com/ekisa-team/salescript/internal/xslice"
)

type (
	SalesScriptRequestDTO struct {
		ProductName    string   `json:"product_name" doc:"Name of the product or service being sold"`
		TargetAudience string   `json:"target_audience" doc:"Who the script is aimed at"`
		KeyBenefits    []string `json:"key_benefits" doc:"Benefits to highlight, one bullet each"`
		Tone           string   `json:"tone,omitempty" default:"professional" doc:"professional, casual, or enthusiastic"`
		ScriptType     string   `json:"script_type,omitempty" default:"cold_call" doc:"cold_call or presentation"`
	}

	SalesScriptResponseDTO struct {
		Success           bool     `json:"success"`
		Script            string   `json:"script"`
		ScriptType        string   `json:"script_type"`
		WordCount         int      `json:"word_count"`
		EstimatedDuration string   `json:"estimated_duration"`
		Tips              []string `json:"tips"`
		ProcessingTime    float64  `json:"processing_time"`
		RequestID         string   `json:"request_id"`
		TotalRequests     uint64   `json:"total_requests"`
	}

	GenerateScriptResponseDTO struct {
		Success   bool   `json:"success"`
		Script    string `json:"script"`
		WordCount int    `json:"word_count"`
	}

	QuickScriptRequestDTO struct {
		Data []string `json:"data" doc:"Positional inputs: product name, target audience, tone"`
	}

	QuickScriptResponseDTO struct {
		Data         []string `json:"data"`
		IsGenerating bool     `json:"is_generating"`
		Duration     float64  `json:"duration"`
	}
)

type (
	SalesScriptInput struct {
		Body SalesScriptRequestDTO
	}

	SalesScriptOutput struct {
		Body SalesScriptResponseDTO
	}

	GenerateScriptInput struct {
		Body SalesScriptRequestDTO
	}

	GenerateScriptOutput struct {
		Body GenerateScriptResponseDTO
	}

	QuickScriptInput struct {
		Body QuickScriptRequestDTO
	}

	QuickScriptOutput struct {
		Body QuickScriptResponseDTO
	}
)

// quickBenefits is the fixed benefit list the quick endpoint interpolates,
// since its positional input format carries no benefits.
var quickBenefits = []string{"Saves time", "Increases efficiency", "Reduces costs"}

// ScriptHandler handles HTTP requests for script generation.
type ScriptHandler struct {
	snapshot SnapshotFunc
	service  *service.Script
}

// NewScriptHandler creates a new ScriptHandler instance.
func NewScriptHandler(api huma.API, snapshot SnapshotFunc, service *service.Script) *ScriptHandler {
	h := &ScriptHandler{snapshot: snapshot, service: service}

	huma.Register(api, huma.Operation{
		OperationID:   "generate-sales-script",
		Method:        http.MethodPost,
		Path:          "/api/sales-script",
		Summary:       "Generate a sales script with tips and a duration estimate",
		Tags:          []string{"script"},
		DefaultStatus: http.StatusOK,
	}, h.handleSalesScript)

	huma.Register(api, huma.Operation{
		OperationID:   "generate-script",
		Method:        http.MethodPost,
		Path:          "/api/generate-script",
		Summary:       "Generate a sales script from a single fixed template",
		Tags:          []string{"script"},
		DefaultStatus: http.StatusOK,
	}, h.handleGenerateScript)

	huma.Register(api, huma.Operation{
		OperationID:   "quick-script",
		Method:        http.MethodPost,
		Path:          "/api/quick-script/predict",
		Summary:       "Generate a cold call script from positional inputs",
		Tags:          []string{"script"},
		DefaultStatus: http.StatusOK,
	}, h.handleQuickScript)

	return h
}

// handleSalesScript handles the generate-sales-script operation.
func (h *ScriptHandler) handleSalesScript(ctx context.Context, input *SalesScriptInput) (*SalesScriptOutput, error) {
	if h.snapshot().Variant != config.VariantFull {
		return nil, errVariantDisabled()
	}

	res, meta, err := h.service.Generate(ctx, script.Options{}, requestFromDTO(input.Body))
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to generate script", err)
	}

	return &SalesScriptOutput{
		Body: SalesScriptResponseDTO{
			Success:           res.Success,
			Script:            res.Script,
			ScriptType:        res.ScriptType,
			WordCount:         res.WordCount,
			EstimatedDuration: res.EstimatedDuration,
			Tips:              res.Tips,
			ProcessingTime:    meta.ProcessingTime,
			RequestID:         meta.RequestID,
			TotalRequests:     meta.TotalRequests,
		},
	}, nil
}

// handleGenerateScript handles the generate-script operation.
func (h *ScriptHandler) handleGenerateScript(ctx context.Context, input *GenerateScriptInput) (*GenerateScriptOutput, error) {
	variant := h.snapshot().Variant
	if variant != config.VariantBasic && variant != config.VariantStrict {
		return nil, errVariantDisabled()
	}

	opts := script.Options{
		SingleTemplate: true,
		Strict:         variant == config.VariantStrict,
	}

	res, _, err := h.service.Generate(ctx, opts, requestFromDTO(input.Body))
	if err != nil {
		var verr *script.ValidationError
		if errors.As(err, &verr) {
			return nil, huma.Error422UnprocessableEntity(verr.Message)
		}
		return nil, huma.Error500InternalServerError("failed to generate script", err)
	}

	return &GenerateScriptOutput{
		Body: GenerateScriptResponseDTO{
			Success:   res.Success,
			Script:    res.Script,
			WordCount: res.WordCount,
		},
	}, nil
}

// handleQuickScript handles the quick-script operation. The payload is
// serialized as a single JSON string inside the data array to match the
// positional wire format.
func (h *ScriptHandler) handleQuickScript(ctx context.Context, input *QuickScriptInput) (*QuickScriptOutput, error) {
	if h.snapshot().Variant != config.VariantFull {
		return nil, errVariantDisabled()
	}

	start := time.Now()

	product := strings.TrimSpace(xslice.At(input.Body.Data, 0, "Your Product"))
	audience := strings.TrimSpace(xslice.At(input.Body.Data, 1, "business owners"))
	tone := strings.ToLower(xslice.At(input.Body.Data, 2, "professional"))

	var (
		payload map[string]any
		meta    *service.Meta
	)

	if product == "" {
		// Rejected requests still count and still carry metadata.
		meta = h.service.NewMeta()
		meta.ProcessingTime = time.Since(start).Seconds()

		payload = map[string]any{
			"success": false,
			"error":   "Product name is required",
			"script":  "Please provide a product name to generate a script.",
		}
	} else {
		res, m, err := h.service.Generate(ctx, script.Options{}, script.Request{
			ProductName:    product,
			TargetAudience: audience,
			KeyBenefits:    quickBenefits,
			Tone:           tone,
			ScriptType:     "cold_call",
		})
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to generate script", err)
		}

		meta = m
		payload = map[string]any{
			"success":            res.Success,
			"script":             res.Script,
			"script_type":        res.ScriptType,
			"word_count":         res.WordCount,
			"estimated_duration": res.EstimatedDuration,
			"tips":               res.Tips,
		}
	}

	payload["processing_time"] = meta.ProcessingTime
	payload["request_id"] = meta.RequestID
	payload["total_requests"] = meta.TotalRequests

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to encode script payload", err)
	}

	return &QuickScriptOutput{
		Body: QuickScriptResponseDTO{
			Data:         []string{string(encoded)},
			IsGenerating: false,
			Duration:     meta.ProcessingTime,
		},
	}, nil
}

func requestFromDTO(dto SalesScriptRequestDTO) script.Request {
	return script.Request{
		ProductName:    dto.ProductName,
		TargetAudience: dto.TargetAudience,
		KeyBenefits:    dto.KeyBenefits,
		Tone:           dto.Tone,
		ScriptType:     dto.ScriptType,
	}
}
