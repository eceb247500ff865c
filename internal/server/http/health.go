package http

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/ekisa-team/salescript/internal/config"
	"github.com/ekisa-team/salescript/internal/telemetry"
)

type (
	HealthResponseDTO struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}

	DeploymentDTO struct {
		config.DeploymentInfo
		RequestCount uint64 `json:"request_count"`
		StartupTime  string `json:"startup_time"`
	}

	RootResponseDTO struct {
		Title          string            `json:"title"`
		Description    string            `json:"description"`
		Version        string            `json:"version"`
		Endpoints      map[string]string `json:"endpoints"`
		DeploymentInfo DeploymentDTO     `json:"deployment_info"`
	}
)

type (
	HealthOutput struct {
		Body HealthResponseDTO
	}

	RootOutput struct {
		Body RootResponseDTO
	}
)

// HealthHandler handles the liveness and service-info endpoints.
type HealthHandler struct {
	snapshot SnapshotFunc
	stats    *telemetry.Stats
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(api huma.API, snapshot SnapshotFunc, stats *telemetry.Stats) *HealthHandler {
	h := &HealthHandler{snapshot: snapshot, stats: stats}

	huma.Register(api, huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Service liveness check",
		Tags:        []string{"meta"},
	}, h.handleHealth)

	huma.Register(api, huma.Operation{
		OperationID: "service-info",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Service description and endpoint directory",
		Tags:        []string{"meta"},
	}, h.handleRoot)

	return h
}

// handleHealth handles the health-check operation. It is available in
// every variant.
func (h *HealthHandler) handleHealth(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	return &HealthOutput{
		Body: HealthResponseDTO{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

// handleRoot handles the service-info operation.
func (h *HealthHandler) handleRoot(ctx context.Context, _ *struct{}) (*RootOutput, error) {
	cfg := h.snapshot()
	if cfg.Variant == config.VariantStrict {
		return nil, errVariantDisabled()
	}

	endpoints := map[string]string{
		"Health Check":     "/health",
		"Interactive Docs": "/docs",
		"OpenAPI Schema":   "/openapi.json",
	}

	switch cfg.Variant {
	case config.VariantFull:
		endpoints["Sales Script API"] = "/api/sales-script"
		endpoints["Quick Script API"] = "/api/quick-script/predict"
	case config.VariantBasic:
		endpoints["Generate Script API"] = "/api/generate-script"
	}

	return &RootOutput{
		Body: RootResponseDTO{
			Title:       apiTitle,
			Description: apiDescription,
			Version:     h.stats.Version(),
			Endpoints:   endpoints,
			DeploymentInfo: DeploymentDTO{
				DeploymentInfo: config.ResolveDeployment(cfg.HTTPPort(), h.stats.Version()),
				RequestCount:   h.stats.Requests(),
				StartupTime:    h.stats.StartedAt().Format(time.RFC3339),
			},
		},
	}, nil
}
