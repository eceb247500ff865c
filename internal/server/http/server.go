// Package http is the HTTP boundary of the sales script service.
package http

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/ekisa-team/salescript/internal/config"
	"github.com/ekisa-team/salescript/internal/service"
	"github.com/ekisa-team/salescript/internal/telemetry"
)

const (
	apiTitle       = "Sales Script Generator API"
	apiDescription = "Generate customized sales scripts for cold calls and presentations"
)

// SnapshotFunc returns the current configuration. Handlers consult it on
// every request so a config reload can switch the service variant without
// a restart.
type SnapshotFunc func() *config.Config

// Server wires the API handlers onto a router.
type Server struct {
	mux      *http.ServeMux
	api      huma.API
	snapshot SnapshotFunc
}

// NewServer builds the router with every endpoint registered. Endpoints
// outside the active variant answer 404 at request time, so the route
// table never has to change on reload.
func NewServer(snapshot SnapshotFunc, svc *service.Script, stats *telemetry.Stats) *Server {
	mux := http.NewServeMux()

	cfg := huma.DefaultConfig(apiTitle, stats.Version())
	cfg.Info.Description = apiDescription
	api := humago.New(mux, cfg)

	s := &Server{mux: mux, api: api, snapshot: snapshot}

	NewScriptHandler(api, snapshot, svc)
	NewHealthHandler(api, snapshot, stats)

	return s
}

// Handler returns the root handler with the CORS policy applied.
func (s *Server) Handler() http.Handler {
	return s.corsMiddleware(s.mux)
}

// errVariantDisabled is the answer for endpoints outside the active variant.
func errVariantDisabled() error {
	return huma.Error404NotFound("endpoint not available in this service variant")
}
