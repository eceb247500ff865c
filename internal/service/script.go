package service

import (
	"context"
	"crypto/rand"
	"log/slog"
	"time"

	"github.com/ekisa-team/salescript/internal/script"
	"github.com/ekisa-team/salescript/internal/telemetry"
	"github.com/oklog/ulid/v2"
)

// Meta is the per-request bookkeeping the boundary merges into responses.
type Meta struct {
	ProcessingTime float64
	RequestID      string
	TotalRequests  uint64
}

// Script orchestrates script generation: it counts the request, stamps it
// with an ID, times the composition, and logs the outcome.
type Script struct {
	stats *telemetry.Stats
}

// NewScript creates a new Script service.
func NewScript(stats *telemetry.Stats) *Script {
	return &Script{stats: stats}
}

// NewMeta counts and stamps a request. Used directly by boundary paths
// that reject input before reaching the composer.
func (s *Script) NewMeta() *Meta {
	return &Meta{
		RequestID:     newRequestID(),
		TotalRequests: s.stats.RecordRequest(),
	}
}

// Generate runs one composition under the given options. The returned Meta
// is valid even when the composition failed.
func (s *Script) Generate(ctx context.Context, opts script.Options, req script.Request) (*script.Result, *Meta, error) {
	start := time.Now()
	meta := s.NewMeta()

	slog.InfoContext(ctx, "Generating script",
		"request_id", meta.RequestID,
		"product_name", req.ProductName,
		"script_type", req.ScriptType,
	)

	res, err := script.NewComposer(opts).Compose(req)
	meta.ProcessingTime = time.Since(start).Seconds()

	if err != nil {
		slog.ErrorContext(ctx, "Failed to generate script",
			"request_id", meta.RequestID,
			"error", err,
		)
		return nil, meta, err
	}

	slog.InfoContext(ctx, "Script generated",
		"request_id", meta.RequestID,
		"success", res.Success,
		"word_count", res.WordCount,
		"processing_time", meta.ProcessingTime,
	)

	return res, meta, nil
}

// newRequestID returns a ULID string for response metadata.
func newRequestID() string {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		// Entropy exhaustion is not a reason to fail a request; the ID is
		// informational.
		return ulid.Make().String()
	}
	return id.String()
}
