package telemetry

import (
	"sync/atomic"
	"time"
)

// Stats holds process-wide request telemetry. The request counter is
// informational only: it is atomic so concurrent handlers never block on
// it, but it carries no correctness guarantee and resets on restart.
type Stats struct {
	requests  atomic.Uint64
	startedAt time.Time
	version   string
}

// NewStats creates a Stats instance stamped with the process start time.
func NewStats(version string) *Stats {
	return &Stats{
		startedAt: time.Now().UTC(),
		version:   version,
	}
}

// RecordRequest increments the request counter and returns the new total.
func (s *Stats) RecordRequest() uint64 {
	return s.requests.Add(1)
}

// Requests returns the number of requests handled since startup.
func (s *Stats) Requests() uint64 {
	return s.requests.Load()
}

// StartedAt returns the process start time.
func (s *Stats) StartedAt() time.Time {
	return s.startedAt
}

// Version returns the service version string.
func (s *Stats) Version() string {
	return s.version
}
