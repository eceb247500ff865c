package env

import (
	"os"

	"github.com/ekisa-team/salescript/internal/envvar"
)

// Environment represents the runtime environment of the service.
type Environment string

const (
	// Development is the default environment.
	Development Environment = "development"

	// Production is the environment for deployed instances.
	Production Environment = "production"
)

// FromEnv resolves the environment from SALESCRIPT_ENV.
// Anything other than a production value resolves to Development.
func FromEnv() Environment {
	switch os.Getenv(envvar.SalescriptEnv) {
	case "production", "prod":
		return Production
	default:
		return Development
	}
}
