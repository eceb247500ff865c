package config

// Variant selects one of the three service behaviors. The variants differ
// in template richness, input validation strictness, and response shape.
type Variant string

const (
	// VariantFull serves the tone and script-type template matrix with
	// duration estimates, coaching tips, and per-request metadata.
	VariantFull Variant = "full"

	// VariantBasic serves a single fixed template with no input validation.
	VariantBasic Variant = "basic"

	// VariantStrict serves a single fixed template and rejects empty
	// inputs with a client error instead of interpolating them.
	VariantStrict Variant = "strict"
)

// Config holds the main configuration for the service.
type Config struct {
	Version string        `json:"version"           yaml:"version"`
	Variant Variant       `json:"variant"           yaml:"variant"`
	Server  ServerConfig  `json:"server,omitempty"  yaml:"server,omitempty"`
	Logging LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`
	CORS    CORSConfig    `json:"cors,omitempty"    yaml:"cors,omitempty"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	HTTPPort int `json:"http_port,omitempty" yaml:"http_port,omitempty"`
}

// HTTPPort returns the configured HTTP port, falling back to the PORT
// environment variable and then the built-in default.
func (c *Config) HTTPPort() int {
	if c.Server.HTTPPort != 0 {
		return c.Server.HTTPPort
	}
	return DefaultHTTPPort()
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	File  string `json:"file,omitempty"  yaml:"file,omitempty"`
}

// CORSConfig holds the CORS configuration.
type CORSConfig struct {
	Enabled bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}
