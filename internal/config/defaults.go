package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/ekisa-team/salescript/internal/envvar"
)

const defaultHTTPPort = 8050

// DefaultHTTPPort returns the HTTP port from the PORT environment
// variable, or 8050 when unset or unparsable.
func DefaultHTTPPort() int {
	if p := os.Getenv(envvar.Port); p != "" {
		if port, err := strconv.Atoi(p); err == nil {
			return port
		}
	}
	return defaultHTTPPort
}

// DefaultConfigPath returns the default path for the salescript config directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "salescript", "config")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "salescript")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "salescript")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "salescript")
		}
		return filepath.Join(home, ".config", "salescript")
	}
}
