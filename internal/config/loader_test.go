package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemaPath = "../../configs/salescript.v1.schema.json"

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndValidate(t *testing.T) {
	path := writeConfig(t, `
version: "1"
variant: strict
server:
  http_port: 9000
logging:
  level: debug
cors:
  enabled: true
`)

	cfg, err := LoadAndValidate(path, schemaPath)
	require.NoError(t, err)

	assert.Equal(t, VariantStrict, cfg.Variant)
	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.CORS.Enabled)
}

func TestLoadAndValidateRejectsUnknownVariant(t *testing.T) {
	path := writeConfig(t, `
version: "1"
variant: deluxe
`)

	_, err := LoadAndValidate(path, schemaPath)
	assert.Error(t, err)
}

func TestLoadAndValidateRejectsMissingVariant(t *testing.T) {
	path := writeConfig(t, `
version: "1"
`)

	_, err := LoadAndValidate(path, schemaPath)
	assert.Error(t, err)
}

func TestLoadAndValidateRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "version: [unterminated")

	_, err := LoadAndValidate(path, schemaPath)
	assert.Error(t, err)
}

func TestLoadAndValidateMissingFile(t *testing.T) {
	_, err := LoadAndValidate(filepath.Join(t.TempDir(), "nope.yaml"), schemaPath)
	assert.Error(t, err)
}
