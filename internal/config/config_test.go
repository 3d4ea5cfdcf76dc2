package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DefaultTitle, cfg.Server.Title)
	assert.Equal(t, 50, cfg.Pipeline.TopRevenue)
	assert.Equal(t, 20, cfg.Pipeline.TopComposite)
	assert.Contains(t, cfg.Pipeline.ExcludedIndustries, "金控業")
	assert.Contains(t, cfg.Pipeline.ExcludedIndustries, "建材營造業")
	assert.Equal(t, []string{"utf-8", "big5"}, cfg.Pipeline.Encodings)

	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9999
  title: 測試標題
pipeline:
  top_composite: 10
  excluded_industries:
    - 金控業
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "測試標題", cfg.Server.Title)
	assert.Equal(t, 10, cfg.Pipeline.TopComposite)
	assert.Equal(t, []string{"金控業"}, cfg.Pipeline.ExcludedIndustries)
	// Untouched settings keep their defaults.
	assert.Equal(t, 50, cfg.Pipeline.TopRevenue)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9999\n"), 0o644))

	t.Setenv("TWSE_SERVER_PORT", "7070")
	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("TWSE_LOGGING_LEVEL", "chatty")
	_, err := LoadFrom("")
	assert.ErrorContains(t, err, "validation")
}

func TestPipelineSettings(t *testing.T) {
	cfg := Default()
	cfg.Pipeline.TopComposite = 5

	settings := cfg.PipelineSettings()
	assert.Equal(t, 5, settings.TopComposite)
	assert.Equal(t, cfg.Pipeline.ExcludedIndustries, settings.ExcludedIndustries)
}
