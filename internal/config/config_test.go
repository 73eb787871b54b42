package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notary-profile/pkg/directory"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DIRECTORY_API_URL", "DIRECTORY_USERNAME", "PORT", "LOG_LEVEL", "LOG_FORMAT", "SHOW_SAMPLE_ON_EMPTY", "CHROME_PATH"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, directory.DefaultEndpoint, cfg.Directory.URL)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.False(t, cfg.ShowSampleOnEmpty)
	assert.ErrorIs(t, cfg.Validate(), ErrNoUsername)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/directory/getUserDetails", cfg.Directory.URL)
	assert.Equal(t, "jane.public", cfg.Directory.Username)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.ShowSampleOnEmpty)
	assert.NoError(t, cfg.Validate())
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("DIRECTORY_USERNAME", "from-env")
	t.Setenv("PORT", "3000")
	t.Setenv("SHOW_SAMPLE_ON_EMPTY", "false")
	t.Setenv("CHROME_PATH", "/usr/bin/chromium")

	cfg, err := Load(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Directory.Username)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.False(t, cfg.ShowSampleOnEmpty)
	assert.Equal(t, "/usr/bin/chromium", cfg.ChromePath)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorContains(t, err, "missing.yaml")

	_, err = Load(filepath.Join("testdata", "config_invalid.yaml"))
	assert.ErrorContains(t, err, "config_invalid.yaml")

	t.Setenv("PORT", "http")
	_, err = Load("")
	assert.ErrorContains(t, err, `invalid PORT value "http"`)

	t.Setenv("PORT", "70000")
	_, err = Load("")
	assert.ErrorContains(t, err, "out of range")

	t.Setenv("PORT", "")
	t.Setenv("SHOW_SAMPLE_ON_EMPTY", "maybe")
	_, err = Load("")
	assert.ErrorContains(t, err, "SHOW_SAMPLE_ON_EMPTY")
}
