package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"notary-profile/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, config.LoggingConfig{Level: "warn", Format: "json"})

	l.Info("fetch.start")
	assert.Empty(t, buf.String())

	l.Warn("fetch.failed", "status", 503)
	assert.Contains(t, buf.String(), `"msg":"fetch.failed"`)
	assert.Contains(t, buf.String(), `"status":503`)
}

func TestNewWithWriterText(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, config.LoggingConfig{}).Info("fetch.ok", "name", "Jane")
	assert.Contains(t, buf.String(), "msg=fetch.ok name=Jane")
}
