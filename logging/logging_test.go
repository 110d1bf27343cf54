package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/spinwheel/config"
)

func TestNewLoggerNopWithoutPath(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "info"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	// Must be safe to use even though nothing is written
	logger.Info("spin started")
}

func TestNewLoggerWritesToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wheel.log")

	logger, err := NewLogger(config.LoggingConfig{Level: "debug", Path: path})
	require.NoError(t, err)

	logger.Info("winner selected")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "winner selected")
	assert.Contains(t, string(data), `"level":"info"`)
}

func TestNewLoggerLevelFilter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wheel.log")

	logger, err := NewLogger(config.LoggingConfig{Level: "warn", Path: path})
	require.NoError(t, err)

	logger.Debug("dropped frame")
	logger.Warn("audio unavailable")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped frame")
	assert.Contains(t, string(data), "audio unavailable")
}

func TestNewLoggerBadLevel(t *testing.T) {
	_, err := NewLogger(config.LoggingConfig{Level: "loud", Path: "x.log"})
	assert.Error(t, err)
}
