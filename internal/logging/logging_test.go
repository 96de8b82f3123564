package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/studyboard/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studyboard.log")
	cfg := config.Defaults()
	cfg.LogFile = path
	cfg.LogLevel = "debug"

	logger, err := New(cfg, false)
	require.NoError(t, err)

	logger.Debug("task toggled", zap.Int("day", 0), zap.Int("task", 2))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "task toggled")
}

func TestNew_LevelFiltersOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studyboard.log")
	cfg := config.Defaults()
	cfg.LogFile = path
	cfg.LogLevel = "warn"
	cfg.Env = "production"

	logger, err := New(cfg, false)
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("loud")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "loud")
}

func TestNew_NoFileNoConsoleIsNop(t *testing.T) {
	logger, err := New(config.Defaults(), false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestNew_BadLevel(t *testing.T) {
	cfg := config.Defaults()
	cfg.LogLevel = "loudest"

	_, err := New(cfg, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}
