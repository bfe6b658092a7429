package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestNewWritesToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "shell.log")
	logger, err := New(Config{Level: "debug", OutputPaths: []string{out}})
	require.NoError(t, err)

	logger.Debug("hello", zap.String("k", "v"))
	require.NoError(t, logger.Sync())

	assert.FileExists(t, out)
}

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "warn", cfg.Level)
	assert.False(t, cfg.Development)
	assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)

	assert.NotNil(t, NewDefault())
	assert.NotNil(t, NewDevelopment())
}

func TestWithAndNamed(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := Wrap(zap.New(core)).Named("shell").With(zap.String("session", "abc"))

	logger.Info("ready")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "shell", entry.LoggerName)
	assert.Equal(t, "abc", entry.ContextMap()["session"])
}

func TestWrapNil(t *testing.T) {
	assert.NotNil(t, Wrap(nil).Logger)
}
