package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Shell config
	assert.Equal(t, "", cfg.Shell.StartDir)
	assert.Equal(t, "> ", cfg.Shell.Prompt)

	// Transfer config
	assert.Equal(t, 65536, cfg.Transfer.BufferSize)

	// Compression config
	assert.Equal(t, 6, cfg.Compression.BrotliLevel)
	assert.Equal(t, 6, cfg.Compression.GzipLevel)

	// Logging config
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
	assert.Equal(t, "stderr", cfg.Logging.Output)

	assert.NoError(t, cfg.Validate())
}

func TestLoadMatchesDefault(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"FILESHELL_START_DIR":    "/tmp",
		"FILESHELL_PROMPT":       "$ ",
		"FILESHELL_BUFFER_SIZE":  "4096",
		"FILESHELL_BROTLI_LEVEL": "11",
		"FILESHELL_GZIP_LEVEL":   "9",
		"FILESHELL_LOG_LEVEL":    "debug",
		"FILESHELL_LOG_DEV":      "true",
		"FILESHELL_LOG_OUTPUT":   "/tmp/fileshell.log",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp", cfg.Shell.StartDir)
	assert.Equal(t, "$ ", cfg.Shell.Prompt)
	assert.Equal(t, 4096, cfg.Transfer.BufferSize)
	assert.Equal(t, 11, cfg.Compression.BrotliLevel)
	assert.Equal(t, 9, cfg.Compression.GzipLevel)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, "/tmp/fileshell.log", cfg.Logging.Output)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric buffer", "FILESHELL_BUFFER_SIZE", "big"},
		{"zero buffer", "FILESHELL_BUFFER_SIZE", "0"},
		{"brotli out of range", "FILESHELL_BROTLI_LEVEL", "12"},
		{"gzip out of range", "FILESHELL_GZIP_LEVEL", "42"},
		{"bad bool", "FILESHELL_LOG_DEV", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)

			cfg := LoadOrDefault()
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestLoadIgnoresUnprefixedVariables(t *testing.T) {
	for key, value := range map[string]string{
		"PROMPT":                         "$ ",
		"BUFFER_SIZE":                    "4096",
		"LOG_LEVEL":                      "debug",
		"FILESHELL_TRANSFER_BUFFER_SIZE": "1024",
	} {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
