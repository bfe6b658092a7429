package config

import (
	"fmt"

	"github.com/GriffinCanCode/fileshell/internal/codec"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Shell       ShellConfig
	Transfer    TransferConfig
	Compression CompressionConfig
	Logging     LogConfig
}

// ShellConfig holds interactive loop configuration.
type ShellConfig struct {
	StartDir string `envconfig:"FILESHELL_START_DIR"`
	Prompt   string `envconfig:"FILESHELL_PROMPT" default:"> "`
}

// TransferConfig holds streaming configuration.
type TransferConfig struct {
	BufferSize int `envconfig:"FILESHELL_BUFFER_SIZE" default:"65536"`
}

// CompressionConfig holds codec levels.
type CompressionConfig struct {
	BrotliLevel int `envconfig:"FILESHELL_BROTLI_LEVEL" default:"6"`
	GzipLevel   int `envconfig:"FILESHELL_GZIP_LEVEL" default:"6"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"FILESHELL_LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"FILESHELL_LOG_DEV" default:"false"`
	Output      string `envconfig:"FILESHELL_LOG_OUTPUT" default:"stderr"`
}

// Load loads configuration from environment variables. Every tag carries
// the FILESHELL_ prefix, so only FILESHELL_* variables are read.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			Prompt: "> ",
		},
		Transfer: TransferConfig{
			BufferSize: 64 * 1024,
		},
		Compression: CompressionConfig{
			BrotliLevel: codec.DefaultBrotliLevel,
			GzipLevel:   codec.DefaultGzipLevel,
		},
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
			Output:      "stderr",
		},
	}
}

// Validate checks values envconfig cannot constrain.
func (c *Config) Validate() error {
	if c.Transfer.BufferSize <= 0 {
		return fmt.Errorf("buffer size must be positive, got %d", c.Transfer.BufferSize)
	}
	return c.Levels().Validate()
}

// Levels returns the codec levels.
func (c *Config) Levels() codec.Levels {
	return codec.Levels{Brotli: c.Compression.BrotliLevel, Gzip: c.Compression.GzipLevel}
}
