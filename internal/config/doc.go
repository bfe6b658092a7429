// Package config provides 12-factor configuration management for fileshell.
//
// Configuration is loaded from environment variables with sensible defaults.
// The -dir flag of the binary overrides FILESHELL_START_DIR.
//
// Configuration Sections:
//   - Shell: start directory and prompt
//   - Transfer: streaming chunk size
//   - Compression: Brotli and gzip levels
//   - Logging: Log level, output format and destination
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Buffer size: %d\n", cfg.Transfer.BufferSize)
//
// Environment Variables:
//   - FILESHELL_START_DIR, FILESHELL_PROMPT
//   - FILESHELL_BUFFER_SIZE
//   - FILESHELL_BROTLI_LEVEL, FILESHELL_GZIP_LEVEL
//   - FILESHELL_LOG_LEVEL, FILESHELL_LOG_DEV, FILESHELL_LOG_OUTPUT
package config
