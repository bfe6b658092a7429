// Package logging provides structured logging using uber/zap.
//
// The shell owns stdout, so diagnostics are written to stderr (or a file)
// and default to the warn level. Two modes are available:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output, debug level
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Debug("Dispatching command", zap.String("command", "cp"))
//	logger.Warn("Command failed", zap.Error(err))
package logging
