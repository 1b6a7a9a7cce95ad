// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output on stderr for machine parsing
//   - Development: colored console output for human readability
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("scan starting", zap.String("root", root))
package logging
