// Package log provides a logging abstraction for coordmod components.
//
// This package defines a Logger interface that can be implemented by
// any logging library. Default implementations are provided for zerolog
// and a no-op logger for testing.
//
// # Usage
//
// Use the provided zerolog adapter:
//
//	logger := log.NewZerologAdapter(os.Stderr, log.LevelInfo)
//
// Or use the no-op logger for testing:
//
//	logger := log.NewNoopLogger()
//
// Values without a dedicated helper go through Any and are encoded as JSON:
//
//	logger.Info("frame updated", log.Int("tf", 3), log.Any("pose", p))
//
// # Version
//
// Current version: 1.1.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package log
