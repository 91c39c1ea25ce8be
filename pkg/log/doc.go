// Package log provides the logging abstraction shared by folio components.
//
// Components log through the Logger interface so the SDK can be embedded
// in programs that use a different logging library. A zerolog adapter and
// a no-op logger are provided.
//
// # Usage
//
//	logger := log.NewZerologAdapter(log.Options{Level: "debug"})
//	logger.Info("session restored", log.String("user", email))
//
// Loggers carry context with With:
//
//	skills := logger.With(log.String("slice", "skills"))
//
// # Version
//
// Current version: 1.1.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package log
