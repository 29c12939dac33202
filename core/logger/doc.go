// Package logger provides a structured logging facility based on Zap.
//
// New builds a development (debug) or production logger with the configured
// level and encoding. The query API attaches each request's RayID to log
// entries through WithRayID.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Tables loaded")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
