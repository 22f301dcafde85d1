// Package logger builds the application's structured Zap loggers.
//
// New constructs a logger from Config: the level string selects the minimum
// severity (debug, info, warn, error), debug switches to Zap's development
// preset, and Format picks json or console encoding.
//
// # Request Correlation
//
// WithRayID pulls the ray id that the middleware stored on a Fiber context
// and attaches it as a field, so every log line emitted while serving a
// request can be correlated with that request.
//
// # Usage
//
//	log, err := logger.New(&logger.Config{Level: "info", Format: "json"})
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Info("Decompiling Luau bytecode", zap.Int("size", len(payload)))
package logger
