// Package log provides the structured logging facade used across the
// pixelwar services.
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. Internally it is backed by the standard
// library slog via a custom handler that routes records through the
// formatter/output pipeline, so callers get consistent output whether they
// log through the facade or through slog interop.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("engine"))
//	l.Info("consumer listening", log.Str("group", "web-backend"))
//
// Use ApplyConfig to build a logger from a declarative Config (level and
// text/json format), and RedirectStdLog to capture standard library log
// output (for example from Pebble) into the facade.
package log
