// Package logging provides structured logging for Panel Gate.
//
// It wraps the standard library's log/slog with configuration-driven
// setup (level, format, destination) and default service fields so
// every log line carries the service name and version.
//
// Components receive a *Logger and typically derive their own with
// logger.With("component", "..."), keeping log output filterable.
package logging
