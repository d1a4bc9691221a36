// Package observability groups the logging, metrics, and tracing subpackages
// used across both binaries.
//
// Subpackages:
//   - logging: structured logging with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry tracing middleware
package observability
