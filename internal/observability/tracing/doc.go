// Package tracing provides OpenTelemetry integration for HTTP request tracing.
// Spans propagate through handler contexts so provider fetches and generation
// calls correlate with the originating request.
package tracing
