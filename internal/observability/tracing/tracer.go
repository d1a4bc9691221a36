package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the vmfit application.
var tracer = otel.Tracer("vmfit")

// GetTracer returns the global tracer for creating spans.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "content.list")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}
