// Package tracing provides a shared OTel tracer helper for the website.
//
// When no TracerProvider is registered (tests, local dev without a collector)
// the global no-op provider is used and every call is inert.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "eloq-website"

// Start creates a new span as a child of the span in ctx. The caller must
// end the span, typically via defer span.End().
//
//	ctx, span := tracing.Start(ctx, "strategy.generate",
//	    attribute.String("strategy.request_id", id),
//	)
//	defer span.End()
func Start(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))
}
