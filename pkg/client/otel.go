package client

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for this library.
const defaultTracerName = "openmeteo"

// startSpan opens a client span around one dispatch. With tracing disabled
// it returns the context unchanged and a nil span, which endSpan ignores.
func startSpan(ctx context.Context, tracer trace.Tracer, method, url string) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, nil
	}
	return tracer.Start(ctx, "openmeteo.fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", url),
		))
}

func endSpan(span trace.Span, statusCode, records int, err error) {
	if span == nil {
		return
	}
	if statusCode > 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", statusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int("openmeteo.records", records))
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
