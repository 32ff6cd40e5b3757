package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// FuncMeta contains metadata about a wrapped function for telemetry purposes.
type FuncMeta struct {
	Namespace string // Function namespace (may be empty)
	Name      string // Function name (required)
	Backend   string // Backend alias serving this function's cache (optional)
}

// SpanName returns the deterministic span name for this function.
// Format: memo.call.<namespace>.<name> or memo.call.<name>
func (m FuncMeta) SpanName() string {
	if m.Namespace != "" {
		return "memo.call." + m.Namespace + "." + m.Name
	}
	return "memo.call." + m.Name
}

// FuncID returns the fully qualified function identifier.
func (m FuncMeta) FuncID() string {
	if m.Namespace != "" {
		return m.Namespace + "." + m.Name
	}
	return m.Name
}

// Tracer wraps OpenTelemetry tracing with cache-call span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: StartCall must honor cancellation/deadlines and return ctx.Err() when canceled.
// - Errors: EndCall must be best-effort and must not panic.
type Tracer interface {
	// StartCall starts a new span for a cache-mediated function call.
	StartCall(ctx context.Context, meta FuncMeta) (context.Context, trace.Span)

	// EndCall ends the span, recording the cache outcome and any error.
	EndCall(span trace.Span, hit bool, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer creates a new Tracer wrapping the given OpenTelemetry tracer.
func NewTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartCall starts a new span with function metadata as attributes.
func (t *tracerImpl) StartCall(ctx context.Context, meta FuncMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("func.id", meta.FuncID()),
		attribute.String("func.name", meta.Name),
	}
	if meta.Namespace != "" {
		attrs = append(attrs, attribute.String("func.namespace", meta.Namespace))
	}
	if meta.Backend != "" {
		attrs = append(attrs, attribute.String("cache.backend", meta.Backend))
	}

	ctx, span := t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	return ctx, span
}

// EndCall ends the span, recording the cache outcome and error status.
func (t *tracerImpl) EndCall(span trace.Span, hit bool, err error) {
	span.SetAttributes(attribute.Bool("cache.hit", hit))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// NewNopTracer creates a no-op tracer.
func NewNopTracer() Tracer {
	return &nopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

// nopTracer is a tracer that does nothing.
type nopTracer struct {
	noop trace.Tracer
}

func (t *nopTracer) StartCall(ctx context.Context, meta FuncMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *nopTracer) EndCall(span trace.Span, hit bool, err error) {
	span.End()
}
