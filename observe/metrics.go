package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// LookupOutcome classifies the result of a cache lookup.
type LookupOutcome string

const (
	// OutcomeHit means a cached value was served.
	OutcomeHit LookupOutcome = "hit"
	// OutcomeMiss means no usable entry existed and the function was computed.
	OutcomeMiss LookupOutcome = "miss"
	// OutcomeRejected means an entry existed but failed the admission filter.
	OutcomeRejected LookupOutcome = "rejected"
	// OutcomeBypass means caching was disabled or the backend was unresolvable.
	OutcomeBypass LookupOutcome = "bypass"
)

// Metrics records cache activity for wrapped functions.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordLookup records one lookup with its outcome.
	RecordLookup(ctx context.Context, meta FuncMeta, outcome LookupOutcome)

	// RecordStore records a store attempt; stored is false when the
	// admission filter rejected the value.
	RecordStore(ctx context.Context, meta FuncMeta, stored bool)

	// RecordBackendError records an absorbed backend failure for op ("get" or "set").
	RecordBackendError(ctx context.Context, meta FuncMeta, op string)

	// RecordCompute records an invocation of the underlying function.
	RecordCompute(ctx context.Context, meta FuncMeta, duration time.Duration, err error)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	lookupCount  metric.Int64Counter
	storeCount   metric.Int64Counter
	backendErrs  metric.Int64Counter
	computeCount metric.Int64Counter
	computeErrs  metric.Int64Counter
	durationHist metric.Float64Histogram
}

// NewMetrics creates a new Metrics instance with the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	lookupCount, err := meter.Int64Counter(
		"memo.lookup.total",
		metric.WithDescription("Total number of cache lookups by outcome"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	storeCount, err := meter.Int64Counter(
		"memo.store.total",
		metric.WithDescription("Total number of store attempts"),
		metric.WithUnit("{store}"),
	)
	if err != nil {
		return nil, err
	}

	backendErrs, err := meter.Int64Counter(
		"memo.backend.errors",
		metric.WithDescription("Total number of absorbed backend failures"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	computeCount, err := meter.Int64Counter(
		"memo.compute.total",
		metric.WithDescription("Total number of underlying function invocations"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	computeErrs, err := meter.Int64Counter(
		"memo.compute.errors",
		metric.WithDescription("Total number of underlying function errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"memo.compute.duration_ms",
		metric.WithDescription("Underlying function duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		lookupCount:  lookupCount,
		storeCount:   storeCount,
		backendErrs:  backendErrs,
		computeCount: computeCount,
		computeErrs:  computeErrs,
		durationHist: durationHist,
	}, nil
}

func (m *metricsImpl) attrs(meta FuncMeta) []attribute.KeyValue {
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
	return attrs
}

// RecordLookup records one lookup with its outcome.
func (m *metricsImpl) RecordLookup(ctx context.Context, meta FuncMeta, outcome LookupOutcome) {
	attrs := append(m.attrs(meta), attribute.String("outcome", string(outcome)))
	m.lookupCount.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordStore records a store attempt.
func (m *metricsImpl) RecordStore(ctx context.Context, meta FuncMeta, stored bool) {
	attrs := append(m.attrs(meta), attribute.Bool("stored", stored))
	m.storeCount.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordBackendError records an absorbed backend failure.
func (m *metricsImpl) RecordBackendError(ctx context.Context, meta FuncMeta, op string) {
	attrs := append(m.attrs(meta), attribute.String("op", op))
	m.backendErrs.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordCompute records an invocation of the underlying function.
func (m *metricsImpl) RecordCompute(ctx context.Context, meta FuncMeta, duration time.Duration, err error) {
	opt := metric.WithAttributes(m.attrs(meta)...)

	m.computeCount.Add(ctx, 1, opt)
	if err != nil {
		m.computeErrs.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

// NewNopMetrics returns a Metrics implementation that does nothing.
func NewNopMetrics() Metrics {
	return &nopMetrics{}
}

type nopMetrics struct{}

func (m *nopMetrics) RecordLookup(ctx context.Context, meta FuncMeta, outcome LookupOutcome) {}
func (m *nopMetrics) RecordStore(ctx context.Context, meta FuncMeta, stored bool)            {}
func (m *nopMetrics) RecordBackendError(ctx context.Context, meta FuncMeta, op string)       {}
func (m *nopMetrics) RecordCompute(ctx context.Context, meta FuncMeta, duration time.Duration, err error) {
}

// Ensure implementations satisfy Metrics
var (
	_ Metrics = (*metricsImpl)(nil)
	_ Metrics = (*nopMetrics)(nil)
)
