package memoize

import (
	"sync/atomic"

	"github.com/jonwraymond/memocache/backend"
	"github.com/jonwraymond/memocache/observe"
)

// Memoizer holds the shared state every wrapped function reads on each call:
// the backend registry, the process-wide enable flag, the TTL policy, and
// observability sinks. It replaces implicit global configuration so the
// orchestration stays testable without process-wide fixtures.
type Memoizer struct {
	registry *backend.Registry
	policy   Policy
	logger   observe.Logger
	metrics  observe.Metrics
	tracer   observe.Tracer
	enabled  atomic.Bool
}

// MemoizerOption configures a Memoizer.
type MemoizerOption func(*Memoizer)

// New creates a Memoizer over the given registry. Caching starts enabled.
func New(registry *backend.Registry, opts ...MemoizerOption) *Memoizer {
	m := &Memoizer{
		registry: registry,
		policy:   DefaultPolicy(),
		logger:   observe.NewNopLogger(),
		metrics:  observe.NewNopMetrics(),
		tracer:   observe.NewNopTracer(),
	}
	m.enabled.Store(true)

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithLogger sets the logger used for absorbed failures and cache decisions.
func WithLogger(logger observe.Logger) MemoizerOption {
	return func(m *Memoizer) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(metrics observe.Metrics) MemoizerOption {
	return func(m *Memoizer) {
		if metrics != nil {
			m.metrics = metrics
		}
	}
}

// WithTracer sets the tracer wrapping each cache-mediated call.
func WithTracer(tracer observe.Tracer) MemoizerOption {
	return func(m *Memoizer) {
		if tracer != nil {
			m.tracer = tracer
		}
	}
}

// WithPolicy sets the TTL policy.
func WithPolicy(policy Policy) MemoizerOption {
	return func(m *Memoizer) {
		m.policy = policy
	}
}

// WithEnabled sets the initial state of the enable flag.
func WithEnabled(enabled bool) MemoizerOption {
	return func(m *Memoizer) {
		m.enabled.Store(enabled)
	}
}

// SetEnabled toggles caching process-wide. The flag is read fresh on every
// call of every wrapped function, so a toggle takes effect on the next call.
func (m *Memoizer) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

// Enabled reports whether caching is currently active.
func (m *Memoizer) Enabled() bool {
	return m.enabled.Load()
}

// Registry returns the backend registry this memoizer resolves aliases against.
func (m *Memoizer) Registry() *backend.Registry {
	return m.registry
}
