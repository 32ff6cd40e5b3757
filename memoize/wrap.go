package memoize

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jonwraymond/memocache/backend"
	"github.com/jonwraymond/memocache/key"
	"github.com/jonwraymond/memocache/observe"
)

// Func is the shape of a wrapped computation: positional and keyword
// arguments in, one result or an error out.
type Func[V any] func(ctx context.Context, args key.Args) (V, error)

// config collects the per-wrap options.
type config[V any] struct {
	strategy key.Strategy
	ttl      time.Duration
	filter   func(V) bool
	backend  string
	codec    Codec[V]
	single   bool
}

// Option configures one wrapped function.
type Option[V any] func(*config[V])

// WithStrategy sets the key strategy. Default: key.AllArguments.
func WithStrategy[V any](s key.Strategy) Option[V] {
	return func(c *config[V]) {
		if s != nil {
			c.strategy = s
		}
	}
}

// WithFixedKey keys every call on the same literal, ignoring arguments.
// Shorthand for WithStrategy(key.Fixed(literal)).
func WithFixedKey[V any](literal string) Option[V] {
	return func(c *config[V]) {
		c.strategy = key.Fixed(literal)
	}
}

// WithKeywordKeys keys calls on the named keyword arguments only. Calls with
// positional arguments fail with key.ErrPositionalArgs.
// Shorthand for WithStrategy(key.SelectedKeywords(names...)).
func WithKeywordKeys[V any](names ...string) Option[V] {
	return func(c *config[V]) {
		c.strategy = key.SelectedKeywords(names...)
	}
}

// WithTTL overrides the policy default TTL for this function. The value is
// still clamped to the policy's MaxTTL.
func WithTTL[V any](ttl time.Duration) Option[V] {
	return func(c *config[V]) {
		c.ttl = ttl
	}
}

// WithFilter sets the admission filter. It gates both directions: a cached
// value failing the filter forces recomputation, and a fresh result failing
// the filter is never stored. Default: admit everything.
func WithFilter[V any](filter func(V) bool) Option[V] {
	return func(c *config[V]) {
		if filter != nil {
			c.filter = filter
		}
	}
}

// WithBackend selects the backend alias. Default: backend.DefaultAlias.
func WithBackend[V any](alias string) Option[V] {
	return func(c *config[V]) {
		c.backend = alias
	}
}

// WithCodec sets the value codec. Default: JSONCodec.
func WithCodec[V any](codec Codec[V]) Option[V] {
	return func(c *config[V]) {
		if codec != nil {
			c.codec = codec
		}
	}
}

// WithSingleFlight deduplicates concurrent computations per derived key:
// concurrent callers missing on the same key share one invocation of the
// underlying function. Off by default; without it, concurrent misses
// compute independently and the last store wins.
func WithSingleFlight[V any]() Option[V] {
	return func(c *config[V]) {
		c.single = true
	}
}

// Wrap returns a cached version of fn identified by sig.
//
// Per call: if caching is disabled or the configured backend alias cannot be
// resolved, fn runs directly. Otherwise the call's key is derived (a key
// configuration error propagates), the backend is consulted through the
// failure-isolating gateway, a live hit passing the admission filter is
// returned without invoking fn, and a fresh result passing the filter is
// stored with the effective TTL. Errors from fn propagate unchanged and are
// never cached.
func Wrap[V any](m *Memoizer, sig key.Signature, fn Func[V], opts ...Option[V]) Func[V] {
	cfg := config[V]{
		strategy: key.AllArguments(),
		filter:   func(V) bool { return true },
		backend:  backend.DefaultAlias,
		codec:    JSONCodec[V]{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	ttl := m.policy.EffectiveTTL(cfg.ttl)
	meta := observe.FuncMeta{Namespace: sig.Namespace, Name: sig.Name, Backend: cfg.backend}
	logger := m.logger.WithFunc(meta)
	gateway := backend.NewGateway(meta, m.logger, m.metrics)
	flight := new(singleflight.Group)

	computeAndStore := func(ctx context.Context, b backend.Backend, k string, args key.Args) (V, error) {
		start := time.Now()
		result, err := fn(ctx, args)
		m.metrics.RecordCompute(ctx, meta, time.Since(start), err)
		if err != nil {
			// Errors are never cached.
			return result, err
		}

		if !cfg.filter(result) {
			logger.Debug(ctx, "result rejected by filter, not cached",
				observe.Field{Key: "cache_key", Value: k})
			m.metrics.RecordStore(ctx, meta, false)
			return result, nil
		}

		data, encErr := cfg.codec.Marshal(result)
		if encErr != nil {
			logger.Warn(ctx, "result encoding failed, not cached",
				observe.Field{Key: "cache_key", Value: k},
				observe.Field{Key: "error", Value: encErr.Error()},
			)
			m.metrics.RecordStore(ctx, meta, false)
			return result, nil
		}

		gateway.TrySet(ctx, b, k, data, ttl)
		m.metrics.RecordStore(ctx, meta, true)
		return result, nil
	}

	return func(ctx context.Context, args key.Args) (V, error) {
		if !m.Enabled() {
			m.metrics.RecordLookup(ctx, meta, observe.OutcomeBypass)
			return fn(ctx, args)
		}

		b, err := m.registry.Resolve(cfg.backend)
		if err != nil {
			// An unavailable backend is treated identically to disabled caching.
			logger.Warn(ctx, "cache backend unavailable",
				observe.Field{Key: "alias", Value: cfg.backend},
				observe.Field{Key: "error", Value: err.Error()},
			)
			m.metrics.RecordLookup(ctx, meta, observe.OutcomeBypass)
			return fn(ctx, args)
		}

		k, err := key.Derive(sig, args, cfg.strategy)
		if err != nil {
			// Key configuration defects are the caller's problem.
			var zero V
			return zero, err
		}

		ctx, span := m.tracer.StartCall(ctx, meta)

		outcome := observe.OutcomeMiss
		if data, ok := gateway.TryGet(ctx, b, k); ok {
			cached, decErr := cfg.codec.Unmarshal(data)
			switch {
			case decErr != nil:
				// Undecodable entries are backend failures: absorbed, treated as a miss.
				logger.Warn(ctx, "cached value decoding failed",
					observe.Field{Key: "cache_key", Value: k},
					observe.Field{Key: "error", Value: decErr.Error()},
				)
				m.metrics.RecordBackendError(ctx, meta, "get")
			case cfg.filter(cached):
				m.metrics.RecordLookup(ctx, meta, observe.OutcomeHit)
				m.tracer.EndCall(span, true, nil)
				return cached, nil
			default:
				logger.Debug(ctx, "cache hit rejected by filter",
					observe.Field{Key: "cache_key", Value: k})
				outcome = observe.OutcomeRejected
			}
		}
		m.metrics.RecordLookup(ctx, meta, outcome)

		var result V
		if cfg.single {
			shared, sErr, _ := flight.Do(k, func() (any, error) {
				return computeAndStore(ctx, b, k, args)
			})
			if v, ok := shared.(V); ok {
				result = v
			}
			err = sErr
		} else {
			result, err = computeAndStore(ctx, b, k, args)
		}

		m.tracer.EndCall(span, false, err)
		return result, err
	}
}
