package backend

import (
	"context"
	"errors"
	"time"

	"github.com/jonwraymond/memocache/observe"
)

// Gateway performs lookups and stores against a Backend while absorbing
// every backend failure. A failed get is a miss; a failed set is a no-op.
// Failures are reported to the logger and metrics, never to the caller.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Errors: TryGet and TrySet never propagate backend errors.
// - Retries: none; a single failed attempt is final for that call.
type Gateway struct {
	meta    observe.FuncMeta
	logger  observe.Logger
	metrics observe.Metrics
}

// NewGateway creates a gateway reporting under the given function metadata.
// A nil logger or metrics falls back to the nop implementation.
func NewGateway(meta observe.FuncMeta, logger observe.Logger, metrics observe.Metrics) *Gateway {
	if logger == nil {
		logger = observe.NewNopLogger()
	}
	if metrics == nil {
		metrics = observe.NewNopMetrics()
	}
	return &Gateway{
		meta:    meta,
		logger:  logger.WithFunc(meta),
		metrics: metrics,
	}
}

// TryGet looks up key on b. It returns (value, true) only for a live entry;
// a miss, a nil backend, an invalid key, and any backend failure all return
// (nil, false).
func (g *Gateway) TryGet(ctx context.Context, b Backend, key string) ([]byte, bool) {
	if b == nil {
		return nil, false
	}
	if err := ValidateKey(key); err != nil {
		g.logger.Debug(ctx, "cache key rejected", observe.Field{Key: "error", Value: err.Error()})
		return nil, false
	}

	value, err := b.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false
		}
		g.logger.Warn(ctx, "cache retrieval failed",
			observe.Field{Key: "key", Value: key},
			observe.Field{Key: "error", Value: err.Error()},
		)
		g.metrics.RecordBackendError(ctx, g.meta, "get")
		return nil, false
	}

	return value, true
}

// TrySet stores value at key on b with the given TTL. Failures are logged
// and metered, then swallowed.
func (g *Gateway) TrySet(ctx context.Context, b Backend, key string, value []byte, ttl time.Duration) {
	if b == nil {
		return
	}
	if err := ValidateKey(key); err != nil {
		g.logger.Debug(ctx, "cache key rejected", observe.Field{Key: "error", Value: err.Error()})
		return
	}

	if err := b.Set(ctx, key, value, ttl); err != nil {
		g.logger.Warn(ctx, "cache storage failed",
			observe.Field{Key: "key", Value: key},
			observe.Field{Key: "error", Value: err.Error()},
		)
		g.metrics.RecordBackendError(ctx, g.meta, "set")
	}
}
