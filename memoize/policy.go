package memoize

import "time"

// Policy configures TTL behavior for stored results.
type Policy struct {
	// DefaultTTL is the TTL to use when a wrapped function specifies none.
	DefaultTTL time.Duration

	// MaxTTL is the maximum allowed TTL. Override TTLs are clamped to this.
	// If zero, no maximum is enforced.
	MaxTTL time.Duration
}

// DefaultPolicy returns the default TTL policy: 15 minutes, no maximum.
func DefaultPolicy() Policy {
	return Policy{
		DefaultTTL: 15 * time.Minute,
	}
}

// EffectiveTTL returns the TTL to use, applying defaults and clamping.
func (p Policy) EffectiveTTL(override time.Duration) time.Duration {
	// Use default if no override (or negative override)
	ttl := override
	if ttl <= 0 {
		ttl = p.DefaultTTL
	}

	// Clamp to MaxTTL if set
	if p.MaxTTL > 0 && ttl > p.MaxTTL {
		ttl = p.MaxTTL
	}

	return ttl
}
