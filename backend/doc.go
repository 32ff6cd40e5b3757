// Package backend defines the key-value store contract behind the cache, a
// registry of named backend instances, and the gateway that isolates backend
// failures from callers.
//
// The gateway is the reliability boundary: a broken or unreachable backend
// degrades every lookup to a miss and every store to a no-op, never to an
// error the caller sees.
package backend
