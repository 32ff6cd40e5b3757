// Package memoize wraps arbitrary computations with function-result caching.
//
// A Memoizer owns the backend registry, the process-wide enable flag, and
// the TTL policy; Wrap turns a function into a cached function that derives
// a deterministic key per call, serves live cache hits that pass the
// admission filter, and stores admitted fresh results with a TTL. Backend
// failures never reach the caller: the wrapped function degrades to plain
// computation when the cache misbehaves.
package memoize
