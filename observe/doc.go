// Package observe provides observability primitives for cached function
// calls.
//
// It is a pure instrumentation library: no caching, no transport, no I/O
// beyond exporter setup. Consumers wire the observer into the memoize
// orchestrator and the backend gateway.
package observe
