package backend

import (
	"context"
	"errors"
	"strings"
	"time"
)

// MaxKeyLength is the maximum allowed length for a cache key.
const MaxKeyLength = 512

// Sentinel errors for backend operations.
var (
	// ErrNotFound is returned by Get when no live entry exists for a key.
	// Backends must not distinguish "expired" from "never set".
	ErrNotFound = errors.New("backend: key not found")

	// ErrNilBackend is returned when no backend instance is available.
	ErrNilBackend = errors.New("backend: backend is nil")

	// ErrEmptyAlias is returned when a registry operation names no alias.
	ErrEmptyAlias = errors.New("backend: alias is required")

	// ErrInvalidKey is returned for empty, blank, or control-character keys.
	ErrInvalidKey = errors.New("backend: key is invalid")

	// ErrKeyTooLong is returned when a key exceeds MaxKeyLength.
	ErrKeyTooLong = errors.New("backend: key exceeds max length")
)

// Backend is the external key-value store contract the cache core consumes.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: methods should honor cancellation/deadlines where applicable.
// - Errors: Get returns ErrNotFound on miss; any other error means the
//   lookup itself failed (transport, decode). Set may fail for any reason.
//   Callers above the Gateway never see either kind.
type Backend interface {
	// Get retrieves the value stored at key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL. TTL<=0 means no caching.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// ValidateKey checks if a key is valid for caching.
func ValidateKey(key string) error {
	if key == "" || strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	// Reject keys with newlines or carriage returns
	if strings.ContainsAny(key, "\n\r") {
		return ErrInvalidKey
	}
	return nil
}
