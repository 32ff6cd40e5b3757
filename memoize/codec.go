package memoize

import "encoding/json"

// Codec converts results to and from the backend's byte representation.
//
// Contract:
// - Round trip: Unmarshal(Marshal(v)) must reproduce a value equivalent to v.
// - Concurrency: implementations must be safe for concurrent use.
type Codec[V any] interface {
	// Marshal encodes a result for storage.
	Marshal(v V) ([]byte, error)

	// Unmarshal decodes a stored result.
	Unmarshal(data []byte) (V, error)
}

// JSONCodec is the default codec.
type JSONCodec[V any] struct{}

// Marshal encodes the value as JSON.
func (JSONCodec[V]) Marshal(v V) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes a JSON value.
func (JSONCodec[V]) Unmarshal(data []byte) (V, error) {
	var v V
	err := json.Unmarshal(data, &v)
	return v, err
}

// Ensure JSONCodec implements Codec
var _ Codec[int] = JSONCodec[int]{}
