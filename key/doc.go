// Package key derives deterministic cache keys for wrapped function calls.
//
// It provides the call identity types (Signature, Args), three key
// strategies (Fixed, SelectedKeywords, AllArguments), and SHA-256 based
// content hashing over a canonical serialization of argument values.
package key
