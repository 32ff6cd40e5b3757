package key

import "errors"

// Sentinel errors for key derivation.
var (
	// ErrPositionalArgs is returned when a keyword-selection strategy is
	// invoked with positional arguments. This is a configuration defect:
	// callers must not recover from it by falling back to another strategy.
	ErrPositionalArgs = errors.New("key: keyword strategy requires keyword arguments only; positional arguments must be empty")
)

// Signature identifies the computation being cached: a namespace (module,
// service, or type qualifier) and a function name. Both are opaque strings.
// A Signature is built once when a function is wrapped, not per call.
type Signature struct {
	Namespace string
	Name      string
}

// String returns the "namespace::name" key prefix for this signature.
func (s Signature) String() string {
	return s.Namespace + sep + s.Name
}

// Args carries the invocation data of a single call: an ordered sequence of
// positional values and a name-to-value keyword mapping (insertion order
// irrelevant). Args are transient; the package never mutates them.
type Args struct {
	Positional []any
	Keywords   map[string]any
}

// sep joins key components.
const sep = "::"

// absentKeyword marks a selected keyword name that the call did not supply.
// The NUL bytes keep it distinct from any realistic user value; a collision
// with a deliberate matching string is an accepted caching risk.
const absentKeyword = "\x00memocache.absent\x00"
