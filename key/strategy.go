package key

// Strategy chooses which part of a call's identity and arguments determines
// its cache key. The three implementations are mutually exclusive and chosen
// by configuration at wrap time.
//
// Contract:
// - Determinism: equal (signature, args) inputs must produce equal keys.
// - Purity: derive must not mutate args and must not retain references.
// - Concurrency: implementations must be safe for concurrent use.
type Strategy interface {
	derive(sig Signature, args Args) (string, error)
}

// Derive produces the cache key for one call of the function identified by
// sig, invoked with args, under the given strategy. A nil strategy defaults
// to AllArguments.
//
// Derivation fails with ErrPositionalArgs when a SelectedKeywords strategy
// meets positional arguments, and with a wrapped serialization error when an
// argument value cannot be canonicalized (channels, funcs, cyclic values).
func Derive(sig Signature, args Args, strategy Strategy) (string, error) {
	if strategy == nil {
		strategy = AllArguments()
	}
	return strategy.derive(sig, args)
}

// Fixed returns a strategy that ignores arguments entirely: every call of
// the wrapped function shares the key "namespace::name::literal".
func Fixed(literal string) Strategy {
	return fixedStrategy{literal: literal}
}

type fixedStrategy struct {
	literal string
}

func (s fixedStrategy) derive(sig Signature, _ Args) (string, error) {
	return sig.String() + sep + s.literal, nil
}

// SelectedKeywords returns a strategy that keys on the values of the named
// keyword arguments, in the order given. Names absent from a call resolve to
// a sentinel value, not an error. The strategy requires keyword-only calls:
// any positional argument fails derivation with ErrPositionalArgs.
func SelectedKeywords(names ...string) Strategy {
	return keywordStrategy{names: names}
}

type keywordStrategy struct {
	names []string
}

func (s keywordStrategy) derive(sig Signature, args Args) (string, error) {
	if len(args.Positional) > 0 {
		return "", ErrPositionalArgs
	}

	values := make([]any, len(s.names))
	for i, name := range s.names {
		if v, ok := args.Keywords[name]; ok {
			values[i] = v
		} else {
			values[i] = absentKeyword
		}
	}

	hash, err := contentHash(values)
	if err != nil {
		return "", err
	}
	return sig.String() + sep + hash, nil
}

// AllArguments returns the default strategy: the key is the signature pair
// plus a content hash of the positional arguments (only if any) plus a
// content hash of the keyword arguments (only if any), hashed independently.
// A call with neither kind of argument keys on the bare signature.
func AllArguments() Strategy {
	return allArgsStrategy{}
}

type allArgsStrategy struct{}

func (allArgsStrategy) derive(sig Signature, args Args) (string, error) {
	k := sig.String()

	if len(args.Positional) > 0 {
		hash, err := contentHash(args.Positional)
		if err != nil {
			return "", err
		}
		k += sep + hash
	}

	if len(args.Keywords) > 0 {
		hash, err := contentHash(args.Keywords)
		if err != nil {
			return "", err
		}
		k += sep + hash
	}

	return k, nil
}

// Ensure all strategies implement Strategy
var (
	_ Strategy = fixedStrategy{}
	_ Strategy = keywordStrategy{}
	_ Strategy = allArgsStrategy{}
)
