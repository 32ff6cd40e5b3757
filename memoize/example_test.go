package memoize_test

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/memocache/backend"
	"github.com/jonwraymond/memocache/key"
	"github.com/jonwraymond/memocache/memoize"
)

func ExampleWrap() {
	reg := backend.NewRegistry()
	_ = reg.Register(backend.DefaultAlias, backend.NewMemory())
	m := memoize.New(reg)

	calls := 0
	add := memoize.Wrap(m, key.Signature{Namespace: "math", Name: "add"},
		func(_ context.Context, args key.Args) (int, error) {
			calls++
			return args.Positional[0].(int) + args.Positional[1].(int), nil
		})

	ctx := context.Background()
	a, _ := add(ctx, key.Args{Positional: []any{2, 3}})
	b, _ := add(ctx, key.Args{Positional: []any{2, 3}})

	fmt.Println(a, b, calls)
	// Output: 5 5 1
}

func ExampleWithFilter() {
	reg := backend.NewRegistry()
	_ = reg.Register(backend.DefaultAlias, backend.NewMemory())
	m := memoize.New(reg)

	calls := 0
	add := memoize.Wrap(m, key.Signature{Namespace: "math", Name: "add"},
		func(_ context.Context, args key.Args) (int, error) {
			calls++
			return args.Positional[0].(int) + args.Positional[1].(int), nil
		},
		memoize.WithFilter[int](func(x int) bool { return x >= 0 }),
	)

	ctx := context.Background()
	// Negative results fail the filter and are recomputed every call.
	a, _ := add(ctx, key.Args{Positional: []any{-10, 2}})
	b, _ := add(ctx, key.Args{Positional: []any{-10, 2}})

	fmt.Println(a, b, calls)
	// Output: -8 -8 2
}

func ExampleWithKeywordKeys() {
	reg := backend.NewRegistry()
	_ = reg.Register(backend.DefaultAlias, backend.NewMemory())
	m := memoize.New(reg)

	profile := memoize.Wrap(m, key.Signature{Namespace: "users", Name: "profile"},
		func(_ context.Context, args key.Args) (string, error) {
			return fmt.Sprintf("profile-%v", args.Keywords["user_id"]), nil
		},
		memoize.WithKeywordKeys[string]("user_id"),
		memoize.WithTTL[string](time.Hour),
	)

	got, _ := profile(context.Background(), key.Args{
		Keywords: map[string]any{"user_id": 42, "verbose": true},
	})

	fmt.Println(got)
	// Output: profile-42
}

func ExampleMemoizer_SetEnabled() {
	reg := backend.NewRegistry()
	_ = reg.Register(backend.DefaultAlias, backend.NewMemory())
	m := memoize.New(reg)

	calls := 0
	now := memoize.Wrap(m, key.Signature{Namespace: "clock", Name: "tick"},
		func(context.Context, key.Args) (int, error) {
			calls++
			return calls, nil
		})

	ctx := context.Background()
	_, _ = now(ctx, key.Args{})
	_, _ = now(ctx, key.Args{})

	// Disabled: every call computes directly, skipping the cache entirely.
	m.SetEnabled(false)
	_, _ = now(ctx, key.Args{})

	fmt.Println(calls)
	// Output: 2
}
