package observe_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonwraymond/memocache/observe"
)

func ExampleNewObserver() {
	cfg := observe.Config{
		ServiceName: "billing-service",
		Version:     "1.0.0",
		Tracing:     observe.TracingConfig{Enabled: true, Exporter: "none"},
		Metrics:     observe.MetricsConfig{Enabled: false},
		Logging:     observe.LoggingConfig{Enabled: true, Level: "info"},
	}

	ctx := context.Background()
	obs, err := observe.NewObserver(ctx, cfg)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer func() {
		_ = obs.Shutdown(ctx)
	}()

	fmt.Println("Observer created successfully")
	// Output:
	// Observer created successfully
}

func ExampleNewObserver_validation() {
	cfg := observe.Config{
		ServiceName: "", // Empty - will fail validation
	}

	ctx := context.Background()
	_, err := observe.NewObserver(ctx, cfg)
	if errors.Is(err, observe.ErrMissingServiceName) {
		fmt.Println("Caught: missing service name")
	}
	// Output:
	// Caught: missing service name
}

func ExampleFuncMeta_SpanName() {
	meta := observe.FuncMeta{Namespace: "math", Name: "add"}
	fmt.Println(meta.SpanName())

	bare := observe.FuncMeta{Name: "tick"}
	fmt.Println(bare.SpanName())
	// Output:
	// memo.call.math.add
	// memo.call.tick
}
