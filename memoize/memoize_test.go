package memoize

import (
	"testing"
	"time"

	"github.com/jonwraymond/memocache/backend"
	"github.com/jonwraymond/memocache/observe"
)

func TestNew_Defaults(t *testing.T) {
	reg := backend.NewRegistry()
	m := New(reg)

	if !m.Enabled() {
		t.Error("new Memoizer should start enabled")
	}
	if m.Registry() != reg {
		t.Error("Registry() should return the registry passed to New")
	}
	if m.policy.DefaultTTL != 15*time.Minute {
		t.Errorf("default TTL = %v, want 15m", m.policy.DefaultTTL)
	}
}

func TestNew_Options(t *testing.T) {
	logger := observe.NewNopLogger()
	metrics := observe.NewNopMetrics()
	tracer := observe.NewNopTracer()
	policy := Policy{DefaultTTL: time.Minute, MaxTTL: time.Hour}

	m := New(backend.NewRegistry(),
		WithLogger(logger),
		WithMetrics(metrics),
		WithTracer(tracer),
		WithPolicy(policy),
		WithEnabled(false),
	)

	if m.Enabled() {
		t.Error("WithEnabled(false) should start disabled")
	}
	if m.policy != policy {
		t.Errorf("policy = %+v, want %+v", m.policy, policy)
	}
}

func TestNew_NilOptionValuesIgnored(t *testing.T) {
	m := New(backend.NewRegistry(),
		WithLogger(nil),
		WithMetrics(nil),
		WithTracer(nil),
	)

	if m.logger == nil || m.metrics == nil || m.tracer == nil {
		t.Error("nil option values should leave the nop defaults in place")
	}
}

func TestMemoizer_SetEnabled(t *testing.T) {
	m := New(backend.NewRegistry())

	m.SetEnabled(false)
	if m.Enabled() {
		t.Error("expected disabled after SetEnabled(false)")
	}

	m.SetEnabled(true)
	if !m.Enabled() {
		t.Error("expected enabled after SetEnabled(true)")
	}
}
