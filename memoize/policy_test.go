package memoize

import (
	"testing"
	"time"
)

func TestPolicy_EffectiveTTL(t *testing.T) {
	tests := []struct {
		name     string
		policy   Policy
		override time.Duration
		want     time.Duration
	}{
		{
			name:     "no override uses default",
			policy:   Policy{DefaultTTL: 15 * time.Minute},
			override: 0,
			want:     15 * time.Minute,
		},
		{
			name:     "negative override uses default",
			policy:   Policy{DefaultTTL: 15 * time.Minute},
			override: -time.Second,
			want:     15 * time.Minute,
		},
		{
			name:     "override wins over default",
			policy:   Policy{DefaultTTL: 15 * time.Minute},
			override: time.Hour,
			want:     time.Hour,
		},
		{
			name:     "override clamped to max",
			policy:   Policy{DefaultTTL: 15 * time.Minute, MaxTTL: 30 * time.Minute},
			override: time.Hour,
			want:     30 * time.Minute,
		},
		{
			name:     "default clamped to max",
			policy:   Policy{DefaultTTL: time.Hour, MaxTTL: 10 * time.Minute},
			override: 0,
			want:     10 * time.Minute,
		},
		{
			name:     "zero max means no clamp",
			policy:   Policy{DefaultTTL: time.Minute},
			override: 24 * time.Hour,
			want:     24 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.EffectiveTTL(tt.override); got != tt.want {
				t.Errorf("EffectiveTTL(%v) = %v, want %v", tt.override, got, tt.want)
			}
		})
	}
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	if p.DefaultTTL != 15*time.Minute {
		t.Errorf("DefaultTTL = %v, want 15m", p.DefaultTTL)
	}
	if p.MaxTTL != 0 {
		t.Errorf("MaxTTL = %v, want 0", p.MaxTTL)
	}
}
