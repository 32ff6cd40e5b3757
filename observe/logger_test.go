package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("failed to decode log line %q: %v", line, err)
	}
	return entry
}

func TestLogger_StructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Info(context.Background(), "cache lookup", Field{Key: "key", Value: "math::add::abc"})

	entry := decodeLine(t, &buf)
	if entry["level"] != "info" {
		t.Errorf("expected level info, got %v", entry["level"])
	}
	if entry["msg"] != "cache lookup" {
		t.Errorf("expected msg 'cache lookup', got %v", entry["msg"])
	}
	if entry["key"] != "math::add::abc" {
		t.Errorf("expected key field, got %v", entry["key"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("expected timestamp field")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("warn", &buf)

	logger.Debug(context.Background(), "should be dropped")
	logger.Info(context.Background(), "should be dropped too")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn level, got %q", buf.String())
	}

	logger.Warn(context.Background(), "should appear")
	if buf.Len() == 0 {
		t.Error("expected warn output")
	}
}

func TestLogger_WithFunc(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	funcLogger := logger.WithFunc(FuncMeta{Namespace: "math", Name: "add", Backend: "default"})
	funcLogger.Info(context.Background(), "stored")

	entry := decodeLine(t, &buf)
	if entry["func.id"] != "math.add" {
		t.Errorf("expected func.id math.add, got %v", entry["func.id"])
	}
	if entry["func.namespace"] != "math" {
		t.Errorf("expected func.namespace math, got %v", entry["func.namespace"])
	}
	if entry["cache.backend"] != "default" {
		t.Errorf("expected cache.backend default, got %v", entry["cache.backend"])
	}
}

func TestLogger_WithFuncDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	_ = logger.WithFunc(FuncMeta{Name: "child"})
	logger.Info(context.Background(), "parent entry")

	entry := decodeLine(t, &buf)
	if _, ok := entry["func.id"]; ok {
		t.Error("parent logger should not carry child function context")
	}
}

func TestLogger_RedactsSensitiveFields(t *testing.T) {
	testCases := []string{"args", "value", "result", "password", "secret", "token", "api_key", "credential"}

	for _, field := range testCases {
		t.Run(field, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLoggerWithWriter("info", &buf)

			logger.Info(context.Background(), "test", Field{Key: field, Value: "sensitive-data"})

			entry := decodeLine(t, &buf)
			if entry[field] != "[REDACTED]" {
				t.Errorf("field %q should be redacted, got %v", field, entry[field])
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		input string
		want  LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tc := range testCases {
		if got := ParseLogLevel(tc.input); got != tc.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNopLogger_Inert(t *testing.T) {
	logger := NewNopLogger()
	ctx := context.Background()

	logger.Info(ctx, "dropped")
	logger.Warn(ctx, "dropped")
	logger.Error(ctx, "dropped")
	logger.Debug(ctx, "dropped")

	child := logger.WithFunc(FuncMeta{Name: "x"})
	if child == nil {
		t.Error("WithFunc on nop logger should return a logger")
	}
}
