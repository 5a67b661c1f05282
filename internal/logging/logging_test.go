package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("test message", "key", "value")

	output := buf.String()
	if output == "" {
		t.Fatal("expected output, got empty string")
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, output)
	}

	if _, ok := parsed["msg"]; !ok {
		t.Errorf("JSON output missing 'msg' field: %s", output)
	}
	if parsed["key"] != "value" {
		t.Errorf("JSON output missing custom attribute: got %v, want 'value'", parsed["key"])
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("test message", "key", "value")

	output := buf.String()
	if output == "" {
		t.Fatal("expected output, got empty string")
	}

	if !strings.Contains(output, "test message") {
		t.Errorf("output missing message: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("output missing key=value attribute: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("output missing level indicator: %s", output)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelWarn,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("should be filtered")
	if buf.Len() != 0 {
		t.Errorf("info message not filtered at warn level: %s", buf.String())
	}

	logger.Warn("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("warn message missing: %s", buf.String())
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		v    int
		want slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{5, slog.LevelDebug},
	}
	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.v); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	// Must not panic and must accept all levels silently.
	logger.Debug("discarded")
	logger.Error("discarded")
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	logger.Debug("visible only with -v or on failure", "key", "value")
}
