package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewHandler_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, "production", slog.LevelInfo))
	logger.Info("Item created", "item_id", "abc")
	logger.Debug("hidden")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if line["msg"] != "Item created" || line["item_id"] != "abc" {
		t.Errorf("unexpected log line: %v", line)
	}
}

func TestNewHandler_DevelopmentUsesText(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, "development", slog.LevelDebug))
	logger.Debug("Stock adjusted", "direction", "increment")

	out := buf.String()
	if !strings.Contains(out, "Stock adjusted") || !strings.Contains(out, "direction") {
		t.Errorf("expected message and attribute in output, got %q", out)
	}
	if strings.HasPrefix(out, "{") {
		t.Errorf("expected non-JSON output, got %q", out)
	}
}
