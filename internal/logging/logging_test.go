package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"todo/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.WarnLevel},
		{"verbose", log.WarnLevel},
	}
	for _, tt := range tests {
		if got := logging.ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewSession_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewSession(&buf, "info")

	logger.Debug("hidden")
	logger.Info("shown", "cmd", "add")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "cmd=add") {
		t.Errorf("expected info message with fields, got %q", out)
	}
	if !strings.Contains(out, "session=") {
		t.Errorf("expected session field, got %q", out)
	}
	if !strings.Contains(out, "todo") {
		t.Errorf("expected prefix, got %q", out)
	}
}
