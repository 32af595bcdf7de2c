package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "info", Format: "console"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("applied modification", "component", "pipeline", "identifier", "common")
	line := buf.String()
	if !strings.Contains(line, "INFO pipeline: applied modification") {
		t.Errorf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "identifier=common") {
		t.Errorf("missing attribute: %q", line)
	}
}

func TestConsoleLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "warn", Format: "console"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record should have been filtered: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "debug", Format: "json"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("record", slog.String("key", "value"))
	out := buf.String()
	if !strings.Contains(out, `"level":"debug"`) {
		t.Errorf("unexpected output: %q", out)
	}
	if !strings.Contains(out, `"key":"value"`) {
		t.Errorf("missing attribute: %q", out)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestValueQuoting(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Format: "console"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("msg", "snippet", "has spaces")
	if !strings.Contains(buf.String(), `snippet="has spaces"`) {
		t.Errorf("expected quoting, got %q", buf.String())
	}
}
