package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInfoOnlyInVerboseMode(t *testing.T) {
	var quiet bytes.Buffer
	NewLoggerWithWriter("info", false, &quiet).Info("hidden %d", 1)
	if quiet.Len() != 0 {
		t.Fatalf("expected no output, got %q", quiet.String())
	}

	var loud bytes.Buffer
	NewLoggerWithWriter("info", true, &loud).Info("shown %d", 2)
	if !strings.Contains(loud.String(), "shown 2") {
		t.Fatalf("expected info line, got %q", loud.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter("error", true, &buf)
	log.Debug("debug line")
	log.Warn("warn line")
	log.Error("error line")

	out := buf.String()
	if strings.Contains(out, "debug line") || strings.Contains(out, "warn line") {
		t.Fatalf("lower levels leaked: %q", out)
	}
	if !strings.Contains(out, "ERROR") || !strings.Contains(out, "error line") {
		t.Fatalf("missing error line: %q", out)
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter("info", false, &buf)
	log.Progress("🔍", "verbose only")
	log.ProgressAlways("✅", "done in %dms", 5)

	if got := buf.String(); got != "✅ done in 5ms\n" {
		t.Fatalf("unexpected progress output %q", got)
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter("debug", false, &buf).With("run_id", "abc")
	log.Warn("tagged")
	if !strings.Contains(buf.String(), "abc") {
		t.Fatalf("expected field in output, got %q", buf.String())
	}
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()
	log.Error("nothing")
	log.ProgressAlways("x", "nothing")
}

func TestLevelIsCaseInsensitive(t *testing.T) {
	var buf bytes.Buffer
	NewLoggerWithWriter("DEBUG", false, &buf).Debug("dbg %s", "line")
	if !strings.Contains(buf.String(), "dbg line") {
		t.Fatalf("expected debug output, got %q", buf.String())
	}
}
