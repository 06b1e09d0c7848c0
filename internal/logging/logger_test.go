package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerWithWriter(t *testing.T) {
	t.Setenv("PEVIEW_LOG_LEVEL", "debug")
	t.Setenv("PEVIEW_LOG_PREFIX", "")

	var buf bytes.Buffer
	lg := NewLoggerWithWriter(&buf)
	lg.Debug("decoded section", "instructions", 42)

	out := buf.String()
	if !strings.Contains(out, "decoded section") {
		t.Errorf("log output missing message: %q", out)
	}
	if !strings.Contains(out, "peview") {
		t.Errorf("log output missing default prefix: %q", out)
	}
	if !strings.Contains(out, "instructions") {
		t.Errorf("log output missing structured field: %q", out)
	}
}

func TestLogLevelFiltering(t *testing.T) {
	t.Setenv("PEVIEW_LOG_LEVEL", "error")

	var buf bytes.Buffer
	lg := NewLoggerWithWriter(&buf)
	lg.Info("should be filtered")
	lg.Error("should appear")

	out := buf.String()
	if strings.Contains(out, "should be filtered") {
		t.Errorf("info message leaked at error level: %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("error message missing: %q", out)
	}
}

func TestIsDebug(t *testing.T) {
	t.Setenv("PEVIEW_LOG_LEVEL", "debug")
	if !IsDebug() {
		t.Error("IsDebug() = false with PEVIEW_LOG_LEVEL=debug")
	}
	t.Setenv("PEVIEW_LOG_LEVEL", "info")
	if IsDebug() {
		t.Error("IsDebug() = true with PEVIEW_LOG_LEVEL=info")
	}
}
