package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestStandardLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewStandardLogger(log.New(&buf, "", 0), Warn, "[test]")

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below Warn should be suppressed, got %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("Warn and Error should be logged, got %q", out)
	}
}

func TestStandardLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewStandardLogger(log.New(&buf, "", 0), Debug, "[test]")

	l.Info("pushing", "platform", "wecom", "bytes", 42)

	out := buf.String()
	if !strings.Contains(out, "platform=wecom") || !strings.Contains(out, "bytes=42") {
		t.Errorf("key-value pairs should be rendered, got %q", out)
	}
}

func TestLogMode(t *testing.T) {
	var buf bytes.Buffer
	l := NewStandardLogger(log.New(&buf, "", 0), Silent, "[test]")

	l.Error("hidden")
	if buf.Len() != 0 {
		t.Errorf("silent logger should write nothing")
	}

	l.LogMode(Debug).Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("LogMode should return a logger at the new level")
	}
}

func TestDiscard(t *testing.T) {
	// Must never panic, whatever is thrown at it.
	Discard.Debug("x")
	Discard.Info("x", "k")
	Discard.Warn("x", "k", "v")
	Discard.Error("x", nil, 3)
	if got := Discard.LogMode(Debug); got != Discard {
		t.Errorf("Discard.LogMode should return itself")
	}
}
