// internal/platform/logx/logx_test.go
package logx

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelWarn)

	l.Debug("dbg message")
	l.Info("info message")
	l.Warn("warn message")
	l.Err(errors.New("err message"))

	out := buf.String()
	if strings.Contains(out, "dbg message") {
		t.Error("debug should be filtered at warn level")
	}
	if strings.Contains(out, "info message") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, "warn message") {
		t.Error("warn should be emitted")
	}
	if !strings.Contains(out, "err message") {
		t.Error("err should be emitted")
	}
}

func TestKeyValuePairs(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelDebug)

	l.Info("scoring", "domain", "example.com", "overall", 75.4)

	out := buf.String()
	if !strings.Contains(out, "domain=example.com") {
		t.Errorf("missing kv pair in output: %q", out)
	}
	if !strings.Contains(out, "overall=75.4") {
		t.Errorf("missing numeric kv pair in output: %q", out)
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelDebug).With("provider", "wayback")

	l.Info("fetch done")

	if !strings.Contains(buf.String(), "provider=wayback") {
		t.Errorf("With fields not propagated: %q", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelError)

	l.Info("first")
	l.SetLevel(LevelInfo)
	l.Info("second")

	out := buf.String()
	if strings.Contains(out, "first") {
		t.Error("info emitted before SetLevel")
	}
	if !strings.Contains(out, "second") {
		t.Error("info not emitted after SetLevel")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
