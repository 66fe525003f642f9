package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" WARN ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v want %v", in, got, want)
		}
	}
}

func TestSetDebugRestoresBase(t *testing.T) {
	l, err := New(Options{Level: "warn"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	l.SetDebug(true)
	if l.AtomicLevel.Level() != zapcore.DebugLevel {
		t.Fatalf("debug on: level %v", l.AtomicLevel.Level())
	}
	l.SetDebug(false)
	if l.AtomicLevel.Level() != zapcore.WarnLevel {
		t.Fatalf("debug off: level %v want warn", l.AtomicLevel.Level())
	}
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "engine.log")
	l, err := New(Options{Level: "info", Format: "json", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("hello")
	l.Debug("hidden")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Fatalf("log file missing record: %s", data)
	}
	if strings.Contains(string(data), "hidden") {
		t.Fatalf("debug record written at info level: %s", data)
	}
}
