package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select where and how log records are written. Standard output is
// reserved for the protocol, so records go to stderr or a file.
type Options struct {
	Level  string
	Format string // "console" or "json"
	File   string // empty means stderr
}

// Logger bundles a zap logger with the level it was built on, so the level
// can be raised or lowered at runtime.
type Logger struct {
	*zap.Logger
	AtomicLevel zap.AtomicLevel
	Base        zapcore.Level

	closer io.Closer
}

// New builds a logger from opts.
func New(opts Options) (*Logger, error) {
	base := ParseLevel(opts.Level)
	level := zap.NewAtomicLevelAt(base)

	var sink zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
	var closer io.Closer
	if path := strings.TrimSpace(opts.File); path != "" {
		if err := ensureDir(filepath.Dir(path)); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		sink = zapcore.AddSync(f)
		closer = f
	}

	var enc zapcore.Encoder
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "json":
		enc = zapcore.NewJSONEncoder(jsonEncoderConfig())
	default:
		enc = zapcore.NewConsoleEncoder(consoleEncoderConfig())
	}

	core := zapcore.NewCore(enc, sink, level)
	logger := zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))
	return &Logger{Logger: logger, AtomicLevel: level, Base: base, closer: closer}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop(), AtomicLevel: zap.NewAtomicLevel(), Base: zapcore.InfoLevel}
}

// SetDebug switches between debug output and the configured level.
func (l *Logger) SetDebug(on bool) {
	if on {
		l.AtomicLevel.SetLevel(zapcore.DebugLevel)
		return
	}
	l.AtomicLevel.SetLevel(l.Base)
}

// Close flushes buffered records and releases the log file, if any.
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

func ensureDir(dir string) error {
	if strings.TrimSpace(dir) == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
