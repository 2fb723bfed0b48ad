package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin printf-style facade over zap. Every layer of the service
// consumes it through a local 3-method interface (Info/Warn/Error), so the
// concrete type only lives in main.
type Logger struct {
	zl *zap.Logger
}

// New creates a logger writing to the given file path ("" or "stdout" for
// stdout) at the given level (debug, info, warn, error).
func New(file string, level string) (*Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("logger: invalid level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if file == "" || file == "stdout" {
		cfg.OutputPaths = []string{"stdout"}
	} else {
		cfg.OutputPaths = []string{file}
	}

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("logger: build: %w", err)
	}

	return &Logger{zl: zl}, nil
}

// Info logs a formatted message at info level.
func (l *Logger) Info(format string, v ...interface{}) {
	l.zl.Info(fmt.Sprintf(format, v...))
}

// Warn logs a formatted message at warn level.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.zl.Warn(fmt.Sprintf(format, v...))
}

// Error logs a formatted message at error level.
func (l *Logger) Error(format string, v ...interface{}) {
	l.zl.Error(fmt.Sprintf(format, v...))
}

// Fatal logs a formatted message and exits the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.zl.Fatal(fmt.Sprintf(format, v...))
}

// Close flushes buffered log entries.
func (l *Logger) Close() {
	_ = l.zl.Sync()
}
