package logging

import (
	"os"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Fields map[string]interface{}

var (
	mu     sync.RWMutex
	logger = fallback()
)

// fallback writes info and above as JSON to stderr until Init runs, so
// startup failures are never silent.
func fallback() *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.Lock(os.Stderr), zapcore.InfoLevel)
	return zap.New(core, zap.AddCallerSkip(1))
}

// Init builds the process logger. level is one of debug, info, warn, error;
// format is "json" (default) or "console".
func Init(level, format string) error {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
			return err
		}
	}
	cfg := zap.NewProductionConfig()
	if strings.EqualFold(format, "console") {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.MessageKey = "msg"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	Set(l)
	return nil
}

// Set replaces the process logger.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Sync flushes buffered entries.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = logger.Sync()
}

func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// toZap converts fields in a stable key order so log lines diff cleanly.
func toZap(fields Fields) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		out = append(out, zap.Any(k, fields[k]))
	}
	return out
}

// Debug logs a debug message with optional fields.
func Debug(msg string, fields Fields) {
	current().Debug(msg, toZap(fields)...)
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	current().Info(msg, toZap(fields)...)
}

// Warn logs a warning with optional fields.
func Warn(msg string, fields Fields) {
	current().Warn(msg, toZap(fields)...)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	zf := toZap(fields)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	current().Error(msg, zf...)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	zf := toZap(fields)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	l := current()
	l.Error(msg, zf...)
	_ = l.Sync()
	os.Exit(1)
}
