// Package logger is the process-wide structured logger. Calls take a message followed by
// alternating key/value pairs, e.g. logger.Info("server starting", "address", addr).
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop().Sugar()
)

// Init builds the logger for the given environment. Anything other than "production"
// gets the development encoder and debug level.
func Init(environment string) {
	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	built, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		built = zap.NewExample()
	}

	set(built)
}

// SetNop discards all output. Used by tests.
func SetNop() {
	set(zap.NewNop())
}

func set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	_ = log.Sync()
	log = l.Sugar()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debug(msg string, keysAndValues ...any) {
	current().Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	current().Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	current().Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	current().Errorw(msg, keysAndValues...)
}

func Fatal(msg string, keysAndValues ...any) {
	current().Fatalw(msg, keysAndValues...)
}

// Sync flushes buffered entries; call it before exit.
func Sync() {
	_ = current().Sync()
}
