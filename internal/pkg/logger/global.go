package logger

import (
	"context"
	"sync"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
)

var (
	globalLogger *ZapLogger
	once         sync.Once
	mu           sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger, falling back to a production
// zap logger when none was set.
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	once.Do(func() {
		defaultLogger, _ := zap.NewProduction()
		mu.Lock()
		if globalLogger == nil {
			globalLogger = &ZapLogger{Logger: defaultLogger}
		}
		mu.Unlock()
	})

	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// InfoCtx logs an info message correlated with the New Relic transaction in ctx
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	l := GetGlobalLogger()
	l.WithNewRelicContext(newrelic.FromContext(ctx)).Info(msg, fields...)
}

// WarnCtx logs a warning correlated with the New Relic transaction in ctx
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	l := GetGlobalLogger()
	l.WithNewRelicContext(newrelic.FromContext(ctx)).Warn(msg, fields...)
}

// ErrorCtx logs an error correlated with the New Relic transaction in ctx
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	l := GetGlobalLogger()
	l.WithNewRelicContext(newrelic.FromContext(ctx)).Error(msg, fields...)
}
