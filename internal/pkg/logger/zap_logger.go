package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps zap with optional file output and New Relic log forwarding
type ZapLogger struct {
	*zap.Logger
	service string
	nrApp   *newrelic.Application
	file    *os.File
}

// newRelicCore is a zapcore.Core that forwards entries to New Relic
type newRelicCore struct {
	level   zapcore.Level
	service string
	fields  []zapcore.Field
	nrApp   *newrelic.Application
}

func (c *newRelicCore) Enabled(level zapcore.Level) bool {
	return c.level.Enabled(level)
}

func (c *newRelicCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(append([]zapcore.Field{}, c.fields...), fields...)
	return &clone
}

func (c *newRelicCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *newRelicCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if c.nrApp == nil {
		return nil
	}

	encoder := zapcore.NewMapObjectEncoder()
	for _, field := range c.fields {
		field.AddTo(encoder)
	}
	for _, field := range fields {
		field.AddTo(encoder)
	}
	encoder.Fields["service"] = c.service
	encoder.Fields["caller"] = entry.Caller.TrimmedPath()
	if entry.Stack != "" {
		encoder.Fields["stacktrace"] = entry.Stack
	}

	c.nrApp.RecordLog(newrelic.LogData{
		Timestamp:  entry.Time.UnixMilli(),
		Message:    entry.Message,
		Severity:   entry.Level.String(),
		Attributes: encoder.Fields,
	})
	return nil
}

func (c *newRelicCore) Sync() error {
	return nil
}

// ZapConfig holds Zap logger configuration
type ZapConfig struct {
	Level    string
	FilePath string
	Service  string
}

// NewZapLogger builds a JSON logger writing to stdout, to FilePath when set
// and to New Relic when nrApp is not nil.
func NewZapLogger(config ZapConfig, nrApp *newrelic.Application) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	})

	zl := &ZapLogger{service: config.Service, nrApp: nrApp}
	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)}

	if config.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		zl.file = file
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(file), level))
	}

	if nrApp != nil {
		cores = append(cores, &newRelicCore{level: level, service: config.Service, nrApp: nrApp})
	}

	zl.Logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).
		With(zap.String("service", config.Service))
	return zl, nil
}

// NewNopLogger returns a logger that discards everything, for tests
func NewNopLogger() *ZapLogger {
	return &ZapLogger{Logger: zap.NewNop()}
}

// InitZapLoggerFromConfig initializes the logger from the app config
func InitZapLoggerFromConfig(configs *models.Config, service string, nrApp *newrelic.Application) (*ZapLogger, error) {
	return NewZapLogger(ZapConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
		Service:  service,
	}, nrApp)
}

// Close flushes buffered entries and closes the log file
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()
	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}

// WithNewRelicContext adds trace correlation fields from txn
func (zl *ZapLogger) WithNewRelicContext(txn *newrelic.Transaction) *zap.Logger {
	if txn == nil {
		return zl.Logger
	}
	md := txn.GetLinkingMetadata()
	if md.TraceID == "" {
		return zl.Logger
	}
	return zl.Logger.With(zap.String("trace.id", md.TraceID), zap.String("span.id", md.SpanID))
}

// LogHTTPRequest writes one access log line, leveled by status code
func (zl *ZapLogger) LogHTTPRequest(txn *newrelic.Transaction, method, path, clientIP, actor, requestID string, statusCode int, latency time.Duration, err error) {
	logger := zl.WithNewRelicContext(txn).With(
		zap.Int("status", statusCode),
		zap.String("latency", latency.String()),
		zap.Int64("latency_ms", latency.Milliseconds()),
		zap.String("client_ip", clientIP),
		zap.String("method", method),
		zap.String("path", path),
		zap.String("actor", actor),
		zap.String("request_id", requestID),
	)

	switch {
	case statusCode >= 500:
		if err != nil {
			logger.Error("Server error", zap.Error(err))
		} else {
			logger.Error("Server error")
		}
	case statusCode >= 400:
		logger.Warn("Client error")
	default:
		logger.Info("Request processed")
	}
}
