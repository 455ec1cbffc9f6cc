package sms

import (
	"context"

	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

// LogProvider writes messages to the log instead of sending them
type LogProvider struct {
	logger *logger.ZapLogger
}

// NewLogProvider creates a log-only provider for local development
func NewLogProvider(l *logger.ZapLogger) *LogProvider {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &LogProvider{logger: l}
}

// Name implements Provider
func (p *LogProvider) Name() string { return ProviderLog }

// Send implements Provider
func (p *LogProvider) Send(ctx context.Context, msg Message) error {
	p.logger.Info("SMS (log provider)",
		logger.String("to", utils.MaskPhoneNumber(msg.To)),
		logger.Int("template_id", msg.TemplateID),
		logger.Any("params", msg.Params))
	return nil
}
