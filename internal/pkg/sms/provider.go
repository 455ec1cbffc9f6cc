package sms

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

// Provider names accepted by SMS_PROVIDER
const (
	ProviderSmsIR  = "smsir"
	ProviderTwilio = "twilio"
	ProviderLog    = "log"
)

// Param is one named value substituted into a provider template
type Param struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Message is a templated SMS. Template-based providers use TemplateID and
// Params; text providers send Text, or a rendering of the params when Text
// is empty.
type Message struct {
	To         string
	TemplateID int
	Params     []Param
	Text       string
}

// Body renders the message for providers without server-side templates
func (m Message) Body() string {
	if m.Text != "" {
		return m.Text
	}
	lines := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		lines = append(lines, p.Name+": "+p.Value)
	}
	return strings.Join(lines, "\n")
}

// Provider sends one SMS
//
//go:generate mockgen -destination=mocks/mock_provider.go -package=mocks github.com/mrshoofer/mrshoofer/internal/pkg/sms Provider
type Provider interface {
	Send(ctx context.Context, msg Message) error
	Name() string
}

// NewProvider builds the provider selected by cfg.Provider
func NewProvider(cfg models.SMSConfig, l *logger.ZapLogger) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderSmsIR:
		return NewSmsIRProvider(cfg, l), nil
	case ProviderTwilio:
		return NewTwilioProvider(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom), nil
	case ProviderLog, "":
		return NewLogProvider(l), nil
	default:
		return nil, fmt.Errorf("unknown sms provider %q", cfg.Provider)
	}
}
