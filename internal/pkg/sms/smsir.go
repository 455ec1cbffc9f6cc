package sms

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	pkghttp "github.com/mrshoofer/mrshoofer/internal/pkg/http"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/pkg/retry"
)

const smsIRVerifyEndpoint = "/send/verify"

type smsIRVerifyRequest struct {
	Mobile     string  `json:"mobile"`
	TemplateID int     `json:"templateId"`
	Parameters []Param `json:"parameters"`
}

type smsIRResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    struct {
		MessageID int64   `json:"messageId"`
		Cost      float64 `json:"cost"`
	} `json:"data"`
}

// SmsIRProvider sends template messages through the sms.ir verify API
type SmsIRProvider struct {
	client *pkghttp.Client
}

// NewSmsIRProvider creates the sms.ir provider. Only dial failures are
// retried, so a message is never submitted twice.
func NewSmsIRProvider(cfg models.SMSConfig, l *logger.ZapLogger) *SmsIRProvider {
	return &SmsIRProvider{
		client: pkghttp.NewClient(pkghttp.Config{
			Name:         "sms.ir",
			BaseURL:      cfg.SmsIRBaseURL,
			APIKeyHeader: "x-api-key",
			APIKey:       cfg.SmsIRAPIKey,
			Timeout:      cfg.Timeout,
			Retry: retry.Config{
				MaxRetries: 1,
				BaseDelay:  250 * time.Millisecond,
				Multiplier: 1,
				Retryable:  isDialError,
			},
		}, l),
	}
}

func isDialError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// Name implements Provider
func (p *SmsIRProvider) Name() string { return ProviderSmsIR }

// Send implements Provider
func (p *SmsIRProvider) Send(ctx context.Context, msg Message) error {
	if msg.TemplateID == 0 {
		return fmt.Errorf("sms.ir: message to %s has no template id", msg.To)
	}

	req := smsIRVerifyRequest{Mobile: msg.To, TemplateID: msg.TemplateID, Parameters: msg.Params}
	if req.Parameters == nil {
		req.Parameters = []Param{}
	}

	var resp smsIRResponse
	if err := p.client.PostJSON(ctx, smsIRVerifyEndpoint, req, &resp); err != nil {
		return fmt.Errorf("sms.ir send failed: %w", err)
	}
	// sms.ir reports success with status 1
	if resp.Status != 1 {
		return fmt.Errorf("sms.ir rejected message: status %d: %s", resp.Status, resp.Message)
	}
	return nil
}
