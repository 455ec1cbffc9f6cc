package sms

import (
	"context"
	"fmt"
	"strings"

	nrpkg "github.com/mrshoofer/mrshoofer/internal/pkg/newrelic"
	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

type twilioMessenger interface {
	CreateMessage(params *api.CreateMessageParams) (*api.ApiV2010Message, error)
}

// TwilioProvider sends the rendered message body through Twilio
type TwilioProvider struct {
	messages   twilioMessenger
	fromNumber string
}

// NewTwilioProvider creates a Twilio provider
func NewTwilioProvider(accountSID, authToken, fromNumber string) *TwilioProvider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioProvider{messages: client.Api, fromNumber: fromNumber}
}

// Name implements Provider
func (t *TwilioProvider) Name() string { return ProviderTwilio }

// Send implements Provider
func (t *TwilioProvider) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &api.CreateMessageParams{}
	params.SetTo(toE164(msg.To))
	params.SetFrom(t.fromNumber)
	params.SetBody(msg.Body())

	return nrpkg.WithExternalSegment(ctx, "twilio-go", "CreateMessage", "https://api.twilio.com", func() error {
		if _, err := t.messages.CreateMessage(params); err != nil {
			return fmt.Errorf("twilio send failed: %w", err)
		}
		return nil
	})
}

// toE164 rewrites a canonical 09XXXXXXXXX mobile into +989XXXXXXXXX
func toE164(phone string) string {
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	if len(phone) == 11 && strings.HasPrefix(phone, "09") {
		return "+98" + phone[1:]
	}
	return phone
}
