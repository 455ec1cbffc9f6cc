package sms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

func smsirConfig(url string) models.SMSConfig {
	return models.SMSConfig{
		Provider:     ProviderSmsIR,
		Timeout:      time.Second,
		SmsIRBaseURL: url,
		SmsIRAPIKey:  "smsir-key",
	}
}

func TestSmsIRProvider_Send(t *testing.T) {
	var received smsIRVerifyRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send/verify", r.URL.Path)
		assert.Equal(t, "smsir-key", r.Header.Get("x-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"status":1,"message":"موفق","data":{"messageId":99,"cost":1.5}}`))
	}))
	defer server.Close()

	provider := NewSmsIRProvider(smsirConfig(server.URL), logger.NewNopLogger())
	err := provider.Send(context.Background(), Message{
		To:         "09121234567",
		TemplateID: 388906,
		Params:     []Param{{Name: "ORIGIN", Value: "Tehran"}, {Name: "DESTINATION", Value: "Mashhad"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "09121234567", received.Mobile)
	assert.Equal(t, 388906, received.TemplateID)
	assert.Equal(t, []Param{{Name: "ORIGIN", Value: "Tehran"}, {Name: "DESTINATION", Value: "Mashhad"}}, received.Parameters)
}

func TestSmsIRProvider_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":0,"message":"template not found"}`))
	}))
	defer server.Close()

	err := NewSmsIRProvider(smsirConfig(server.URL), nil).Send(context.Background(), Message{To: "09121234567", TemplateID: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "template not found")
}

func TestSmsIRProvider_ServerErrorNotRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	err := NewSmsIRProvider(smsirConfig(server.URL), nil).Send(context.Background(), Message{To: "09121234567", TemplateID: 1})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestSmsIRProvider_MissingTemplate(t *testing.T) {
	err := NewSmsIRProvider(smsirConfig("http://127.0.0.1:1"), nil).Send(context.Background(), Message{To: "09121234567"})
	assert.ErrorContains(t, err, "no template id")
}

type fakeTwilio struct {
	params *api.CreateMessageParams
	err    error
}

func (f *fakeTwilio) CreateMessage(params *api.CreateMessageParams) (*api.ApiV2010Message, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &api.ApiV2010Message{Sid: &sid}, nil
}

func TestTwilioProvider_Send(t *testing.T) {
	fake := &fakeTwilio{}
	provider := &TwilioProvider{messages: fake, fromNumber: "+15550001111"}

	err := provider.Send(context.Background(), Message{
		To:     "09121234567",
		Params: []Param{{Name: "CODE", Value: "12345"}},
	})

	require.NoError(t, err)
	require.NotNil(t, fake.params.To)
	assert.Equal(t, "+989121234567", *fake.params.To)
	assert.Equal(t, "+15550001111", *fake.params.From)
	assert.Equal(t, "CODE: 12345", *fake.params.Body)
}

func TestTwilioProvider_Error(t *testing.T) {
	provider := &TwilioProvider{messages: &fakeTwilio{err: errors.New("unauthorized")}}

	err := provider.Send(context.Background(), Message{To: "+15550002222", Text: "hi"})
	assert.ErrorContains(t, err, "twilio send failed")
}

func TestMessageBody(t *testing.T) {
	assert.Equal(t, "hello", Message{Text: "hello", Params: []Param{{Name: "A", Value: "1"}}}.Body())
	assert.Equal(t, "A: 1\nB: 2", Message{Params: []Param{{Name: "A", Value: "1"}, {Name: "B", Value: "2"}}}.Body())
}

func TestToE164(t *testing.T) {
	assert.Equal(t, "+989121234567", toE164("09121234567"))
	assert.Equal(t, "+989121234567", toE164("+989121234567"))
	assert.Equal(t, "12345", toE164("12345"))
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		provider string
		expected string
		wantErr  bool
	}{
		{provider: "smsir", expected: ProviderSmsIR},
		{provider: "twilio", expected: ProviderTwilio},
		{provider: "log", expected: ProviderLog},
		{provider: "", expected: ProviderLog},
		{provider: "pigeon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			p, err := NewProvider(models.SMSConfig{Provider: tt.provider, SmsIRBaseURL: "http://localhost"}, logger.NewNopLogger())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p.Name())
		})
	}
}

func TestLogProvider_Send(t *testing.T) {
	assert.NoError(t, NewLogProvider(logger.NewNopLogger()).Send(context.Background(), Message{To: "09121234567", TemplateID: 5}))
}
