package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func bufferedLogger(buf *bytes.Buffer) *logger.ZapLogger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return &logger.ZapLogger{Logger: zap.New(core)}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		panicValue   interface{}
		expectInLogs []string
	}{
		{
			name:         "string panic",
			panicValue:   "test panic message",
			expectInLogs: []string{"test panic message", "stack_trace", "Panic recovered during request processing"},
		},
		{
			name:         "error panic",
			panicValue:   fmt.Errorf("test error panic"),
			expectInLogs: []string{"test error panic", "*errors.errorString"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := echo.New()
			e.Use(RequestIDMiddleware())
			e.Use(PanicRecoveryMiddleware(bufferedLogger(&buf)))
			e.GET("/boom", func(c echo.Context) error {
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "INTERNAL_ERROR", body["cause"])
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

			for _, expected := range tt.expectInLogs {
				assert.Contains(t, buf.String(), expected)
			}
		})
	}
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() { PanicRecoveryMiddleware(nil) })
}

func TestRequestIDMiddleware_Propagates(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("request_id").(string))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Body.String())
	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
}
