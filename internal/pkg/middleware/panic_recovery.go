package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/utils"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// PanicRecoveryMiddleware turns a panic into a logged 500 response
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) error {
	stackTrace := string(debug.Stack())
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	txn := newrelic.FromContext(c.Request().Context())

	if txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("Panic recovered: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.type":  fmt.Sprintf("%T", r),
				"http.method": c.Request().Method,
				"http.path":   c.Path(),
				"request_id":  requestID,
			},
		})
	}

	zapLogger.WithNewRelicContext(txn).Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", stackTrace),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Path()),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", requestID),
	)

	if c.Response().Committed {
		return nil
	}
	return utils.ErrorResponseHandler(c, http.StatusInternalServerError, apperrors.CauseInternal, "Internal server error")
}
