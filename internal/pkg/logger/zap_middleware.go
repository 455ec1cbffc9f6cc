package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ZapEchoMiddleware writes one access log line per request
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			start := time.Now()

			err := next(c)
			if err != nil {
				// let echo write the response so the status below is final
				c.Error(err)
			}

			latency := time.Since(start)
			actor := "anonymous"
			if adminID := c.Get("admin_id"); adminID != nil {
				actor = fmt.Sprintf("admin:%v", adminID)
			} else if c.Get("partner") != nil {
				actor = "partner"
			}
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			if txn != nil {
				txn.AddAttribute("actor", actor)
				txn.AddAttribute("request_id", requestID)
				if err != nil {
					txn.NoticeError(err)
				}
			}

			// The path is logged without the query string; secure tokens travel in the path
			// and partner payloads in ?data=, neither of which belongs in logs.
			logger.LogHTTPRequest(txn, c.Request().Method, c.Path(), c.RealIP(), actor, requestID,
				c.Response().Status, latency, err)
			return nil
		}
	}
}
