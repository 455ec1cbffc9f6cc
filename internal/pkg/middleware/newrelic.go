package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// NewRelic returns the nrecho transaction middleware, or a pass-through when
// the agent is disabled.
func NewRelic(app *newrelic.Application) echo.MiddlewareFunc {
	if app == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return nrecho.Middleware(app)
}

