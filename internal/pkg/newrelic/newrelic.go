package newrelic

import (
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// InitNewRelic returns the APM application, or nil when APM is disabled or
// the agent cannot start. Callers treat nil as "no instrumentation".
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	appName := configs.NewRelic.AppName
	if appName == "" {
		appName = configs.App.Name
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(appName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
		newrelic.ConfigAppLogDecoratingEnabled(true),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without it", logger.Err(err))
		return nil
	}

	logger.Info("New Relic enabled",
		logger.String("app_name", appName),
		logger.Bool("forward_logs", configs.NewRelic.ForwardLogs))
	return nrApp
}
