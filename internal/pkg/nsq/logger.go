package nsq

import (
	"strings"

	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
)

// logAdapter routes go-nsq's internal logging into zap
type logAdapter struct {
	logger *logger.ZapLogger
}

func newLogAdapter(l *logger.ZapLogger) *logAdapter {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &logAdapter{logger: l}
}

// Output implements the go-nsq logger interface
func (a *logAdapter) Output(calldepth int, s string) error {
	msg := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(msg, "ERR"):
		a.logger.Error(msg, logger.String("component", "nsq"))
	case strings.HasPrefix(msg, "WRN"):
		a.logger.Warn(msg, logger.String("component", "nsq"))
	default:
		a.logger.Debug(msg, logger.String("component", "nsq"))
	}
	return nil
}
