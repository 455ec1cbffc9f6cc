package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
	"github.com/mrshoofer/mrshoofer/services/notifications"
)

const defaultSendTimeout = 15 * time.Second

// LocalGW dispatches each notification on its own goroutine, detached from
// the request that produced it
type LocalGW struct {
	dispatcher notifications.NotificationUC
	timeout    time.Duration
	wg         sync.WaitGroup
}

// NewLocalGW creates an in-process notification gateway
func NewLocalGW(dispatcher notifications.NotificationUC, timeout time.Duration) *LocalGW {
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &LocalGW{dispatcher: dispatcher, timeout: timeout}
}

// Notify returns immediately; delivery errors are only logged
func (g *LocalGW) Notify(_ context.Context, n *models.Notification) error {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
		defer cancel()

		if err := g.dispatcher.Dispatch(ctx, n); err != nil {
			logger.Warn("Notification dispatch failed",
				logger.String("kind", string(n.Kind)),
				logger.String("phone", utils.MaskPhoneNumber(n.Phone)),
				logger.ErrorField(err))
		}
	}()
	return nil
}

// Wait blocks until in-flight dispatches finish
func (g *LocalGW) Wait() {
	g.wg.Wait()
}
