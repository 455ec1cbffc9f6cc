package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/services/notifications/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	topic   string
	message interface{}
	err     error
}

func (p *recordingPublisher) Publish(topic string, message interface{}) error {
	p.topic = topic
	p.message = message
	return p.err
}

func TestNSQGW_Notify(t *testing.T) {
	publisher := &recordingPublisher{}
	gw := NewNSQGW(publisher, "mrshoofer.notifications")

	n := &models.Notification{Kind: models.NotificationDriverAssigned, Phone: "09351112233"}
	require.NoError(t, gw.Notify(context.Background(), n))
	assert.Equal(t, "mrshoofer.notifications", publisher.topic)
	assert.Same(t, n, publisher.message)

	publisher.err = errors.New("nsqd gone")
	assert.ErrorContains(t, gw.Notify(context.Background(), n), "nsqd gone")
}

func TestLocalGW_NotifyIsDetached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher := mocks.NewMockNotificationUC(ctrl)
	gw := NewLocalGW(dispatcher, time.Second)

	n := &models.Notification{Kind: models.NotificationPassengerTripCreated, Phone: "09123456789"}
	dispatcher.EXPECT().
		Dispatch(gomock.Any(), n).
		DoAndReturn(func(ctx context.Context, _ *models.Notification) error {
			assert.NoError(t, ctx.Err())
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return errors.New("provider down")
		})

	requestCtx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, gw.Notify(requestCtx, n))
	gw.Wait()
}

func TestNewNotifier(t *testing.T) {
	cfg := &models.Config{NSQ: models.NSQConfig{Topic: "mrshoofer.notifications"}}

	assert.IsType(t, &NSQGW{}, NewNotifier(cfg, &recordingPublisher{}, nil))
	assert.IsType(t, &LocalGW{}, NewNotifier(cfg, nil, nil))
}
