package gateway

import (
	"context"
	"fmt"

	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

// Publisher is the part of the NSQ producer the gateway needs
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// NSQGW queues notifications on an NSQ topic for cmd/notifier
type NSQGW struct {
	producer Publisher
	topic    string
}

// NewNSQGW creates a new NSQ notification gateway
func NewNSQGW(producer Publisher, topic string) *NSQGW {
	return &NSQGW{producer: producer, topic: topic}
}

// Notify publishes n as JSON
func (g *NSQGW) Notify(ctx context.Context, n *models.Notification) error {
	if err := g.producer.Publish(g.topic, n); err != nil {
		return fmt.Errorf("failed to queue %s notification: %w", n.Kind, err)
	}
	return nil
}
