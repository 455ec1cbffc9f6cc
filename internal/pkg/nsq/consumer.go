package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/nsqio/go-nsq"
)

// MessageHandler processes one message body
type MessageHandler func(body []byte) error

// ConsumerConfig identifies the subscription
type ConsumerConfig struct {
	Topic       string
	Channel     string
	MaxInFlight int
}

// Consumer receives messages for one topic/channel. Every message is
// finished after the handler runs, whatever it returns: handler errors are
// logged and the message is not redelivered.
type Consumer struct {
	consumer *nsq.Consumer
	logger   *logger.ZapLogger
	handler  MessageHandler
	topic    string
}

// NewConsumer creates a consumer; call ConnectToNSQD or ConnectToLookupd next
func NewConsumer(cfg ConsumerConfig, handler MessageHandler, l *logger.ZapLogger) (*Consumer, error) {
	if l == nil {
		l = logger.GetGlobalLogger()
	}

	config := nsq.NewConfig()
	if cfg.MaxInFlight > 0 {
		config.MaxInFlight = cfg.MaxInFlight
	}

	consumer, err := nsq.NewConsumer(cfg.Topic, cfg.Channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLogger(newLogAdapter(l), nsq.LogLevelWarning)

	c := &Consumer{consumer: consumer, logger: l, handler: handler, topic: cfg.Topic}
	consumer.AddHandler(c)
	return c, nil
}

// HandleMessage implements nsq.Handler
func (c *Consumer) HandleMessage(message *nsq.Message) error {
	message.DisableAutoResponse()
	defer message.Finish()

	if err := c.handler(message.Body); err != nil {
		c.logger.Warn("Dropping failed NSQ message",
			logger.String("topic", c.topic),
			logger.Int("attempts", int(message.Attempts)),
			logger.Err(err))
	}
	return nil
}

// ConnectToNSQD connects directly to a single nsqd
func (c *Consumer) ConnectToNSQD(address string) error {
	if err := c.consumer.ConnectToNSQD(address); err != nil {
		return fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}
	return nil
}

// ConnectToLookupd discovers nsqd instances through nsqlookupd
func (c *Consumer) ConnectToLookupd(addresses []string) error {
	if err := c.consumer.ConnectToNSQLookupds(addresses); err != nil {
		return fmt.Errorf("failed to connect to NSQ lookupd: %w", err)
	}
	return nil
}

// UnmarshalMessage deserializes a JSON message into v
func UnmarshalMessage(body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop stops the consumer and waits for in-flight handlers
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
