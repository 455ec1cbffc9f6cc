package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/nsqio/go-nsq"
)

// Producer publishes JSON messages to nsqd
type Producer struct {
	producer *nsq.Producer
}

// NewProducer connects to nsqd at address and pings it once
func NewProducer(address string, l *logger.ZapLogger) (*Producer, error) {
	producer, err := nsq.NewProducer(address, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLogger(newLogAdapter(l), nsq.LogLevelWarning)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer}, nil
}

// Encode marshals message the way Publish does
func Encode(message interface{}) ([]byte, error) {
	body, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}
	return body, nil
}

// Publish sends message to topic synchronously
func (p *Producer) Publish(topic string, message interface{}) error {
	body, err := Encode(message)
	if err != nil {
		return err
	}
	if err := p.producer.Publish(topic, body); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Ping checks the connection to nsqd
func (p *Producer) Ping() error {
	return p.producer.Ping()
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
