package kafka

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/turtacn/BullsEye-Radar/internal/config"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/BullsEye-Radar/pkg/errors"
)

var (
	ErrProducerClosed = errors.New(errors.ErrCodeInternal, "producer closed")
)

// WriterInterface abstracts kafka.Writer for testing.
type WriterInterface interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventPublisher is what the application layer depends on; the Producer is
// its Kafka-backed implementation.
type EventPublisher interface {
	PublishDatasetEvent(ctx context.Context, eventType string, payload DatasetEventPayload) error
	Close() error
}

// Producer publishes dataset events to a single topic, keyed by dataset ID
// so per-dataset ordering is preserved across partitions.
type Producer struct {
	writer WriterInterface
	topic  string
	logger logging.Logger
	closed atomic.Bool

	sent   atomic.Int64
	failed atomic.Int64
}

var _ EventPublisher = (*Producer)(nil)

// NewProducer creates a Producer from configuration.
func NewProducer(cfg config.KafkaConfig, log logging.Logger) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.Validation("kafka brokers cannot be empty")
	}
	if cfg.Topic == "" {
		return nil, errors.Validation("kafka topic cannot be empty")
	}

	batchTimeout := cfg.BatchTimeout
	if batchTimeout == 0 {
		batchTimeout = time.Second
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout == 0 {
		writeTimeout = 10 * time.Second
	}
	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = 3
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: batchTimeout,
		WriteTimeout: writeTimeout,
		MaxAttempts:  maxRetries,
		RequiredAcks: kafka.RequireAll,
	}

	log.Info("Kafka producer ready",
		logging.Any("brokers", cfg.Brokers),
		logging.String("topic", cfg.Topic),
	)

	return &Producer{writer: writer, topic: cfg.Topic, logger: log}, nil
}

// NewProducerWithWriter wraps an existing writer (used by tests).
func NewProducerWithWriter(w WriterInterface, topic string, log logging.Logger) *Producer {
	return &Producer{writer: w, topic: topic, logger: log}
}

// PublishDatasetEvent wraps the payload in an envelope and writes it.
func (p *Producer) PublishDatasetEvent(ctx context.Context, eventType string, payload DatasetEventPayload) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}

	env, err := NewDatasetEvent(eventType, payload)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to marshal event payload")
	}
	body, err := json.Marshal(env)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to marshal event envelope")
	}

	msg := kafka.Message{
		Key:   []byte(payload.DatasetID),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
			{Key: "event_id", Value: []byte(env.EventID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.failed.Add(1)
		p.logger.Error("Failed to publish dataset event",
			logging.String("event_type", eventType),
			logging.String("dataset_id", payload.DatasetID),
			logging.Err(err),
		)
		return errors.Wrap(err, errors.ErrCodeMessagingError, "failed to publish event")
	}

	p.sent.Add(1)
	p.logger.Debug("Published dataset event",
		logging.String("event_type", eventType),
		logging.String("dataset_id", payload.DatasetID),
	)
	return nil
}

// Sent returns the number of successfully published events.
func (p *Producer) Sent() int64 { return p.sent.Load() }

// Failed returns the number of failed publish attempts.
func (p *Producer) Failed() int64 { return p.failed.Load() }

// Close flushes and closes the writer.  Safe to call more than once.
func (p *Producer) Close() error {
	if p.closed.Swap(true) {
		return nil
	}
	return p.writer.Close()
}

//Personal.AI order the ending
