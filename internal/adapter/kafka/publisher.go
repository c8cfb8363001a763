// Package kafka publishes domain events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"

	"github.com/heartmarshall/partsdesk-backend/internal/config"
	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

// Publisher sends events as JSON messages keyed by Event.Key, so every
// event of one order lands on the same partition.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *slog.Logger
}

// NewPublisher connects a synchronous producer to the configured brokers.
func NewPublisher(cfg config.KafkaConfig, logger *slog.Logger) (*Publisher, error) {
	sc := sarama.NewConfig()
	sc.ClientID = cfg.ClientID
	sc.Producer.Return.Successes = true
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Retry.Max = cfg.MaxRetries
	sc.Producer.Timeout = cfg.WriteTimeout

	producer, err := sarama.NewSyncProducer(cfg.Brokers(), sc)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return NewPublisherWithProducer(producer, cfg.Topic, logger), nil
}

// NewPublisherWithProducer wraps an existing producer.
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		log:      logger.With("adapter", "kafka"),
	}
}

// Publish sends one event and waits for the broker to acknowledge it.
func (p *Publisher) Publish(ctx context.Context, ev domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", ev.Type, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.Key),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(ev.Type)},
		},
		Timestamp: ev.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("publish event %s: %w", ev.Type, err)
	}

	p.log.DebugContext(ctx, "event published",
		slog.String("type", string(ev.Type)),
		slog.String("key", ev.Key),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)
	return nil
}

// Close flushes and closes the producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}

// Discard drops every event. It stands in for Publisher when Kafka is
// disabled.
type Discard struct{}

func (Discard) Publish(context.Context, domain.Event) error { return nil }

func (Discard) Close() error { return nil }
