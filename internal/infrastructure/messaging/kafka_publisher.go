package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/event"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/port"
)

var _ port.EventPublisher = (*KafkaPublisher)(nil)

// KafkaPublisher implements port.EventPublisher on a kafka-go writer. Events
// are keyed by aggregate ID so all events of one pipeline run land on the same
// partition.
type KafkaPublisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a new Kafka event publisher for the given topic.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafkago.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
			RequiredAcks: kafkago.RequireAll,
		},
		logger: logger,
	}
}

// Publish serializes the domain events and writes them in one batch.
func (p *KafkaPublisher) Publish(ctx context.Context, events ...event.Event) error {
	messages := make([]kafkago.Message, 0, len(events))
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}

		messages = append(messages, kafkago.Message{
			Key:   []byte(evt.AggregateID().String()),
			Value: payload,
			Headers: []kafkago.Header{
				{Key: "event_type", Value: []byte(evt.EventType())},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("kafka publish to %s: %w", p.writer.Topic, err)
	}

	p.logger.Debug("published domain events",
		slog.Int("count", len(messages)),
		slog.String("topic", p.writer.Topic),
	)
	return nil
}

// Close closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
