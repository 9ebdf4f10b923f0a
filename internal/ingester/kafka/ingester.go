// Package kafka consumes mark events from a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/filmsocial/filmrate/pkg/model"
	"go.uber.org/zap"
)

// Ingester defines a Kafka ingester of mark events.
type Ingester struct {
	consumer *kafka.Consumer
	logger   *zap.Logger
	topic    string
}

// NewIngester creates a new Kafka ingester.
func NewIngester(addr string, groupID string, topic string, logger *zap.Logger) (*Ingester, error) {
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": addr,
		"group.id":          groupID,
	})
	if err != nil {
		return nil, err
	}
	return &Ingester{consumer: consumer, logger: logger, topic: topic}, nil
}

// Ingest starts consuming the topic and returns a channel of mark events.
// The channel closes when the context is cancelled.
func (i *Ingester) Ingest(ctx context.Context) (chan model.MarkEvent, error) {
	if err := i.consumer.SubscribeTopics([]string{i.topic}, nil); err != nil {
		return nil, err
	}
	ch := make(chan model.MarkEvent, 1)
	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				i.consumer.Close()
				return
			default:
			}
			msg, err := i.consumer.ReadMessage(-1)
			if err != nil {
				i.logger.Warn("Failed to read message", zap.Error(err))
				continue
			}
			var event model.MarkEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				i.logger.Warn("Failed to unmarshal mark event", zap.Error(err))
				continue
			}
			ch <- event
		}
	}()
	return ch, nil
}
