package events

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/sojin-dev/maumlog/internal/models"
)

// Publisher emits analyzed-entry events for downstream consumers (stats
// pipelines, exports). Publishing is fire-and-forget: a broker outage
// never fails the request that produced the entry.
type Publisher struct {
	producer *kafka.Producer
	topic    string
}

func NewPublisher(brokers, topic string) (*Publisher, error) {
	slog.Info("[EventPublisher] Initializing Kafka producer...",
		slog.String("topic", topic))

	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":   brokers,
		"security.protocol":   "PLAINTEXT",
		"api.version.request": "true",
		"acks":                "all",
	})
	if err != nil {
		return nil, fmt.Errorf("[EventPublisher] failed to create producer: %w", err)
	}

	pub := &Publisher{producer: p, topic: topic}
	go pub.drainDeliveryReports()

	slog.Info("[EventPublisher] Kafka producer initialized successfully")
	return pub, nil
}

func (p *Publisher) drainDeliveryReports() {
	for e := range p.producer.Events() {
		if m, ok := e.(*kafka.Message); ok && m.TopicPartition.Error != nil {
			slog.Warn("[EventPublisher] Delivery failed",
				slog.String("error", m.TopicPartition.Error.Error()))
		}
	}
}

// PublishEntryAnalyzed enqueues one event keyed by entry id.
func (p *Publisher) PublishEntryAnalyzed(event models.EntryAnalyzedEvent) {
	jsonData, err := json.Marshal(event)
	if err != nil {
		slog.Warn("[EventPublisher] Failed to marshal event",
			slog.String("error", err.Error()))
		return
	}

	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.EntryID),
		Value:          jsonData,
	}

	if err := p.producer.Produce(msg, nil); err != nil {
		slog.Warn("[EventPublisher] Failed to produce event",
			slog.String("entry_id", event.EntryID),
			slog.String("error", err.Error()))
		return
	}

	slog.Info("[EventPublisher] Published analyzed-entry event",
		slog.String("entry_id", event.EntryID),
		slog.String("emotion", event.Emotion))
}

func (p *Publisher) Close() {
	slog.Info("[EventPublisher] Shutting down Kafka producer...")
	if remaining := p.producer.Flush(5000); remaining > 0 {
		slog.Warn("[EventPublisher] Not all events were delivered before shutdown",
			slog.Int("remaining", remaining))
	}
	p.producer.Close()
}
