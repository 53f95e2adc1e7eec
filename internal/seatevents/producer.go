package seatevents

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"flightdesk/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// Publisher is the seam the allocation and upgrade services publish through.
type Publisher interface {
	PublishSeatEvent(ctx context.Context, event SeatEvent) error
	Close() error
}

// ProducerConfig contains configuration for the Kafka seat-event producer
type ProducerConfig struct {
	Brokers          []string
	Topic            string
	RetryMax         int
	Timeout          time.Duration
	RequiredAcks     sarama.RequiredAcks
	Compression      sarama.CompressionCodec
	IdempotentWrites bool
}

// DefaultProducerConfig returns a default producer configuration
func DefaultProducerConfig() *ProducerConfig {
	return &ProducerConfig{
		Brokers:          []string{"localhost:9092"},
		Topic:            "seat-events",
		RetryMax:         3,
		Timeout:          10 * time.Second,
		RequiredAcks:     sarama.WaitForAll,
		Compression:      sarama.CompressionSnappy,
		IdempotentWrites: true,
	}
}

// KafkaPublisher publishes seat events to Kafka, keyed by flight id so all
// events for a flight land on the same partition in order.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	config   *ProducerConfig
}

func NewKafkaPublisher(config *ProducerConfig) (Publisher, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.Compression
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = config.Timeout
	saramaConfig.Producer.Idempotent = config.IdempotentWrites
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.GetDefault().Info("Kafka seat-event producer created",
		"topic", config.Topic,
	)

	return &KafkaPublisher{
		producer: producer,
		config:   config,
	}, nil
}

func (kp *KafkaPublisher) PublishSeatEvent(ctx context.Context, event SeatEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal seat event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: kp.config.Topic,
		Key:   sarama.StringEncoder(event.FlightID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
		},
	}

	partition, offset, err := kp.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to publish seat event: %w", err)
	}

	logger.GetDefault().Debug("seat event published",
		"type", string(event.Type),
		"flight_id", event.FlightID,
		"partition", partition,
		"offset", offset,
	)

	return nil
}

func (kp *KafkaPublisher) Close() error {
	return kp.producer.Close()
}
