package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"agency/config"
	"agency/infras/otel"
	"agency/shared/constant"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	headerEvent       = "event"
	defaultTopic      = "consultations"
	writeBatchTimeout = 50 * time.Millisecond
)

// Message is one event. Messages sharing a Key land on the same partition.
type Message struct {
	Key   string
	Event string
	Value any
}

func (m *Message) ToKafkaMessage(topic string) (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	message := kafkaGo.Message{
		Topic: topic,
		Key:   []byte(m.Key),
		Value: jsonValue,
	}

	if m.Event != "" {
		message.Headers = []kafkaGo.Header{{Key: headerEvent, Value: []byte(m.Event)}}
	}

	return message, nil
}

type Client interface {
	// SendMessages publishes to topic, or the configured default topic when empty.
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkaGo.Message) error
	Close() error
}

type kafkaClientImpl struct {
	topic  string
	writer messageWriter
	otel   otel.Otel
}

// New returns a publisher, or a no-op one when Kafka is disabled.
func New(config *config.Config, otl otel.Otel) Client {
	if !config.External.Kafka.Enable || len(config.External.Kafka.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, lifecycle events will not be published")

		return &noopClient{}
	}

	transport := &kafkaGo.Transport{}
	if config.External.Kafka.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: config.External.Kafka.SASL.Username,
			Password: config.External.Kafka.SASL.Password,
		}
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(config.External.Kafka.Brokers...),
		Transport:              transport,
		Balancer:               &kafkaGo.Hash{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           writeBatchTimeout,
		RequiredAcks:           kafkaGo.RequireOne,
	}

	log.Info().Strs("brokers", config.External.Kafka.Brokers).Msg("Kafka client initialized")

	return NewWithWriter(config.External.Kafka.Topic, writer, otl)
}

// NewWithWriter wraps any writer with the kafka-go Writer contract.
func NewWithWriter(topic string, writer messageWriter, otl otel.Otel) Client {
	if topic == "" {
		topic = defaultTopic
	}

	return &kafkaClientImpl{
		topic:  topic,
		writer: writer,
		otel:   otl,
	}
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelKafkaScopeName, constant.OtelKafkaScopeName+".SendMessages")
	defer scope.End()
	defer scope.TraceIfError(err)

	if topic == "" {
		topic = k.topic
	}

	scope.SetAttribute("kafka.topic", topic)

	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage(topic)
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to convert message to Kafka message.")

			return fmt.Errorf("failed to convert message to Kafka message: %w", err)
		}

		msgs = append(msgs, msg)
	}

	err = k.writer.WriteMessages(ctx, msgs...)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Debug().Str("topic", topic).Int("count", len(msgs)).Msg("Sent message successfully.")

	return nil
}

func (k *kafkaClientImpl) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}

	return nil
}

type noopClient struct{}

func (n *noopClient) SendMessages(_ context.Context, _ string, _ ...Message) error {
	return nil
}

func (n *noopClient) Close() error {
	return nil
}
