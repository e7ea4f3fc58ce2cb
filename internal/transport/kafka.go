// v2
// internal/transport/kafka.go
package transport

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/segmentio/kafka-go"
)

type kafkaMessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaWriteCloser interface {
	Close() error
}

// KafkaPublisher maps slash-separated topic names onto Kafka topics, with one
// shared writer behind all of them.
type KafkaPublisher struct {
	writer kafkaMessageWriter
	closer kafkaWriteCloser
	log    *slog.Logger
}

// NewKafka returns a publisher over a writer that creates topics on demand.
func NewKafka(brokers []string, log *slog.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisherWithWriter(w, w, log)
}

// newKafkaPublisherWithWriter wires the provided writer into the publisher. It is used in tests.
func newKafkaPublisherWithWriter(writer kafkaMessageWriter, closer kafkaWriteCloser, log *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, closer: closer, log: log}
}

// Publish writes the payload to the Kafka topic derived from the logical
// topic name: slashes are not legal in Kafka topic names, so they become
// dots. The original name rides along as the message key, which also keeps
// per-room messages on one partition.
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	msg := kafka.Message{
		Topic: strings.ReplaceAll(topic, "/", "."),
		Key:   []byte(topic),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write to %s: %w", msg.Topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	if p.closer != nil {
		return p.closer.Close()
	}
	return nil
}
