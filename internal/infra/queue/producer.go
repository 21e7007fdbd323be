package queue

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
	"go.uber.org/zap"
)

// Message is one keyed event.
type Message struct {
	Key   []byte
	Value []byte
}

type ProducerHandler interface {
	PublishMessage(ctx context.Context, key, value []byte) error
	PublishMessages(ctx context.Context, msgs ...Message) error
	Close() error
}

type Producer struct {
	writer *kafka.Writer
	log    *zap.Logger
}

// NewProducer returns a producer for topic. With no broker configured it returns
// a producer that skips every publish. A username switches on SASL/PLAIN over TLS.
func NewProducer(broker, topic, username, password string, log *zap.Logger) *Producer {
	if broker == "" {
		log.Info("KAFKA_BROKER not set, alert events will not be published")
		return &Producer{log: log}
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           10 * time.Second,
	}
	if username != "" {
		writer.Transport = &kafka.Transport{
			SASL: plain.Mechanism{Username: username, Password: password},
			TLS:  &tls.Config{MinVersion: tls.VersionTLS12},
		}
	}

	return &Producer{log: log, writer: writer}
}

func (p *Producer) PublishMessage(ctx context.Context, key, value []byte) error {
	return p.PublishMessages(ctx, Message{Key: key, Value: value})
}

// PublishMessages writes msgs in a single batch.
func (p *Producer) PublishMessages(ctx context.Context, msgs ...Message) error {
	if p == nil || p.writer == nil || len(msgs) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	batch := make([]kafka.Message, 0, len(msgs))
	for _, m := range msgs {
		batch = append(batch, kafka.Message{Key: m.Key, Value: m.Value, Time: now})
	}
	return p.writer.WriteMessages(ctx, batch...)
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
