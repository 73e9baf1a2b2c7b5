// v1
// internal/publisher/kafka.go
package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/rohithdvg2005-eng/solar-microgrid/internal/engine"
)

type kafkaPublisher struct {
	w   *kafka.Writer
	log *slog.Logger
}

func newKafkaPublisher(brokers []string, topic string, log *slog.Logger) *kafkaPublisher {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}
	return &kafkaPublisher{w: w, log: log.With(slog.String("component", "kafka-publisher"))}
}

// Publish keys messages by series index so replays of the same sample land on the
// same partition.
func (p *kafkaPublisher) Publish(ctx context.Context, s engine.Snapshot) error {
	b, err := json.Marshal(s)
	if err != nil {
		p.log.Error("marshal failed", "err", err)
		return err
	}
	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(s.Index)),
		Value: b,
		Time:  s.Evaluated,
	})
	if err != nil {
		p.log.Error("kafka write failed", "err", err, "index", s.Index)
		return err
	}
	return nil
}

func (p *kafkaPublisher) Close() error { return p.w.Close() }
