// v0
// internal/publisher/publisher.go

// Package publisher streams evaluated snapshots to an external broker and drives
// the fixed-cadence refresh loop.
package publisher

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rohithdvg2005-eng/solar-microgrid/internal/config"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/engine"
)

// Publisher delivers one snapshot per refresh cycle.
type Publisher interface {
	Publish(ctx context.Context, s engine.Snapshot) error
	Close() error
}

// New selects the configured backend. "none" returns nil: the loop still runs
// (metrics keep updating) but nothing is published.
func New(cfg config.Config, log *slog.Logger) (Publisher, error) {
	switch cfg.Publisher {
	case "none", "":
		return nil, nil
	case "kafka":
		return newKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log), nil
	case "mqtt":
		return newMQTTPublisher(cfg.MQTTBroker, cfg.MQTTTopic, log)
	default:
		return nil, fmt.Errorf("unknown publisher %q (want kafka, mqtt or none)", cfg.Publisher)
	}
}
