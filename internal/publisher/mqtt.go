// v0
// internal/publisher/mqtt.go
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/rohithdvg2005-eng/solar-microgrid/internal/engine"
)

type mqttPublisher struct {
	client mqtt.Client
	topic  string
	log    *slog.Logger
}

func newMQTTPublisher(brokerAddr, topic string, log *slog.Logger) (*mqttPublisher, error) {
	opts := mqtt.NewClientOptions().AddBroker(brokerAddr)
	c := mqtt.NewClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	return &mqttPublisher{
		client: c,
		topic:  topic,
		log:    log.With(slog.String("component", "mqtt-publisher")),
	}, nil
}

func (p *mqttPublisher) Publish(_ context.Context, s engine.Snapshot) error {
	b, err := json.Marshal(s)
	if err != nil {
		p.log.Error("marshal failed", "err", err)
		return err
	}
	token := p.client.Publish(p.topic, 0, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		p.log.Error("mqtt publish failed", "err", err, "index", s.Index)
		return err
	}
	return nil
}

func (p *mqttPublisher) Close() error {
	p.client.Disconnect(250)
	return nil
}
