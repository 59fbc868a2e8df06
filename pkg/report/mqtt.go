package report

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTConfig names the broker and topic a run summary is published to.
type MQTTConfig struct {
	BrokerURL      string
	Topic          string
	ClientID       string
	ConnectTimeout time.Duration
	PublishTimeout time.Duration
}

const (
	defaultConnectTimeout = 10 * time.Second
	defaultPublishTimeout = 5 * time.Second
)

// MQTTPublisher pushes run summaries to a broker. Each PublishSummary call
// opens its own session; runs are infrequent enough that a persistent
// connection buys nothing.
type MQTTPublisher struct {
	cfg MQTTConfig
}

func NewMQTTPublisher(cfg MQTTConfig) (*MQTTPublisher, error) {
	if cfg.BrokerURL == "" {
		return nil, fmt.Errorf("mqtt: broker URL is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("mqtt: topic is required")
	}
	if cfg.ClientID == "" {
		cfg.ClientID = "carbonsim"
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = defaultPublishTimeout
	}
	return &MQTTPublisher{cfg: cfg}, nil
}

// PublishSummary connects, publishes the summary as JSON at QoS 1, and
// disconnects.
func (p *MQTTPublisher) PublishSummary(s Summary) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("mqtt: encode summary: %w", err)
	}

	opts := mqtt.NewClientOptions().
		AddBroker(p.cfg.BrokerURL).
		SetClientID(p.cfg.ClientID).
		SetConnectTimeout(p.cfg.ConnectTimeout)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(p.cfg.ConnectTimeout) {
		return fmt.Errorf("mqtt: connect to %s timed out", p.cfg.BrokerURL)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt: connect to %s: %w", p.cfg.BrokerURL, err)
	}
	defer client.Disconnect(250)

	pub := client.Publish(p.cfg.Topic, 1, false, payload)
	if !pub.WaitTimeout(p.cfg.PublishTimeout) {
		return fmt.Errorf("mqtt: publish to %s timed out", p.cfg.Topic)
	}
	if err := pub.Error(); err != nil {
		return fmt.Errorf("mqtt: publish to %s: %w", p.cfg.Topic, err)
	}
	return nil
}
