package broker

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sirupsen/logrus"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/config"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/domains"
)

var log = logrus.WithField("component", "broker")

// Publisher handles publishing messages to the broker.
type Publisher struct {
	client mqtt.Client
}

// NewPublisher creates a new MQTT publisher.
func NewPublisher(cfg *config.BrokerConfig) (*Publisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(c mqtt.Client) {
			log.Info("connected to message broker")
		}).
		SetConnectionLostHandler(func(c mqtt.Client, err error) {
			log.Warnf("connection lost: %v", err)
		})

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	client := mqtt.NewClient(opts)

	// Connect with timeout
	token := client.Connect()
	if token.WaitTimeout(10 * time.Second) {
		if token.Error() != nil {
			return nil, fmt.Errorf("failed to connect to broker: %w", token.Error())
		}
	} else {
		return nil, fmt.Errorf("broker connection timeout")
	}

	return &Publisher{client: client}, nil
}

// PublishRequest publishes a transformation request to the requests topic.
func (p *Publisher) PublishRequest(req *domains.TransformRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	topic := RequestTopic(req.SourcePlatform)
	if err := p.PublishRaw(topic, payload); err != nil {
		return err
	}

	log.Infof("published request %s to %s", req.RequestID, topic)
	return nil
}

// PublishResponse publishes a transformation response to the per-request
// response topic.
func (p *Publisher) PublishResponse(resp *domains.TransformResponse) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	topic := ResponseTopic(resp.RequestID)
	if err := p.PublishRaw(topic, payload); err != nil {
		return err
	}

	log.Infof("published response to %s", topic)
	return nil
}

// PublishRaw publishes raw bytes to a specific topic.
func (p *Publisher) PublishRaw(topic string, payload []byte) error {
	token := p.client.Publish(topic, 1, false, payload)
	if token.WaitTimeout(5 * time.Second) {
		if token.Error() != nil {
			return fmt.Errorf("failed to publish: %w", token.Error())
		}
	} else {
		return fmt.Errorf("publish timeout")
	}
	return nil
}

// Close closes the broker connection.
func (p *Publisher) Close() {
	p.client.Disconnect(1000)
	log.Info("disconnected from message broker")
}
