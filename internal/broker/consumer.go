package broker

import (
	"encoding/json"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/config"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/domains"
)

// RequestHandler processes one transformation request.
type RequestHandler func(req *domains.TransformRequest) *domains.TransformResponse

// Consumer subscribes to the request topics and routes each message to the
// registered handler, publishing the reply to the per-request response topic.
type Consumer struct {
	client    mqtt.Client
	handler   RequestHandler
	publisher *Publisher
}

func NewConsumer(cfg *config.BrokerConfig, publisher *Publisher) (*Consumer, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(cfg.ClientID + "-consumer").
		SetAutoReconnect(true)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}

	log.Info("consumer connected to broker")

	return &Consumer{
		client:    client,
		publisher: publisher,
	}, nil
}

// RegisterHandler sets the handler invoked for every request message.
func (c *Consumer) RegisterHandler(handler RequestHandler) {
	c.handler = handler
}

// Start subscribes to the request topics.
func (c *Consumer) Start() error {
	token := c.client.Subscribe(RequestWildcard, 1, c.handleMessage)
	if token.Wait() && token.Error() != nil {
		return token.Error()
	}

	log.Infof("subscribed to %s", RequestWildcard)
	return nil
}

func (c *Consumer) handleMessage(client mqtt.Client, msg mqtt.Message) {
	log.Infof("received message on topic %s", msg.Topic())

	var req domains.TransformRequest
	if err := json.Unmarshal(msg.Payload(), &req); err != nil {
		log.Warnf("failed to parse request message: %v", err)
		return
	}

	// The topic's platform segment backfills a request without one.
	if req.SourcePlatform == "" {
		if platform, ok := ParseRequestTopic(msg.Topic()); ok {
			req.SourcePlatform = platform
		}
	}

	if req.RequestID == "" {
		log.Warn("dropping request without request_id, nowhere to respond")
		return
	}

	if c.handler == nil {
		log.Warn("no handler registered, dropping request")
		return
	}

	resp := c.handler(&req)
	resp.RequestID = req.RequestID

	if err := c.publisher.PublishResponse(resp); err != nil {
		log.Warnf("failed to publish response for %s: %v", req.RequestID, err)
	}
}

func (c *Consumer) Close() {
	c.client.Disconnect(250)
	log.Info("consumer disconnected from broker")
}
