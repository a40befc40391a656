package meter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	defaultClientID = "kegweb"
	qosAtLeastOnce  = 1
	disconnectQuiet = 250 // milliseconds

	defaultSubscribeTimeout = 10 * time.Second
)

// SubscriberConfig holds the configuration for the MQTT subscriber
type SubscriberConfig struct {
	// BrokerURL is the MQTT broker address, e.g. tcp://localhost:1883
	BrokerURL string

	// ClientID defaults to "kegweb"
	ClientID string

	// Handler records the decoded pours
	Handler *Handler

	// SubscribeTimeout bounds the wait for the broker to acknowledge the
	// subscription; defaults to 10 seconds
	SubscribeTimeout time.Duration

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Subscriber receives pour events from flow meter controllers over MQTT
type Subscriber struct {
	client           mqtt.Client
	handler          *Handler
	subscribeTimeout time.Duration
	logger           *slog.Logger
}

// NewSubscriber creates a subscriber; it does not connect until Start
func NewSubscriber(cfg *SubscriberConfig) (*Subscriber, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.BrokerURL == "" {
		return nil, errors.New("broker URL cannot be empty")
	}

	if cfg.Handler == nil {
		return nil, errors.New("handler cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	clientID := cfg.ClientID
	if clientID == "" {
		clientID = defaultClientID
	}

	subscribeTimeout := cfg.SubscribeTimeout
	if subscribeTimeout <= 0 {
		subscribeTimeout = defaultSubscribeTimeout
	}

	sub := &Subscriber{
		handler:          cfg.Handler,
		subscribeTimeout: subscribeTimeout,
		logger:           logger.With("component", "meter", "broker", cfg.BrokerURL),
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetOrderMatters(false).
		SetOnConnectHandler(sub.onConnect)

	sub.client = mqtt.NewClient(opts)
	return sub, nil
}

// Start connects to the broker. The pour topic is subscribed on every
// (re)connect.
func (s *Subscriber) Start() error {
	if token := s.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return nil
}

// Stop disconnects from the broker
func (s *Subscriber) Stop() {
	s.client.Disconnect(disconnectQuiet)
	s.logger.Info("disconnected from MQTT broker")
}

func (s *Subscriber) onConnect(client mqtt.Client) {
	token := client.Subscribe(TopicPattern, qosAtLeastOnce, s.onMessage)
	if !token.WaitTimeout(s.subscribeTimeout) {
		s.logger.Error("timed out subscribing to pour topic",
			"topic", TopicPattern, "timeout", s.subscribeTimeout)
		return
	}
	if err := token.Error(); err != nil {
		s.logger.Error("failed to subscribe to pour topic", "topic", TopicPattern, "error", err)
		return
	}
	s.logger.Info("subscribed to pour topic", "topic", TopicPattern)
}

func (s *Subscriber) onMessage(_ mqtt.Client, msg mqtt.Message) {
	if err := s.handler.HandlePour(context.Background(), msg.Topic(), msg.Payload()); err != nil {
		s.logger.Warn("dropped pour event", "topic", msg.Topic(), "error", err)
	}
}
