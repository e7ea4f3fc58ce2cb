// v3
// internal/transport/mqtt.go
package transport

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// MQTTPublisher publishes over a single shared paho connection.
type MQTTPublisher struct {
	client mqtt.Client
	log    *slog.Logger
}

// NewMQTT connects to the broker and returns a publisher. An empty clientID
// gets a random suffix so parallel simulators do not evict each other from
// the broker session table.
func NewMQTT(broker, clientID, username, password string, log *slog.Logger) (*MQTTPublisher, error) {
	if clientID == "" {
		clientID = "studyspace-" + uuid.NewString()[:8]
	}
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetUsername(username)
	opts.SetPassword(password)
	opts.SetAutoReconnect(true)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetOnConnectHandler(func(mqtt.Client) {
		log.Info("mqtt connected", "broker", broker, "client_id", clientID)
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Error("mqtt connection lost", "error", err)
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect to mqtt broker %s: %w", broker, token.Error())
	}
	return &MQTTPublisher{client: client, log: log}, nil
}

// Publish sends the payload at QoS 0 and waits for the client to hand it off.
func (p *MQTTPublisher) Publish(_ context.Context, topic string, payload []byte) error {
	token := p.client.Publish(topic, 0, false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}

func (p *MQTTPublisher) Close() error {
	p.client.Disconnect(250)
	return nil
}
