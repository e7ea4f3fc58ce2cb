// v2
// internal/transport/transport.go
package transport

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iiishop/CASA0019/internal/config"
)

// Publisher delivers payloads to a named topic. Implementations own their
// connection; Close releases it.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	Close() error
}

// New selects the transport backend named in the config.
func New(cfg *config.AppConfig, log *slog.Logger) (Publisher, error) {
	switch cfg.Transport {
	case config.TransportMQTT:
		return NewMQTT(cfg.MQTTBroker, cfg.MQTTClientID, cfg.MQTTUsername, cfg.MQTTPassword, log)
	case config.TransportKafka:
		return NewKafka(cfg.KafkaBrokers, log), nil
	default:
		return nil, fmt.Errorf("unsupported transport %q", cfg.Transport)
	}
}
