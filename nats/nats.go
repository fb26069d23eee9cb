package nats

import (
	"github.com/Spidey-Batsy/Coin-collector-multiplayer/circuitbreaker"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

var conn *nats.Conn

func Connect(natsUrl string) {
	if natsUrl == "" {
		// No NATS server configured, do nothing.
		log.Info("No nats server configured")
		return
	}

	c, err := nats.Connect(natsUrl)
	if err != nil {
		log.WithError(err).Error("Failed to connect to nats")
		return
	}

	log.Info("Connected to nats at ", natsUrl)
	conn = c
}

// Publish sends a gameplay event to the configured NATS server. It is a
// no-op without a connection, so gameplay never depends on NATS being up.
func Publish(subject string, data []byte) {
	if conn == nil {
		return
	}

	_, err := circuitbreaker.NatsBreaker.Execute(func() (interface{}, error) {
		return nil, conn.Publish(subject, data)
	})
	if err != nil {
		log.WithError(err).Error("Failed to publish message")
	}
}
