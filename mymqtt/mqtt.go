package mymqtt

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-logr/logr"
)

// Client is a persistent publish-only MQTT connection. Implementations do not
// reconnect on their own: a broken connection surfaces as errors from Publish.
type Client interface {
	Id() string
	Publish(ctx context.Context, topic string, payload []byte) error
	Close()
}

type pahoClient struct {
	id   string      // MQTT client_id (this client)
	mqtt mqtt.Client // MQTT stack
	log  logr.Logger // Logger to use
}

// NewClientE connects to broker over TLS and returns once the connection is
// up. headers are sent with the websocket upgrade request, which is how the
// broker authenticates the connection.
func NewClientE(ctx context.Context, log logr.Logger, broker *url.URL, clientId string, headers http.Header) (Client, error) {
	log = log.WithName("mymqtt")
	log.Info("Initializing MQTT client", "client_id", clientId, "broker", broker.String())

	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker.String())
	opts.Servers = []*url.URL{broker}
	opts.SetClientID(clientId)
	opts.SetHTTPHeaders(headers)
	opts.SetTLSConfig(&tls.Config{})
	opts.SetAutoReconnect(false)
	opts.SetCleanSession(true)

	c := &pahoClient{
		id:   clientId,
		mqtt: mqtt.NewClient(opts),
		log:  log,
	}

	token := c.mqtt.Connect()
	for !token.WaitTimeout(3 * time.Second) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c.log.Info("MQTT client trying to connect as", "client_id", c.id)
	}
	if err := token.Error(); err != nil {
		c.log.Error(err, "MQTT client failed to connect", "client_id", c.id)
		return nil, fmt.Errorf("mqtt connect %s: %w", broker.String(), err)
	}
	c.log.Info("MQTT client connected", "client_id", c.id)
	return c, nil
}

func (c *pahoClient) Id() string {
	return c.id
}

func (c *pahoClient) Publish(ctx context.Context, topic string, payload []byte) error {
	c.log.V(1).Info("Publishing:", "topic", topic, "payload", string(payload))
	token := c.mqtt.Publish(topic, 0 /*qos:at-most-once*/, false /*retain*/, payload)
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			c.log.Error(err, "MQTT publish failed", "topic", topic)
			return fmt.Errorf("mqtt publish %s: %w", topic, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *pahoClient) Close() {
	if c.mqtt.IsConnected() {
		c.mqtt.Disconnect(250 /* milliseconds */)
	}
}
