package stream

import (
	"github.com/eclipse/paho.mqtt.golang"
)

// Transport moves progress updates in and frames out.
type Transport interface {
	Publish(topic string, payload []byte) error
	Subscribe(topic string, handler func(payload []byte)) error
}

type mqttTransport struct {
	client mqtt.Client
	qos    byte
}

// NewMqttTransport wraps an MQTT client. Frames are published at QoS 2.
func NewMqttTransport(client mqtt.Client) Transport {
	return &mqttTransport{client: client, qos: 2}
}

func (t *mqttTransport) Publish(topic string, payload []byte) error {
	token := t.client.Publish(topic, t.qos, false, payload)
	token.Wait()
	return token.Error()
}

func (t *mqttTransport) Subscribe(topic string, handler func(payload []byte)) error {
	token := t.client.Subscribe(topic, 0, func(_ mqtt.Client, msg mqtt.Message) {
		handler(msg.Payload())
	})
	token.Wait()
	return token.Error()
}
