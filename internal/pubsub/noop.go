package pubsub

import "github.com/charmbracelet/log"

// noopClient is used when no GCP project is configured, e.g. local development.
type noopClient struct{}

// NewNoop returns a PubSubClient that drops every message.
func NewNoop() PubSubClient {
	return &noopClient{}
}

func (n *noopClient) SendMessage(topic EventType, data any) error {
	log.Debug("Pubsub disabled, dropping message", "topic", topic)
	return nil
}

func (n *noopClient) ProcessMessage(data []byte, returnValue any) error {
	return nil
}

func (n *noopClient) Close() error {
	return nil
}
