package pubsub

type PubSubClient interface {
	SendMessage(topic EventType, data any) error
	ProcessMessage(data []byte, returnValue any) error
	// Close releases the underlying connection. Safe to call on shutdown even
	// when publishing is disabled.
	Close() error
}
