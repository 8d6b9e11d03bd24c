package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client *pubsub.Client
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	// EventGameRecorded is published after a session and its stat updates commit.
	EventGameRecorded EventType = "game-recorded"
	// EventStatsReconcile is published when a post-commit side effect failed and
	// a consumer should re-derive state from the session log.
	EventStatsReconcile EventType = "stats-reconcile"
)
