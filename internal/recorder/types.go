package recorder

import (
	"errors"

	"github.com/mauv0809/pong-tracker/internal/league"
	"github.com/mauv0809/pong-tracker/internal/metrics"
	"github.com/mauv0809/pong-tracker/internal/notifier"
	"github.com/mauv0809/pong-tracker/internal/pubsub"
)

// ErrInvalidSession is returned when a session input fails shape validation.
var ErrInvalidSession = errors.New("invalid game session")

// Recorder turns a finished game into a persisted session plus the per-player
// stats cascade. It holds no state of its own.
type Recorder struct {
	store    league.Store
	notifier notifier.Notifier
	metrics  metrics.Metrics
	pubsub   pubsub.PubSubClient
}

// GameSessionInput is the caller-supplied shape of a finished game, before
// identity and creation timestamp are assigned.
type GameSessionInput struct {
	Mode          league.GameMode       `json:"mode"`
	Player1Name   string                `json:"player1_name"`
	Player2Name   *string               `json:"player2_name,omitempty"`
	Winner        string                `json:"winner"`
	Player1Score  int                   `json:"player1_score"`
	Player2Score  int                   `json:"player2_score"`
	BotDifficulty *league.BotDifficulty `json:"bot_difficulty,omitempty"`
	GameDuration  int                   `json:"game_duration"`
}
