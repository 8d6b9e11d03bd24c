package recorder

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/pong-tracker/internal/league"
	"github.com/mauv0809/pong-tracker/internal/metrics"
	"github.com/mauv0809/pong-tracker/internal/notifier"
	"github.com/mauv0809/pong-tracker/internal/pubsub"
)

// New creates a new Recorder.
func New(store league.Store, notifier notifier.Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Recorder {
	return &Recorder{
		store:    store,
		notifier: notifier,
		metrics:  metrics,
		pubsub:   pubsub,
	}
}

// Record validates the input, assigns identity and creation timestamp, and
// persists the session together with every participant's stat update in one
// transaction. Post-commit side effects (event publish, notification) are
// best-effort and never fail the call.
func (r *Recorder) Record(input GameSessionInput, dryRun bool) (*league.GameSession, error) {
	startTime := time.Now()

	if err := validate(input); err != nil {
		return nil, err
	}

	session := &league.GameSession{
		ID:            uuid.NewString(),
		Mode:          input.Mode,
		Player1Name:   input.Player1Name,
		Player2Name:   input.Player2Name,
		Winner:        input.Winner,
		Player1Score:  input.Player1Score,
		Player2Score:  input.Player2Score,
		BotDifficulty: input.BotDifficulty,
		GameDuration:  input.GameDuration,
		CreatedAt:     time.Now().UTC(),
	}

	outcomes := outcomesFor(session)
	if !winnerIsParticipant(session) {
		// Accepted anyway: the session log is append-only and never rejected
		// for business reasons. Every participant is scored as a loss.
		log.Warn("Winner matches neither participant", "sessionID", session.ID, "winner", session.Winner)
	}

	if dryRun {
		log.Info("[Dry Run] Would record game session", "sessionID", session.ID, "participants", len(outcomes))
		return session, nil
	}

	if err := r.store.RecordGame(session, outcomes); err != nil {
		log.Error("Failed to record game session", "error", err, "sessionID", session.ID)
		// Hand the session to the reconciliation topic so an operator can
		// replay it; best-effort by definition here.
		if pubErr := r.pubsub.SendMessage(pubsub.EventStatsReconcile, session); pubErr != nil {
			r.metrics.IncPublishFailures()
		}
		return nil, fmt.Errorf("failed to record game: %w", err)
	}

	r.metrics.IncGamesRecorded()
	r.metrics.ObserveRecordDuration(time.Since(startTime).Seconds())
	log.Info("Recorded game session", "sessionID", session.ID, "mode", session.Mode, "winner", session.Winner)

	if err := r.pubsub.SendMessage(pubsub.EventGameRecorded, session); err != nil {
		r.metrics.IncPublishFailures()
		log.Error("Failed to publish game-recorded event", "error", err, "sessionID", session.ID)
	}
	if err := r.notifier.SendResultNotification(session, dryRun); err != nil {
		log.Error("Failed to send result notification", "error", err, "sessionID", session.ID)
	}

	return session, nil
}

// outcomesFor derives the win/loss outcome for each named participant.
// Participants are deduplicated, so a self-play session (player1 == player2)
// updates the record exactly once.
func outcomesFor(session *league.GameSession) []league.Outcome {
	outcomes := []league.Outcome{
		{PlayerName: session.Player1Name, Won: session.Winner == session.Player1Name},
	}
	if session.Player2Name != nil && *session.Player2Name != session.Player1Name {
		outcomes = append(outcomes, league.Outcome{
			PlayerName: *session.Player2Name,
			Won:        session.Winner == *session.Player2Name,
		})
	}
	return outcomes
}

func winnerIsParticipant(session *league.GameSession) bool {
	if session.Winner == session.Player1Name {
		return true
	}
	return session.Player2Name != nil && session.Winner == *session.Player2Name
}

func validate(input GameSessionInput) error {
	if input.Player1Name == "" {
		return fmt.Errorf("%w: player1_name is required", ErrInvalidSession)
	}
	if input.Player1Score < 0 || input.Player2Score < 0 {
		return fmt.Errorf("%w: scores must be non-negative", ErrInvalidSession)
	}
	if input.GameDuration <= 0 {
		return fmt.Errorf("%w: game_duration must be positive", ErrInvalidSession)
	}

	switch input.Mode {
	case league.ModeMultiplayer:
		if input.Player2Name == nil || *input.Player2Name == "" {
			return fmt.Errorf("%w: player2_name is required for multiplayer games", ErrInvalidSession)
		}
		if input.BotDifficulty != nil {
			return fmt.Errorf("%w: bot_difficulty is only valid for single player games", ErrInvalidSession)
		}
	case league.ModeSinglePlayer:
		if input.Player2Name != nil {
			return fmt.Errorf("%w: player2_name is not valid for single player games", ErrInvalidSession)
		}
		if input.BotDifficulty == nil {
			return fmt.Errorf("%w: bot_difficulty is required for single player games", ErrInvalidSession)
		}
		switch *input.BotDifficulty {
		case league.BotEasy, league.BotMedium, league.BotHard:
		default:
			return fmt.Errorf("%w: unknown bot_difficulty %q", ErrInvalidSession, *input.BotDifficulty)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidSession, input.Mode)
	}
	return nil
}
