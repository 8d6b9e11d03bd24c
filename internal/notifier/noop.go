package notifier

import (
	"github.com/charmbracelet/log"
	"github.com/mauv0809/pong-tracker/internal/league"
)

// noop is used when no notification provider is configured.
type noop struct{}

// NewNoop returns a Notifier that drops every notification.
func NewNoop() Notifier {
	return &noop{}
}

func (n *noop) SendResultNotification(session *league.GameSession, dryRun bool) error {
	log.Debug("Notifications disabled, dropping result notification", "sessionID", session.ID)
	return nil
}

func (n *noop) SendLeaderboard(entries []league.LeaderboardEntry, dryRun bool) error {
	log.Debug("Notifications disabled, dropping leaderboard notification")
	return nil
}
