package notifier

import "github.com/mauv0809/pong-tracker/internal/league"

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For completed games
	SendResultNotification(session *league.GameSession, dryRun bool) error
	// For streak leaderboards
	SendLeaderboard(entries []league.LeaderboardEntry, dryRun bool) error
}
