package notifier

import (
	"sync"

	"github.com/mauv0809/pong-tracker/internal/league"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendResultNotificationFunc func(session *league.GameSession, dryRun bool) error
	SendLeaderboardFunc        func(entries []league.LeaderboardEntry, dryRun bool) error

	// Call records
	SendResultNotificationCalls []*league.GameSession
	SendLeaderboardCalls        [][]league.LeaderboardEntry
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = nil
	m.SendLeaderboardCalls = nil
}

func (m *Mock) SendResultNotification(session *league.GameSession, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = append(m.SendResultNotificationCalls, session)
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(session, dryRun)
	}
	return nil
}

func (m *Mock) SendLeaderboard(entries []league.LeaderboardEntry, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, entries)
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(entries, dryRun)
	}
	return nil
}
