package league

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	GetPlayerFunc            func(name string) (*Player, error)
	GetOrCreatePlayerFunc    func(name string) (*Player, bool, error)
	UpdatePlayerFunc         func(name string, update PlayerUpdate) (*Player, error)
	RecordGameFunc           func(session *GameSession, outcomes []Outcome) error
	TopByConsecutiveWinsFunc func(n int) ([]LeaderboardEntry, error)
	TopByBestStreakFunc      func(n int) ([]LeaderboardEntry, error)
	RecentGamesFunc          func(n int) ([]*GameSession, error)
	ClearFunc                func()

	// Call records
	GetPlayerCalls    []string
	UpdatePlayerCalls []struct {
		Name   string
		Update PlayerUpdate
	}
	RecordGameCalls []RecordGameCall
}

// RecordGameCall holds the arguments for a call to RecordGame.
type RecordGameCall struct {
	Session  *GameSession
	Outcomes []Outcome
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerCalls = nil
	m.UpdatePlayerCalls = nil
	m.RecordGameCalls = nil
}

func (m *MockStore) GetPlayer(name string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerCalls = append(m.GetPlayerCalls, name)
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(name)
	}
	return nil, ErrPlayerNotFound
}

func (m *MockStore) GetOrCreatePlayer(name string) (*Player, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetOrCreatePlayerFunc != nil {
		return m.GetOrCreatePlayerFunc(name)
	}
	return &Player{Name: name}, true, nil
}

func (m *MockStore) UpdatePlayer(name string, update PlayerUpdate) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdatePlayerCalls = append(m.UpdatePlayerCalls, struct {
		Name   string
		Update PlayerUpdate
	}{name, update})
	if m.UpdatePlayerFunc != nil {
		return m.UpdatePlayerFunc(name, update)
	}
	return nil, ErrPlayerNotFound
}

func (m *MockStore) RecordGame(session *GameSession, outcomes []Outcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordGameCalls = append(m.RecordGameCalls, RecordGameCall{Session: session, Outcomes: outcomes})
	if m.RecordGameFunc != nil {
		return m.RecordGameFunc(session, outcomes)
	}
	return nil
}

func (m *MockStore) TopByConsecutiveWins(n int) ([]LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.TopByConsecutiveWinsFunc != nil {
		return m.TopByConsecutiveWinsFunc(n)
	}
	return nil, nil
}

func (m *MockStore) TopByBestStreak(n int) ([]LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.TopByBestStreakFunc != nil {
		return m.TopByBestStreakFunc(n)
	}
	return nil, nil
}

func (m *MockStore) RecentGames(n int) ([]*GameSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RecentGamesFunc != nil {
		return m.RecentGamesFunc(n)
	}
	return nil, nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}
