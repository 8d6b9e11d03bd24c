package league

// Store defines the interface for interacting with the league's data.
type Store interface {
	GetPlayer(name string) (*Player, error)
	// GetOrCreatePlayer returns the existing record unchanged, or creates a
	// zeroed one. The boolean reports whether a record was created.
	GetOrCreatePlayer(name string) (*Player, bool, error)
	UpdatePlayer(name string, update PlayerUpdate) (*Player, error)
	// RecordGame persists the session and applies all stat outcomes in a
	// single transaction.
	RecordGame(session *GameSession, outcomes []Outcome) error
	TopByConsecutiveWins(n int) ([]LeaderboardEntry, error)
	TopByBestStreak(n int) ([]LeaderboardEntry, error)
	RecentGames(n int) ([]*GameSession, error)
	Clear()
}
