package league

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new Store backed by the given database.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

const playerColumns = "id, name, consecutive_wins, best_streak, total_games, total_wins, created_at"

// GetPlayer looks up a player record by name.
func (s *store) GetPlayer(name string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return getPlayer(s.db, name)
}

// getPlayer runs the lookup against either the DB handle or an open transaction.
func getPlayer(q interface {
	QueryRow(query string, args ...any) *sql.Row
}, name string) (*Player, error) {
	row := q.QueryRow("SELECT "+playerColumns+" FROM players WHERE name = ?", name)
	player, err := scanPlayer(row)
	if err == sql.ErrNoRows {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}
	return player, nil
}

func scanPlayer(scanner interface{ Scan(...any) error }) (*Player, error) {
	var p Player
	var createdAt string
	err := scanner.Scan(&p.ID, &p.Name, &p.ConsecutiveWins, &p.BestStreak, &p.TotalGames, &p.TotalWins, &createdAt)
	if err != nil {
		return nil, err
	}
	p.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("player %q has malformed created_at: %w", p.Name, err)
	}
	return &p, nil
}

// timestampLayout is RFC 3339 with a fixed-width fraction. RFC3339Nano trims
// trailing zeros, which breaks lexicographic ordering on the TEXT column that
// RecentGames sorts on.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// parseTimestamp reads the RFC 3339 strings written at the store boundary.
// A malformed value is an error, not something to silently paper over.
func parseTimestamp(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// GetOrCreatePlayer returns the record for name, creating a zeroed one when the
// name has never been seen. The existing record is never modified.
func (s *store) GetOrCreatePlayer(name string) (*Player, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := getPlayer(s.db, name)
	if err == nil {
		return existing, false, nil
	}
	if err != ErrPlayerNotFound {
		return nil, false, err
	}

	player := &Player{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.db.Exec(
		"INSERT INTO players ("+playerColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		player.ID, player.Name, player.ConsecutiveWins, player.BestStreak,
		player.TotalGames, player.TotalWins, formatTimestamp(player.CreatedAt),
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create player %q: %w", name, err)
	}
	log.Info("Created new player", "name", name, "playerID", player.ID)
	return player, true, nil
}

// UpdatePlayer applies a partial update to an existing record. Only the
// explicitly supplied fields are touched.
func (s *store) UpdatePlayer(name string, update PlayerUpdate) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.IsEmpty() {
		return nil, ErrNoFields
	}

	var exists bool
	if err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM players WHERE name = ?)", name).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPlayerNotFound
	}

	var sets []string
	var args []any
	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.ConsecutiveWins != nil {
		sets = append(sets, "consecutive_wins = ?")
		args = append(args, *update.ConsecutiveWins)
	}
	if update.BestStreak != nil {
		sets = append(sets, "best_streak = ?")
		args = append(args, *update.BestStreak)
	}
	if update.TotalGames != nil {
		sets = append(sets, "total_games = ?")
		args = append(args, *update.TotalGames)
	}
	if update.TotalWins != nil {
		sets = append(sets, "total_wins = ?")
		args = append(args, *update.TotalWins)
	}
	args = append(args, name)

	_, err := s.db.Exec("UPDATE players SET "+strings.Join(sets, ", ")+" WHERE name = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update player %q: %w", name, err)
	}

	updatedName := name
	if update.Name != nil {
		updatedName = *update.Name
	}
	return getPlayer(s.db, updatedName)
}

// RecordGame inserts the session and applies every outcome's stat mutation
// inside one transaction. Either the session and all stat updates land, or
// nothing does.
func (s *store) RecordGame(session *GameSession, outcomes []Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var player2 any
	if session.Player2Name != nil {
		player2 = *session.Player2Name
	}
	var difficulty any
	if session.BotDifficulty != nil {
		difficulty = string(*session.BotDifficulty)
	}

	_, err = tx.Exec(`
		INSERT INTO game_sessions (id, mode, player1_name, player2_name, winner, player1_score, player2_score, bot_difficulty, game_duration, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID, session.Mode, session.Player1Name, player2, session.Winner,
		session.Player1Score, session.Player2Score, difficulty,
		session.GameDuration, formatTimestamp(session.CreatedAt),
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert game session %s: %w", session.ID, err)
	}

	for _, outcome := range outcomes {
		prev, err := getPlayer(tx, outcome.PlayerName)
		if err != nil && err != ErrPlayerNotFound {
			tx.Rollback()
			return fmt.Errorf("failed to read player %q: %w", outcome.PlayerName, err)
		}
		next := ApplyResult(prev, outcome.PlayerName, outcome.Won, session.CreatedAt)
		if err := upsertPlayer(tx, next); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert stats for %q: %w", outcome.PlayerName, err)
		}
		log.Debug("Applied game outcome", "player", outcome.PlayerName, "won", outcome.Won, "streak", next.ConsecutiveWins)
	}

	return tx.Commit()
}

// upsertPlayer writes the full stat row keyed by name. On conflict the identity
// fields (id, created_at) are preserved; only the counters move.
func upsertPlayer(tx *sql.Tx, p Player) error {
	_, err := tx.Exec(`
		INSERT INTO players (`+playerColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			consecutive_wins = excluded.consecutive_wins,
			best_streak = excluded.best_streak,
			total_games = excluded.total_games,
			total_wins = excluded.total_wins;`,
		p.ID, p.Name, p.ConsecutiveWins, p.BestStreak, p.TotalGames, p.TotalWins,
		formatTimestamp(p.CreatedAt),
	)
	return err
}

// TopByConsecutiveWins returns the current-streak leaderboard, at most n rows.
func (s *store) TopByConsecutiveWins(n int) ([]LeaderboardEntry, error) {
	return s.topPlayers("consecutive_wins", n)
}

// TopByBestStreak returns the all-time-streak leaderboard, at most n rows.
func (s *store) TopByBestStreak(n int) ([]LeaderboardEntry, error) {
	return s.topPlayers("best_streak", n)
}

// topPlayers runs the shared top-K query. The field is one of the two fixed
// column names above, never caller input. Ties are broken by name ascending so
// leaderboards are reproducible.
func (s *store) topPlayers(field string, n int) ([]LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT name, consecutive_wins, best_streak, total_games, total_wins
		FROM players
		ORDER BY `+field+` DESC, name ASC
		LIMIT ?`, n)
	if err != nil {
		log.Error("Failed to query leaderboard", "error", err, "field", field)
		return nil, err
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.Name, &e.ConsecutiveWins, &e.BestStreak, &e.TotalGames, &e.TotalWins); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// RecentGames returns the n most recently recorded sessions, newest first.
func (s *store) RecentGames(n int) ([]*GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, mode, player1_name, player2_name, winner, player1_score, player2_score, bot_difficulty, game_duration, created_at
		FROM game_sessions
		ORDER BY created_at DESC
		LIMIT ?`, n)
	if err != nil {
		log.Error("Failed to query recent games", "error", err)
		return nil, err
	}
	defer rows.Close()

	var sessions []*GameSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func scanSession(scanner interface{ Scan(...any) error }) (*GameSession, error) {
	var session GameSession
	var player2, difficulty sql.NullString
	var createdAt string

	err := scanner.Scan(
		&session.ID, &session.Mode, &session.Player1Name, &player2, &session.Winner,
		&session.Player1Score, &session.Player2Score, &difficulty,
		&session.GameDuration, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if player2.Valid {
		session.Player2Name = &player2.String
	}
	if difficulty.Valid {
		d := BotDifficulty(difficulty.String)
		session.BotDifficulty = &d
	}
	session.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("session %s has malformed created_at: %w", session.ID, err)
	}
	return &session, nil
}

// Clear wipes both tables. Used by tests and the maintenance endpoint.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	if _, err = tx.Exec("DELETE FROM game_sessions"); err != nil {
		log.Error("Failed to clear game_sessions table", "error", err)
		tx.Rollback()
		return
	}
	if _, err = tx.Exec("DELETE FROM players"); err != nil {
		log.Error("Failed to clear players table", "error", err)
		tx.Rollback()
		return
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}
