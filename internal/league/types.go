package league

import (
	"database/sql"
	"sync"
	"time"
)

// store handles all database operations for the league.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// GameMode distinguishes matches between two humans from matches against the bot.
type GameMode string

const (
	ModeMultiplayer  GameMode = "multiplayer"
	ModeSinglePlayer GameMode = "single_player"
)

// BotDifficulty is the difficulty of the bot opponent in single player games.
type BotDifficulty string

const (
	BotEasy   BotDifficulty = "easy"
	BotMedium BotDifficulty = "medium"
	BotHard   BotDifficulty = "hard"
)

// Player is the persistent statistics record for one player, keyed by name.
type Player struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	ConsecutiveWins int       `json:"consecutive_wins"`
	BestStreak      int       `json:"best_streak"`
	TotalGames      int       `json:"total_games"`
	TotalWins       int       `json:"total_wins"`
	CreatedAt       time.Time `json:"created_at"`
}

// GameSession is an immutable record of one completed match. Sessions are
// append-only: once recorded they are never mutated or deleted.
type GameSession struct {
	ID            string         `json:"id"`
	Mode          GameMode       `json:"mode"`
	Player1Name   string         `json:"player1_name"`
	Player2Name   *string        `json:"player2_name,omitempty"`
	Winner        string         `json:"winner"`
	Player1Score  int            `json:"player1_score"`
	Player2Score  int            `json:"player2_score"`
	BotDifficulty *BotDifficulty `json:"bot_difficulty,omitempty"`
	GameDuration  int            `json:"game_duration"`
	CreatedAt     time.Time      `json:"created_at"`
}

// PlayerUpdate carries a partial update for a player record. Only non-nil
// fields are applied; a nil field means "leave unchanged".
type PlayerUpdate struct {
	Name            *string `json:"name,omitempty"`
	ConsecutiveWins *int    `json:"consecutive_wins,omitempty"`
	BestStreak      *int    `json:"best_streak,omitempty"`
	TotalGames      *int    `json:"total_games,omitempty"`
	TotalWins       *int    `json:"total_wins,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u PlayerUpdate) IsEmpty() bool {
	return u.Name == nil && u.ConsecutiveWins == nil && u.BestStreak == nil &&
		u.TotalGames == nil && u.TotalWins == nil
}

// LeaderboardEntry is the projection of a player served on the leaderboards.
type LeaderboardEntry struct {
	Name            string `json:"name"`
	ConsecutiveWins int    `json:"consecutive_wins"`
	BestStreak      int    `json:"best_streak"`
	TotalGames      int    `json:"total_games"`
	TotalWins       int    `json:"total_wins"`
}

// Outcome is one participant's result in a recorded game.
type Outcome struct {
	PlayerName string
	Won        bool
}
