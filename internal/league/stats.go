package league

import (
	"time"

	"github.com/google/uuid"
)

// ApplyResult computes the next player record from the previous one (or nil for
// a player seen for the first time) and a single win/loss result.
//
// The streak rule: a win extends consecutive_wins and pushes best_streak up if
// the current streak passes it; a loss resets consecutive_wins to zero and
// leaves best_streak untouched.
func ApplyResult(prev *Player, name string, won bool, now time.Time) Player {
	if prev == nil {
		next := Player{
			ID:         uuid.NewString(),
			Name:       name,
			TotalGames: 1,
			CreatedAt:  now,
		}
		if won {
			next.TotalWins = 1
			next.ConsecutiveWins = 1
			next.BestStreak = 1
		}
		return next
	}

	next := *prev
	next.TotalGames++
	if won {
		next.TotalWins++
		next.ConsecutiveWins++
		if next.ConsecutiveWins > next.BestStreak {
			next.BestStreak = next.ConsecutiveWins
		}
	} else {
		next.ConsecutiveWins = 0
	}
	return next
}
