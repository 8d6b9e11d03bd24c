package league

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyResult_FirstGame(t *testing.T) {
	now := time.Now().UTC()

	t.Run("first game won", func(t *testing.T) {
		next := ApplyResult(nil, "Ana", true, now)
		assert.NotEmpty(t, next.ID)
		assert.Equal(t, "Ana", next.Name)
		assert.Equal(t, 1, next.TotalGames)
		assert.Equal(t, 1, next.TotalWins)
		assert.Equal(t, 1, next.ConsecutiveWins)
		assert.Equal(t, 1, next.BestStreak)
		assert.Equal(t, now, next.CreatedAt)
	})

	t.Run("first game lost", func(t *testing.T) {
		next := ApplyResult(nil, "Ana", false, now)
		assert.Equal(t, 1, next.TotalGames)
		assert.Equal(t, 0, next.TotalWins)
		assert.Equal(t, 0, next.ConsecutiveWins)
		assert.Equal(t, 0, next.BestStreak)
	})
}

func TestApplyResult_WinExtendsStreak(t *testing.T) {
	// Scenario: player with a live streak of 4 wins again.
	prev := &Player{Name: "Bo", ConsecutiveWins: 4, BestStreak: 4, TotalGames: 10, TotalWins: 6}

	next := ApplyResult(prev, "Bo", true, time.Now())

	assert.Equal(t, 5, next.ConsecutiveWins)
	assert.Equal(t, 5, next.BestStreak)
	assert.Equal(t, 11, next.TotalGames)
	assert.Equal(t, 7, next.TotalWins)
}

func TestApplyResult_LossResetsStreakKeepsBest(t *testing.T) {
	prev := &Player{Name: "Bo", ConsecutiveWins: 3, BestStreak: 5, TotalGames: 8, TotalWins: 6}

	next := ApplyResult(prev, "Bo", false, time.Now())

	assert.Equal(t, 0, next.ConsecutiveWins)
	assert.Equal(t, 5, next.BestStreak, "a loss never reduces the historical best")
	assert.Equal(t, 9, next.TotalGames)
	assert.Equal(t, 6, next.TotalWins)
}

func TestApplyResult_DoesNotMutateInput(t *testing.T) {
	prev := &Player{Name: "Bo", ConsecutiveWins: 2, BestStreak: 2, TotalGames: 4, TotalWins: 2}

	_ = ApplyResult(prev, "Bo", true, time.Now())

	assert.Equal(t, 2, prev.ConsecutiveWins)
	assert.Equal(t, 4, prev.TotalGames)
}

func TestApplyResult_Sequence(t *testing.T) {
	// New player plays [win, win, loss]; trailing streak is 0, best is 2.
	now := time.Now().UTC()
	results := []bool{true, true, false}

	var prev *Player
	for _, won := range results {
		next := ApplyResult(prev, "Ana", won, now)
		prev = &next
	}

	assert.Equal(t, 3, prev.TotalGames)
	assert.Equal(t, 2, prev.TotalWins)
	assert.Equal(t, 0, prev.ConsecutiveWins)
	assert.Equal(t, 2, prev.BestStreak)
}

func TestApplyResult_Invariants(t *testing.T) {
	// Any win/loss sequence must keep best_streak >= consecutive_wins,
	// best_streak monotonically non-decreasing, and total_wins <= total_games.
	sequences := [][]bool{
		{true, true, true, true},
		{false, false, false},
		{true, false, true, true, false, true, true, true, false},
		{false, true, false, true, false, true},
	}

	for _, seq := range sequences {
		var prev *Player
		prevBest := 0
		for i, won := range seq {
			next := ApplyResult(prev, "P", won, time.Now())

			require.GreaterOrEqual(t, next.BestStreak, next.ConsecutiveWins, "game %d", i)
			require.GreaterOrEqual(t, next.BestStreak, prevBest, "game %d", i)
			require.LessOrEqual(t, next.TotalWins, next.TotalGames, "game %d", i)
			require.Equal(t, i+1, next.TotalGames, "game %d", i)

			prevBest = next.BestStreak
			prev = &next
		}

		// Trailing run of wins equals the final live streak.
		trailing := 0
		for i := len(seq) - 1; i >= 0 && seq[i]; i-- {
			trailing++
		}
		assert.Equal(t, trailing, prev.ConsecutiveWins)
	}
}
