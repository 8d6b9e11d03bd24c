package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	// Check if the 'players' table was created
	var playersTableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='players'").Scan(&playersTableName)
	require.NoError(t, err, "Querying for players table should not produce an error")
	assert.Equal(t, "players", playersTableName, "The 'players' table should be created")

	// Check if the 'game_sessions' table was created
	var sessionsTableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='game_sessions'").Scan(&sessionsTableName)
	require.NoError(t, err, "Querying for game_sessions table should not produce an error")
	assert.Equal(t, "game_sessions", sessionsTableName, "The 'game_sessions' table should be created")
}

func TestInitDB_IsIdempotent(t *testing.T) {
	path := t.TempDir() + "/pong.db"

	db, teardown, err := InitDB(path, "", "", "../../migrations")
	require.NoError(t, err)
	teardown()

	// Re-opening the same file must re-run migrations without error.
	db, teardown, err = InitDB(path, "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()
	require.NoError(t, db.Ping())
}
