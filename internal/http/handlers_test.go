package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mauv0809/pong-tracker/internal/config"
	"github.com/mauv0809/pong-tracker/internal/database"
	"github.com/mauv0809/pong-tracker/internal/league"
	"github.com/mauv0809/pong-tracker/internal/metrics"
	"github.com/mauv0809/pong-tracker/internal/notifier"
	"github.com/mauv0809/pong-tracker/internal/pubsub"
	"github.com/mauv0809/pong-tracker/internal/recorder"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer initializes a new server with a test database and mock clients.
func setupTestServer(t *testing.T) (*Server, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := league.New(db)
	cfg := config.Config{CORSOrigins: []string{"*"}}

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	rec := recorder.New(store, notifier.NewNoop(), metricsSvc, pubsub.NewMock())
	server := NewServer(store, rec, metricsSvc, metricsHandler, cfg)

	teardown := func() {
		if dbTeardown != nil {
			dbTeardown()
		}
	}
	return server, teardown
}

func doJSON(t *testing.T, server *Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func recordGame(t *testing.T, server *Server, p1, p2, winner string) {
	t.Helper()
	rr := doJSON(t, server, "POST", "/api/games", map[string]any{
		"mode":          "multiplayer",
		"player1_name":  p1,
		"player2_name":  p2,
		"winner":        winner,
		"player1_score": 11,
		"player2_score": 8,
		"game_duration": 150,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}

func TestPingHandler(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	rr := doJSON(t, server, "GET", "/api/", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody[map[string]string](t, rr)
	assert.Equal(t, "Ping Pong Game API", body["message"])
}

func TestHealthCheckHandler(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	rr := doJSON(t, server, "GET", "/api/health", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody[map[string]string](t, rr)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestRegisterPlayerHandler(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	rr := doJSON(t, server, "POST", "/api/players", map[string]string{"name": "Ana"})
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decodeBody[league.Player](t, rr)
	assert.Equal(t, "Ana", created.Name)
	assert.Zero(t, created.TotalGames)

	// Registering the same name again returns the record unchanged.
	rr = doJSON(t, server, "POST", "/api/players", map[string]string{"name": "Ana"})
	require.Equal(t, http.StatusOK, rr.Code)
	again := decodeBody[league.Player](t, rr)
	assert.Equal(t, created.ID, again.ID)

	t.Run("missing name", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/api/players", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetPlayerHandler(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	rr := doJSON(t, server, "GET", "/api/players/Ana", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	doJSON(t, server, "POST", "/api/players", map[string]string{"name": "Ana"})

	rr = doJSON(t, server, "GET", "/api/players/Ana", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	player := decodeBody[league.Player](t, rr)
	assert.Equal(t, "Ana", player.Name)
}

func TestUpdatePlayerHandler(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	doJSON(t, server, "POST", "/api/players", map[string]string{"name": "Ana"})

	rr := doJSON(t, server, "PUT", "/api/players/Ana", map[string]any{"best_streak": 7})
	require.Equal(t, http.StatusOK, rr.Code)
	player := decodeBody[league.Player](t, rr)
	assert.Equal(t, 7, player.BestStreak)
	assert.Zero(t, player.TotalGames, "unsupplied fields stay untouched")

	t.Run("empty body", func(t *testing.T) {
		rr := doJSON(t, server, "PUT", "/api/players/Ana", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown player", func(t *testing.T) {
		rr := doJSON(t, server, "PUT", "/api/players/nobody", map[string]any{"best_streak": 1})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRecordGameHandler(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	recordGame(t, server, "Ana", "Bo", "Bo")

	// Both participants were created and their stats reflect the result.
	rr := doJSON(t, server, "GET", "/api/players/Bo", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	bo := decodeBody[league.Player](t, rr)
	assert.Equal(t, 1, bo.ConsecutiveWins)
	assert.Equal(t, 1, bo.TotalWins)

	rr = doJSON(t, server, "GET", "/api/players/Ana", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	ana := decodeBody[league.Player](t, rr)
	assert.Equal(t, 0, ana.ConsecutiveWins)
	assert.Equal(t, 1, ana.TotalGames)
}

func TestRecordGameHandler_InvalidInput(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	rr := doJSON(t, server, "POST", "/api/games", map[string]any{
		"mode":          "multiplayer",
		"player1_name":  "Ana",
		"winner":        "Ana",
		"game_duration": 60,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, server, "GET", "/api/games", nil)
	sessions := decodeBody[[]league.GameSession](t, rr)
	assert.Empty(t, sessions, "rejected input must not be persisted")
}

func TestRecordGameHandler_DryRun(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	rr := doJSON(t, server, "POST", "/api/games?dry_run=true", map[string]any{
		"mode":          "multiplayer",
		"player1_name":  "Ana",
		"player2_name":  "Bo",
		"winner":        "Ana",
		"game_duration": 60,
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, server, "GET", "/api/players/Ana", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code, "dry run must not touch the store")
}

func TestLeaderboardHandlers(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	t.Run("empty leaderboard is an empty list", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/api/leaderboard", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]\n", rr.Body.String())
	})

	// Bo wins twice, then loses to Ana.
	recordGame(t, server, "Ana", "Bo", "Bo")
	recordGame(t, server, "Ana", "Bo", "Bo")
	recordGame(t, server, "Ana", "Bo", "Ana")

	rr := doJSON(t, server, "GET", "/api/leaderboard", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	entries := decodeBody[[]league.LeaderboardEntry](t, rr)
	require.Len(t, entries, 2)
	assert.Equal(t, "Ana", entries[0].Name, "live streaks rank the leaderboard")
	assert.Equal(t, 1, entries[0].ConsecutiveWins)

	rr = doJSON(t, server, "GET", "/api/leaderboard/best-streaks", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	entries = decodeBody[[]league.LeaderboardEntry](t, rr)
	require.Len(t, entries, 2)
	assert.Equal(t, "Bo", entries[0].Name, "broken runs still count for the all-time board")
	assert.Equal(t, 2, entries[0].BestStreak)
}

func TestRecentGamesHandler(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	for i := 0; i < 25; i++ {
		winner := "Ana"
		if i%2 == 0 {
			winner = "Bo"
		}
		recordGame(t, server, "Ana", "Bo", winner)
	}

	rr := doJSON(t, server, "GET", "/api/games", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	sessions := decodeBody[[]league.GameSession](t, rr)
	assert.Len(t, sessions, 20, "the feed is capped at 20 sessions")
}

func TestCORSHeaders(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	req := httptest.NewRequest("OPTIONS", "/api/games", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	rr = doJSON(t, server, "GET", "/api/health", nil)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestClearStoreHandler(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	recordGame(t, server, "Ana", "Bo", "Ana")

	rr := doJSON(t, server, "GET", fmt.Sprintf("/clear?dry_run=%t", false), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Store cleared!", rr.Body.String())

	rr = doJSON(t, server, "GET", "/api/players/Ana", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
