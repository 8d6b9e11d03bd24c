package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pong-tracker/internal/league"
	"github.com/mauv0809/pong-tracker/internal/recorder"
)

const (
	leaderboardSize = 10
	recentGamesSize = 20
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) PingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"message": "Ping Pong Game API"})
	}
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		respondJSON(w, http.StatusOK, map[string]string{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func (s *Server) PreflightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}

// RegisterPlayerHandler returns the record for the requested name, creating a
// zeroed one on first sight. Registering an existing name is not an error and
// never modifies the record.
func (s *Server) RegisterPlayerHandler() http.HandlerFunc {
	type request struct {
		Name string `json:"name"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Name == "" {
			respondError(w, http.StatusBadRequest, "name is required")
			return
		}

		player, created, err := s.Store.GetOrCreatePlayer(req.Name)
		if err != nil {
			log.Error("Failed to register player", "error", err, "name", req.Name)
			respondError(w, http.StatusInternalServerError, "failed to register player")
			return
		}

		status := http.StatusOK
		if created {
			s.Metrics.IncPlayersCreated()
			status = http.StatusCreated
		}
		respondJSON(w, status, player)
	}
}

func (s *Server) GetPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")

		player, err := s.Store.GetPlayer(name)
		if errors.Is(err, league.ErrPlayerNotFound) {
			respondError(w, http.StatusNotFound, fmt.Sprintf("player %q not found", name))
			return
		}
		if err != nil {
			log.Error("Failed to fetch player", "error", err, "name", name)
			respondError(w, http.StatusInternalServerError, "failed to fetch player")
			return
		}
		respondJSON(w, http.StatusOK, player)
	}
}

func (s *Server) UpdatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")

		var update league.PlayerUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		player, err := s.Store.UpdatePlayer(name, update)
		switch {
		case errors.Is(err, league.ErrNoFields):
			respondError(w, http.StatusBadRequest, "no fields to update")
			return
		case errors.Is(err, league.ErrPlayerNotFound):
			respondError(w, http.StatusNotFound, fmt.Sprintf("player %q not found", name))
			return
		case err != nil:
			log.Error("Failed to update player", "error", err, "name", name)
			respondError(w, http.StatusInternalServerError, "failed to update player")
			return
		}
		respondJSON(w, http.StatusOK, player)
	}
}

// LeaderboardHandler serves the current-streak ranking.
func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return s.leaderboardHandler(s.Store.TopByConsecutiveWins)
}

// BestStreaksHandler serves the all-time-streak ranking.
func (s *Server) BestStreaksHandler() http.HandlerFunc {
	return s.leaderboardHandler(s.Store.TopByBestStreak)
}

func (s *Server) leaderboardHandler(top func(int) ([]league.LeaderboardEntry, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := top(leaderboardSize)
		if err != nil {
			log.Error("Failed to build leaderboard", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to build leaderboard")
			return
		}
		if entries == nil {
			entries = []league.LeaderboardEntry{}
		}
		respondJSON(w, http.StatusOK, entries)
	}
}

func (s *Server) RecordGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input recorder.GameSessionInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		session, err := s.Recorder.Record(input, isDryRunFromContext(r))
		if errors.Is(err, recorder.ErrInvalidSession) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to record game")
			return
		}
		respondJSON(w, http.StatusCreated, session)
	}
}

func (s *Server) RecentGamesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions, err := s.Store.RecentGames(recentGamesSize)
		if err != nil {
			log.Error("Failed to fetch recent games", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to fetch recent games")
			return
		}
		if sessions == nil {
			sessions = []*league.GameSession{}
		}
		respondJSON(w, http.StatusOK, sessions)
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear entire store")
		s.Store.Clear()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
		log.Info("Store cleared successfully")
	}
}
