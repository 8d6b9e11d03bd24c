package http

import (
	"net/http"

	"github.com/mauv0809/pong-tracker/internal/config"
	"github.com/mauv0809/pong-tracker/internal/league"
	"github.com/mauv0809/pong-tracker/internal/metrics"
	"github.com/mauv0809/pong-tracker/internal/recorder"
)

func NewServer(store league.Store, rec *recorder.Recorder, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Store:          store,
		Recorder:       rec,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	cors := s.corsMiddleware()

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /api/", Chain(s.PingHandler(), cors, paramsMiddleware))
	s.Router.Handle("GET /api/health", Chain(s.HealthCheckHandler(), cors, paramsMiddleware))
	s.Router.Handle("POST /api/players", Chain(s.RegisterPlayerHandler(), cors, paramsMiddleware))
	s.Router.Handle("GET /api/players/{name}", Chain(s.GetPlayerHandler(), cors, paramsMiddleware))
	s.Router.Handle("PUT /api/players/{name}", Chain(s.UpdatePlayerHandler(), cors, paramsMiddleware))
	s.Router.Handle("GET /api/leaderboard", Chain(s.LeaderboardHandler(), cors, paramsMiddleware))
	s.Router.Handle("GET /api/leaderboard/best-streaks", Chain(s.BestStreaksHandler(), cors, paramsMiddleware))
	s.Router.Handle("POST /api/games", Chain(s.RecordGameHandler(), cors, paramsMiddleware))
	s.Router.Handle("GET /api/games", Chain(s.RecentGamesHandler(), cors, paramsMiddleware))
	s.Router.Handle("OPTIONS /api/", Chain(s.PreflightHandler(), cors))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
