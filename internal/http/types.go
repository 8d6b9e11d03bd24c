package http

import (
	"net/http"

	"github.com/mauv0809/pong-tracker/internal/config"
	"github.com/mauv0809/pong-tracker/internal/league"
	"github.com/mauv0809/pong-tracker/internal/metrics"
	"github.com/mauv0809/pong-tracker/internal/recorder"
)

type Server struct {
	Store          league.Store
	Recorder       *recorder.Recorder
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
