package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	GamesRecorded      prometheus.Counter
	PlayersCreated     prometheus.Counter
	PublishFailures    prometheus.Counter
	NotifSent          prometheus.Counter
	NotifFailed        prometheus.Counter
	RecordDuration     prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}
