package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	PlayerSearches     prometheus.Counter
	TeamSearches       prometheus.Counter
	RankingQueries     prometheus.Counter
	RatingLookups      prometheus.Counter
	LookupMisses       prometheus.Counter
	RequestDuration    *prometheus.HistogramVec
	StartupTimeSeconds prometheus.Gauge
}
