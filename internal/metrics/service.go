package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PlayerSearches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tennis_player_searches_total",
			Help: "The total number of player search queries served.",
		}),
		TeamSearches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tennis_team_searches_total",
			Help: "The total number of team search queries served.",
		}),
		RankingQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tennis_ranking_queries_total",
			Help: "The total number of ranking queries served.",
		}),
		RatingLookups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tennis_rating_lookups_total",
			Help: "The total number of fuzzy rating lookups attempted.",
		}),
		LookupMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tennis_lookup_misses_total",
			Help: "The total number of lookups that found no entity.",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tennis_http_request_duration_seconds",
			Help:    "The duration of HTTP requests, labeled by route.",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tennis_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.PlayerSearches,
		s.TeamSearches,
		s.RankingQueries,
		s.RatingLookups,
		s.LookupMisses,
		s.RequestDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncPlayerSearches() {
	s.PlayerSearches.Inc()
}

func (s *Service) IncTeamSearches() {
	s.TeamSearches.Inc()
}

func (s *Service) IncRankingQueries() {
	s.RankingQueries.Inc()
}

func (s *Service) IncRatingLookups() {
	s.RatingLookups.Inc()
}

func (s *Service) IncLookupMisses() {
	s.LookupMisses.Inc()
}

func (s *Service) ObserveRequestDuration(route string, seconds float64) {
	s.RequestDuration.WithLabelValues(route).Observe(seconds)
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
