package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/courtside/tennis-record/internal/config"
	"github.com/courtside/tennis-record/internal/metrics"
	"github.com/courtside/tennis-record/internal/player"
	"github.com/courtside/tennis-record/internal/ranking"
	"github.com/courtside/tennis-record/internal/team"
)

func NewServer(players player.PlayerService, teams team.TeamService, rankings ranking.RankingService, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Players:        players,
		Teams:          teams,
		Rankings:       rankings,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
		validate:       validator.New(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All API handlers are wrapped with middleware using the Chain helper.
	// The CORS middleware must run even for unmatched methods, hence it
	// wraps the whole API subtree rather than individual routes.
	cors := corsMiddleware(s.Cfg.CORS.AllowedOrigins)

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", s.HealthCheckHandler())
	s.Router.Handle("GET /api/players", Chain(s.SearchPlayersHandler(), cors, s.observed("/api/players")))
	s.Router.Handle("GET /api/players/rating", Chain(s.PlayerRatingHandler(), cors, s.observed("/api/players/rating")))
	s.Router.Handle("GET /api/players/{id}", Chain(s.GetPlayerHandler(), cors, s.observed("/api/players/{id}")))
	s.Router.Handle("GET /api/teams", Chain(s.SearchTeamsHandler(), cors, s.observed("/api/teams")))
	s.Router.Handle("GET /api/teams/{id}", Chain(s.GetTeamHandler(), cors, s.observed("/api/teams/{id}")))
	s.Router.Handle("GET /api/rankings", Chain(s.RankingsHandler(), cors, s.observed("/api/rankings")))
	s.Router.Handle("OPTIONS /api/", Chain(http.NotFoundHandler(), cors))

	// Everything else is the static single-page app, when configured.
	s.Router.Handle("/", s.FrontendHandler())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
