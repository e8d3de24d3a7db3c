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

// Server is the request façade. It parses and validates query parameters,
// delegates to the query services and serializes their views; no query
// logic lives here.
type Server struct {
	Players        player.PlayerService
	Teams          team.TeamService
	Rankings       ranking.RankingService
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux

	validate *validator.Validate
}

// playerListResponse is the {items, total} envelope of GET /api/players.
type playerListResponse struct {
	Items []player.PlayerView `json:"items"`
	Total int                 `json:"total"`
}

// errorResponse is the body of 4xx responses.
type errorResponse struct {
	Error string `json:"error"`
}
