package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/courtside/tennis-record/internal/player"
	"github.com/courtside/tennis-record/internal/team"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) SearchPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, err := parsePlayerCriteria(r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := s.validate.Struct(criteria); err != nil {
			writeError(w, http.StatusBadRequest, "invalid search parameters")
			log.Warn("rejected player search", "error", err)
			return
		}

		items, total, err := s.Players.Search(criteria)
		if err != nil {
			http.Error(w, "Failed to search players", http.StatusInternalServerError)
			log.Error("Failed to search players", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, playerListResponse{Items: items, Total: total})
	}
}

func (s *Server) PlayerRatingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if strings.TrimSpace(q) == "" {
			writeError(w, http.StatusBadRequest, "Query 'q' required.")
			return
		}

		detail, err := s.Players.RatingLookup(q)
		if errors.Is(err, player.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no player matched the query")
			return
		}
		if err != nil {
			http.Error(w, "Failed to look up rating", http.StatusInternalServerError)
			log.Error("Failed to look up rating", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}

func (s *Server) GetPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "player id must be an integer")
			return
		}

		detail, err := s.Players.GetByID(id)
		if errors.Is(err, player.ErrNotFound) {
			writeError(w, http.StatusNotFound, "player not found")
			return
		}
		if err != nil {
			http.Error(w, "Failed to get player", http.StatusInternalServerError)
			log.Error("Failed to get player", "id", id, "error", err)
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}

func (s *Server) SearchTeamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := s.Teams.Search(parseTeamCriteria(r.URL.Query()))
		if err != nil {
			http.Error(w, "Failed to search teams", http.StatusInternalServerError)
			log.Error("Failed to search teams", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, teams)
	}
}

func (s *Server) GetTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "team id must be an integer")
			return
		}

		view, err := s.Teams.GetByID(id)
		if errors.Is(err, team.ErrNotFound) {
			writeError(w, http.StatusNotFound, "team not found")
			return
		}
		if err != nil {
			http.Error(w, "Failed to get team", http.StatusInternalServerError)
			log.Error("Failed to get team", "id", id, "error", err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

func (s *Server) RankingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := s.Rankings.Query(parseRankingCriteria(r.URL.Query()))
		if err != nil {
			http.Error(w, "Failed to query rankings", http.StatusInternalServerError)
			log.Error("Failed to query rankings", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

// FrontendHandler serves the static single-page app and falls back to
// index.html for unknown paths so hash routing keeps working. Without a
// configured frontend directory it serves 404s.
func (s *Server) FrontendHandler() http.HandlerFunc {
	dir := s.Cfg.FrontendDir
	var fileServer http.Handler
	if dir != "" {
		fileServer = http.FileServer(http.Dir(dir))
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if fileServer == nil {
			http.NotFound(w, r)
			return
		}
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err != nil || info.IsDir() && r.URL.Path != "/" {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		fileServer.ServeHTTP(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
