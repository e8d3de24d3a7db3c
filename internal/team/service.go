package team

import (
	"errors"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/courtside/tennis-record/internal/metrics"
	"github.com/courtside/tennis-record/internal/store"
)

// ErrNotFound is returned when an id matches no team.
var ErrNotFound = errors.New("team not found")

type service struct {
	store   *store.Store
	metrics metrics.Metrics
}

// New creates a TeamService backed by the given store.
func New(st *store.Store, metricsSvc metrics.Metrics) TeamService {
	return &service{store: st, metrics: metricsSvc}
}

func (s *service) Search(criteria SearchCriteria) ([]TeamView, error) {
	s.metrics.IncTeamSearches()

	name := strings.ToLower(strings.TrimSpace(criteria.Name))
	views := make([]TeamView, 0)
	for _, t := range s.store.Teams() {
		if name != "" && !strings.Contains(strings.ToLower(t.Name), name) {
			continue
		}
		if criteria.Section != "" && (t.Section == nil || *t.Section != criteria.Section) {
			continue
		}
		if criteria.LeagueLevel != "" && (t.LeagueLevel == nil || *t.LeagueLevel != criteria.LeagueLevel) {
			continue
		}
		views = append(views, toView(t))
	}
	log.Debug("team search", "returned", len(views))
	return views, nil
}

func (s *service) GetByID(id int) (*TeamView, error) {
	t, ok := s.store.TeamByID(id)
	if !ok {
		s.metrics.IncLookupMisses()
		return nil, ErrNotFound
	}
	view := toView(t)
	return &view, nil
}

func toView(t store.Team) TeamView {
	return TeamView{
		ID:            t.ID,
		Name:          t.Name,
		Section:       t.Section,
		LeagueLevel:   t.LeagueLevel,
		AverageRating: t.AverageRating,
		TopPlayers:    toRoster(t.TopPlayers),
		Roster:        toRoster(t.Roster),
	}
}

func toRoster(players []store.PlayerSummary) []RosterEntry {
	entries := make([]RosterEntry, 0, len(players))
	for _, p := range players {
		entries = append(entries, RosterEntry{
			ID:         p.ID,
			FullName:   p.FullName,
			NtrpRating: p.NtrpRating,
		})
	}
	return entries
}
