package ranking

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/courtside/tennis-record/internal/metrics"
	"github.com/courtside/tennis-record/internal/store"
)

type service struct {
	store   *store.Store
	metrics metrics.Metrics
}

// New creates a RankingService backed by the given store.
func New(st *store.Store, metricsSvc metrics.Metrics) RankingService {
	return &service{store: st, metrics: metricsSvc}
}

func (s *service) Query(criteria QueryCriteria) ([]RankingEntry, error) {
	s.metrics.IncRankingQueries()

	category := criteria.Category
	if strings.TrimSpace(category) == "" {
		category = DefaultCategory
	}

	entries := make([]RankingEntry, 0)
	for _, r := range s.store.Rankings() {
		if !strings.EqualFold(r.Category, category) {
			continue
		}
		if criteria.Section != "" && (r.Section == nil || *r.Section != criteria.Section) {
			continue
		}
		if criteria.AgeGroup != "" && (r.AgeGroup == nil || *r.AgeGroup != criteria.AgeGroup) {
			continue
		}
		if criteria.Gender != "" && (r.Gender == nil || *r.Gender != criteria.Gender) {
			continue
		}
		entries = append(entries, toEntry(r))
	}

	// Stable so rows with equal ranks across partitions keep store order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rank < entries[j].Rank
	})
	log.Debug("ranking query", "category", category, "returned", len(entries))
	return entries, nil
}

func toEntry(r store.Ranking) RankingEntry {
	return RankingEntry{
		Rank:       r.Rank,
		PlayerID:   r.PlayerID,
		PlayerName: r.PlayerName,
		Rating:     r.Rating,
		Trend:      r.Trend,
		Category:   r.Category,
		Section:    r.Section,
		AgeGroup:   r.AgeGroup,
		Gender:     r.Gender,
	}
}
