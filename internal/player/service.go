package player

import (
	"errors"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/courtside/tennis-record/internal/metrics"
	"github.com/courtside/tennis-record/internal/store"
)

// ErrNotFound is returned when an id or search term matches no player.
var ErrNotFound = errors.New("player not found")

// recentMatchLimit caps the match history embedded in a detail view.
const recentMatchLimit = 5

// service queries the read-only store. Reads never race with writes, so no
// locking is needed.
type service struct {
	store   *store.Store
	metrics metrics.Metrics
}

// New creates a PlayerService backed by the given store.
func New(st *store.Store, metricsSvc metrics.Metrics) PlayerService {
	return &service{store: st, metrics: metricsSvc}
}

// predicate is a single player filter. Search combines them with AND.
type predicate func(*store.Player) bool

func (s *service) Search(criteria SearchCriteria) ([]PlayerView, int, error) {
	s.metrics.IncPlayerSearches()

	preds := buildPredicates(criteria)
	var filtered []store.Player
	for _, p := range s.store.Players() {
		if matchesAll(&p, preds) {
			filtered = append(filtered, p)
		}
	}

	sortPlayers(filtered, criteria.SortBy)

	total := len(filtered)
	page := pageWindow(total, criteria.Page, criteria.PageSize)

	items := make([]PlayerView, 0, page.end-page.start)
	for _, p := range filtered[page.start:page.end] {
		items = append(items, toView(p))
	}
	log.Debug("player search", "total", total, "returned", len(items), "sortBy", criteria.SortBy)
	return items, total, nil
}

func (s *service) GetByID(id int) (*PlayerDetail, error) {
	p, ok := s.store.PlayerByID(id)
	if !ok {
		s.metrics.IncLookupMisses()
		return nil, ErrNotFound
	}
	return s.detail(p), nil
}

func (s *service) RatingLookup(query string) (*PlayerDetail, error) {
	s.metrics.IncRatingLookups()

	term := strings.TrimSpace(query)
	if term == "" {
		s.metrics.IncLookupMisses()
		return nil, ErrNotFound
	}

	// First substring match in store order wins. This is intentionally not
	// a ranked search.
	for _, p := range s.store.Players() {
		if nameMatches(&p, term) {
			return s.detail(p), nil
		}
	}
	s.metrics.IncLookupMisses()
	return nil, ErrNotFound
}

func (s *service) detail(p store.Player) *PlayerDetail {
	history := s.store.MatchesFor(p.ID)
	if len(history) > recentMatchLimit {
		history = history[:recentMatchLimit]
	}
	return toDetail(p, history)
}

// nameMatches tests a case-insensitive substring against both "first last"
// and "last first", so "Smith James" and "James Smith" are equivalent.
func nameMatches(p *store.Player, term string) bool {
	needle := strings.ToLower(strings.TrimSpace(term))
	firstLast := strings.ToLower(p.FirstName + " " + p.LastName)
	lastFirst := strings.ToLower(p.LastName + " " + p.FirstName)
	return strings.Contains(firstLast, needle) || strings.Contains(lastFirst, needle)
}

func buildPredicates(c SearchCriteria) []predicate {
	var preds []predicate
	if strings.TrimSpace(c.Name) != "" {
		name := c.Name
		preds = append(preds, func(p *store.Player) bool { return nameMatches(p, name) })
	}
	if c.Gender != "" {
		gender := c.Gender
		preds = append(preds, func(p *store.Player) bool { return strings.EqualFold(p.Gender, gender) })
	}
	if c.AgeGroup != "" {
		group := c.AgeGroup
		preds = append(preds, func(p *store.Player) bool { return p.AgeGroup != nil && *p.AgeGroup == group })
	}
	if c.NtrpMin != nil {
		min := *c.NtrpMin
		preds = append(preds, func(p *store.Player) bool { return p.NtrpRating != nil && *p.NtrpRating >= min })
	}
	if c.NtrpMax != nil {
		max := *c.NtrpMax
		preds = append(preds, func(p *store.Player) bool { return p.NtrpRating != nil && *p.NtrpRating <= max })
	}
	if c.Section != "" {
		section := c.Section
		preds = append(preds, func(p *store.Player) bool { return p.UstaSection != nil && *p.UstaSection == section })
	}
	if c.ActiveYear != nil {
		year := *c.ActiveYear
		preds = append(preds, func(p *store.Player) bool { return p.ActiveYear != nil && *p.ActiveYear == year })
	}
	return preds
}

func matchesAll(p *store.Player, preds []predicate) bool {
	for _, pred := range preds {
		if !pred(p) {
			return false
		}
	}
	return true
}

func sortPlayers(players []store.Player, sortBy string) {
	switch strings.ToLower(sortBy) {
	case SortByRating:
		// Descending rating; unrated players sort last.
		sort.SliceStable(players, func(i, j int) bool {
			ri, rj := players[i].NtrpRating, players[j].NtrpRating
			if ri == nil {
				return false
			}
			if rj == nil {
				return true
			}
			return *ri > *rj
		})
	case SortByMatches:
		// Descending match count; a missing count counts as zero.
		sort.SliceStable(players, func(i, j int) bool {
			return matchCountOrZero(players[i]) > matchCountOrZero(players[j])
		})
	default:
		sort.SliceStable(players, func(i, j int) bool {
			if players[i].LastName != players[j].LastName {
				return players[i].LastName < players[j].LastName
			}
			return players[i].FirstName < players[j].FirstName
		})
	}
}

func matchCountOrZero(p store.Player) int {
	if p.MatchCount == nil {
		return 0
	}
	return *p.MatchCount
}

type window struct {
	start, end int
}

// pageWindow computes the half-open slice bounds for a 1-based page. Pages
// past the end yield an empty window, never an error.
func pageWindow(total, page, pageSize int) window {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	start := (page - 1) * pageSize
	if start >= total {
		return window{total, total}
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return window{start, end}
}
