package player

import (
	"strings"

	"github.com/courtside/tennis-record/internal/store"
)

// toView projects a domain player onto its external shape. FullName is the
// only field derived at projection time.
func toView(p store.Player) PlayerView {
	return PlayerView{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		FullName:    strings.TrimSpace(p.FirstName + " " + p.LastName),
		Gender:      p.Gender,
		UstaSection: p.UstaSection,
		NtrpRating:  p.NtrpRating,
		RatingTrend: p.RatingTrend,
		MatchCount:  p.MatchCount,
		ActiveYear:  p.ActiveYear,
		AgeGroup:    p.AgeGroup,
	}
}

func toDetail(p store.Player, history []store.MatchSummary) *PlayerDetail {
	matches := make([]MatchView, 0, len(history))
	for _, m := range history {
		view := MatchView{
			ID:           m.ID,
			OpponentName: m.OpponentName,
			Result:       m.Result,
		}
		if m.Date != nil {
			date := m.Date.Format("2006-01-02")
			view.Date = &date
		}
		matches = append(matches, view)
	}
	return &PlayerDetail{
		PlayerView:    toView(p),
		RecentMatches: matches,
	}
}
