package store

import "time"

// Player is the domain record for a USTA player. Optional attributes are
// pointers; a nil rating means the player is unrated and is excluded from
// any rating-bounded search.
type Player struct {
	ID          int
	FirstName   string
	LastName    string
	Gender      string // "M" or "F"
	UstaSection *string
	NtrpRating  *float64
	RatingTrend *string // "up", "down", "stable"
	MatchCount  *int
	ActiveYear  *int
	AgeGroup    *string // "18+", "40+", "55+", etc.
}

// MatchSummary is a brief record of one recent match, owned by a single
// player. Collections are kept sorted by date descending.
type MatchSummary struct {
	ID           int
	PlayerID     int
	OpponentName string
	Result       string // e.g. "W 6-4, 6-3"
	Date         *time.Time
}

// Team is the domain record for a USTA league team. AverageRating and
// TopPlayers are derived from the roster when the team is generated and
// never recomputed afterwards.
type Team struct {
	ID            int
	Name          string
	Section       *string
	LeagueLevel   *string
	AverageRating *float64
	TopPlayers    []PlayerSummary
	Roster        []PlayerSummary
}

// PlayerSummary is a lightweight player reference used inside team rosters.
type PlayerSummary struct {
	ID         int
	FullName   string
	NtrpRating *float64
}

// Ranking is one row of a ranking table. Rank is unique within its
// (category, section, gender) partition, not globally.
type Ranking struct {
	Rank       int
	PlayerID   int
	PlayerName string
	Rating     *float64
	Trend      *string
	Category   string // "Adult" or "Junior"
	Section    *string
	AgeGroup   *string
	Gender     *string
}
