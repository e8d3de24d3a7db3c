package ranking

// DefaultCategory is applied when a caller passes no category.
const DefaultCategory = "Adult"

// QueryCriteria carries the ranking filters. Category comparison is
// case-insensitive; the rest are exact controlled-vocabulary matches.
type QueryCriteria struct {
	Category string
	Section  string
	AgeGroup string
	Gender   string
}

// RankingEntry is the external shape of one ranking row.
type RankingEntry struct {
	Rank       int      `json:"rank"`
	PlayerID   int      `json:"playerId"`
	PlayerName string   `json:"playerName"`
	Rating     *float64 `json:"rating"`
	Trend      *string  `json:"trend"`
	Category   string   `json:"category"`
	Section    *string  `json:"section"`
	AgeGroup   *string  `json:"ageGroup"`
	Gender     *string  `json:"gender"`
}
