package player

// Sort keys accepted by Search. Anything else falls back to SortByName.
const (
	SortByName    = "name"
	SortByRating  = "rating"
	SortByMatches = "matches"
)

// DefaultPageSize is applied when a caller passes a non-positive page size.
const DefaultPageSize = 20

// SearchCriteria carries the optional player filters plus sort and
// pagination. Zero values mean "no filter". All filters are AND-combined.
type SearchCriteria struct {
	Name       string
	Gender     string
	AgeGroup   string
	NtrpMin    *float64 `validate:"omitempty,gte=1,lte=8"`
	NtrpMax    *float64 `validate:"omitempty,gte=1,lte=8"`
	Section    string
	ActiveYear *int `validate:"omitempty,gte=1990,lte=2100"`
	SortBy     string
	Page       int `validate:"gte=1"`
	PageSize   int `validate:"gte=1,lte=100"`
}

// PlayerView is the external shape of a player in list results.
type PlayerView struct {
	ID          int      `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	FullName    string   `json:"fullName"`
	Gender      string   `json:"gender"`
	UstaSection *string  `json:"ustaSection"`
	NtrpRating  *float64 `json:"ntrpRating"`
	RatingTrend *string  `json:"ratingTrend"`
	MatchCount  *int     `json:"matchCount"`
	ActiveYear  *int     `json:"activeYear"`
	AgeGroup    *string  `json:"ageGroup"`
}

// MatchView is the external shape of one recent match. Date is a
// YYYY-MM-DD calendar string, omitted when the match has no date.
type MatchView struct {
	ID           int     `json:"id"`
	OpponentName string  `json:"opponentName"`
	Result       string  `json:"result"`
	Date         *string `json:"date"`
}

// PlayerDetail is the full single-player view.
type PlayerDetail struct {
	PlayerView
	RecentMatches []MatchView `json:"recentMatches"`
}
