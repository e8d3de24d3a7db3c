package team

// SearchCriteria carries the optional team filters. Zero values mean
// "no filter".
type SearchCriteria struct {
	Name        string
	Section     string
	LeagueLevel string
}

// RosterEntry is the reduced player projection used inside team views.
// Nested payloads never carry the full player entity.
type RosterEntry struct {
	ID         int      `json:"id"`
	FullName   string   `json:"fullName"`
	NtrpRating *float64 `json:"ntrpRating"`
}

// TeamView is the external shape of a team.
type TeamView struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Section       *string       `json:"section"`
	LeagueLevel   *string       `json:"leagueLevel"`
	AverageRating *float64      `json:"averageRating"`
	TopPlayers    []RosterEntry `json:"topPlayers"`
	Roster        []RosterEntry `json:"roster"`
}
