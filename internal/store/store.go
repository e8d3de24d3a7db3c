package store

// Store owns the in-memory dataset. It is populated once at construction
// and read-only afterwards, so any number of requests may query it
// concurrently without locking. If this is ever backed by a real database
// the query services must gain their own transaction boundaries.
type Store struct {
	players         []Player
	matchesByPlayer map[int][]MatchSummary
	teams           []Team
	rankings        []Ranking
}

// New builds a Store from pre-generated collections. The caller hands over
// ownership; the slices must not be mutated afterwards.
func New(players []Player, matches map[int][]MatchSummary, teams []Team, rankings []Ranking) *Store {
	return &Store{
		players:         players,
		matchesByPlayer: matches,
		teams:           teams,
		rankings:        rankings,
	}
}

// Players returns all players in store order.
func (s *Store) Players() []Player {
	return s.players
}

// PlayerByID looks up a single player.
func (s *Store) PlayerByID(id int) (Player, bool) {
	for _, p := range s.players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// MatchesFor returns a player's match history, date descending. Unknown
// players simply have no matches.
func (s *Store) MatchesFor(playerID int) []MatchSummary {
	return s.matchesByPlayer[playerID]
}

// Teams returns all teams in store order.
func (s *Store) Teams() []Team {
	return s.teams
}

// TeamByID looks up a single team.
func (s *Store) TeamByID(id int) (Team, bool) {
	for _, t := range s.teams {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}

// Rankings returns all ranking rows in store order.
func (s *Store) Rankings() []Ranking {
	return s.rankings
}
