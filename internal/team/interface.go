package team

// TeamService defines the team query pipeline. Backed by the seeded
// in-memory store today; a repository-backed implementation can be
// substituted without touching callers.
type TeamService interface {
	// Search returns every matching team in store order. There is no
	// pagination and no sort; derived fields (topPlayers, averageRating)
	// are carried through from generation, never recomputed.
	Search(criteria SearchCriteria) ([]TeamView, error)
	// GetByID returns one team with its complete roster, or ErrNotFound.
	GetByID(id int) (*TeamView, error)
}
