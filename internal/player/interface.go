package player

// PlayerService defines the player query pipeline. The current
// implementation is backed by the seeded in-memory store; a
// repository-backed implementation can be substituted without touching
// callers.
type PlayerService interface {
	// Search filters, sorts and paginates players. The returned total is
	// the size of the filtered set before pagination.
	Search(criteria SearchCriteria) ([]PlayerView, int, error)
	// GetByID returns the detail view for one player, including up to five
	// most-recent matches. Returns ErrNotFound for unknown ids.
	GetByID(id int) (*PlayerDetail, error)
	// RatingLookup returns the detail view for the first player whose name
	// matches the query, in store order. Returns ErrNotFound for blank
	// queries or when nothing matches.
	RatingLookup(query string) (*PlayerDetail, error)
}
