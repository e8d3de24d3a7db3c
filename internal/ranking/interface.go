package ranking

// RankingService defines the ranking lookup pipeline.
type RankingService interface {
	// Query returns every matching ranking row sorted ascending by rank.
	// There is no pagination; display truncation is the caller's problem.
	Query(criteria QueryCriteria) ([]RankingEntry, error)
}
