package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	playerSearches   int
	teamSearches     int
	rankingQueries   int
	ratingLookups    int
	lookupMisses     int
	requestDurations map[string][]float64
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		requestDurations: make(map[string][]float64),
	}
}

func (m *Mock) IncPlayerSearches() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playerSearches++
}

func (m *Mock) IncTeamSearches() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teamSearches++
}

func (m *Mock) IncRankingQueries() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rankingQueries++
}

func (m *Mock) IncRatingLookups() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ratingLookups++
}

func (m *Mock) IncLookupMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookupMisses++
}

func (m *Mock) ObserveRequestDuration(route string, seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestDurations[route] = append(m.requestDurations[route], seconds)
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = seconds
}

// PlayerSearches returns the number of times IncPlayerSearches was called.
func (m *Mock) PlayerSearches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playerSearches
}

// TeamSearches returns the number of times IncTeamSearches was called.
func (m *Mock) TeamSearches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.teamSearches
}

// RankingQueries returns the number of times IncRankingQueries was called.
func (m *Mock) RankingQueries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rankingQueries
}

// LookupMisses returns the number of times IncLookupMisses was called.
func (m *Mock) LookupMisses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookupMisses
}
