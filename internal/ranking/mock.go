package ranking

import "sync"

// MockService is a mock implementation of the RankingService interface for
// testing. It is safe for concurrent use.
type MockService struct {
	mu sync.Mutex

	QueryFunc func(criteria QueryCriteria) ([]RankingEntry, error)

	QueryCalls []QueryCriteria
}

// NewMock creates a new mock instance.
func NewMock() *MockService {
	return &MockService{}
}

func (m *MockService) Query(criteria QueryCriteria) ([]RankingEntry, error) {
	m.mu.Lock()
	m.QueryCalls = append(m.QueryCalls, criteria)
	m.mu.Unlock()
	if m.QueryFunc != nil {
		return m.QueryFunc(criteria)
	}
	return nil, nil
}
