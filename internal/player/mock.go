package player

import "sync"

// MockService is a mock implementation of the PlayerService interface for
// testing. It is safe for concurrent use.
type MockService struct {
	mu sync.Mutex

	SearchFunc       func(criteria SearchCriteria) ([]PlayerView, int, error)
	GetByIDFunc      func(id int) (*PlayerDetail, error)
	RatingLookupFunc func(query string) (*PlayerDetail, error)

	SearchCalls       []SearchCriteria
	GetByIDCalls      []int
	RatingLookupCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockService {
	return &MockService{}
}

func (m *MockService) Search(criteria SearchCriteria) ([]PlayerView, int, error) {
	m.mu.Lock()
	m.SearchCalls = append(m.SearchCalls, criteria)
	m.mu.Unlock()
	if m.SearchFunc != nil {
		return m.SearchFunc(criteria)
	}
	return nil, 0, nil
}

func (m *MockService) GetByID(id int) (*PlayerDetail, error) {
	m.mu.Lock()
	m.GetByIDCalls = append(m.GetByIDCalls, id)
	m.mu.Unlock()
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, ErrNotFound
}

func (m *MockService) RatingLookup(query string) (*PlayerDetail, error) {
	m.mu.Lock()
	m.RatingLookupCalls = append(m.RatingLookupCalls, query)
	m.mu.Unlock()
	if m.RatingLookupFunc != nil {
		return m.RatingLookupFunc(query)
	}
	return nil, ErrNotFound
}
