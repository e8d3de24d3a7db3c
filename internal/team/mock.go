package team

import "sync"

// MockService is a mock implementation of the TeamService interface for
// testing. It is safe for concurrent use.
type MockService struct {
	mu sync.Mutex

	SearchFunc  func(criteria SearchCriteria) ([]TeamView, error)
	GetByIDFunc func(id int) (*TeamView, error)

	SearchCalls  []SearchCriteria
	GetByIDCalls []int
}

// NewMock creates a new mock instance.
func NewMock() *MockService {
	return &MockService{}
}

func (m *MockService) Search(criteria SearchCriteria) ([]TeamView, error) {
	m.mu.Lock()
	m.SearchCalls = append(m.SearchCalls, criteria)
	m.mu.Unlock()
	if m.SearchFunc != nil {
		return m.SearchFunc(criteria)
	}
	return nil, nil
}

func (m *MockService) GetByID(id int) (*TeamView, error) {
	m.mu.Lock()
	m.GetByIDCalls = append(m.GetByIDCalls, id)
	m.mu.Unlock()
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, ErrNotFound
}
