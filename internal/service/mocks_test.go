package service

import (
	"github.com/phrazzld/masthead/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockCatalog mocks the domain.Catalog interface
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) RegisterWriter(w *domain.Writer) error {
	args := m.Called(w)
	return args.Error(0)
}

func (m *MockCatalog) RegisterPublication(p *domain.Publication) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockCatalog) RegisterContribution(c *domain.Contribution) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockCatalog) Writers() []*domain.Writer {
	args := m.Called()
	writers, _ := args.Get(0).([]*domain.Writer)
	return writers
}

func (m *MockCatalog) Publications() []*domain.Publication {
	args := m.Called()
	pubs, _ := args.Get(0).([]*domain.Publication)
	return pubs
}

func (m *MockCatalog) Contributions() []*domain.Contribution {
	args := m.Called()
	contributions, _ := args.Get(0).([]*domain.Contribution)
	return contributions
}
