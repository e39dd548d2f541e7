package mocks

import (
	"context"

	"jobsearchapi/internal/search"

	"github.com/stretchr/testify/mock"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Search(ctx context.Context, query string, numResults int) ([]search.Result, error) {
	args := m.Called(ctx, query, numResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]search.Result), args.Error(1)
}

func (m *MockProvider) Name() string {
	args := m.Called()
	return args.String(0)
}
