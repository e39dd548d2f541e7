package mocks

import (
	"context"

	"jobsearchapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) OptimizeQuery(ctx context.Context, req model.JobSearchRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockPrompter) IdentifyFormFields(ctx context.Context, content string) (map[string]any, error) {
	args := m.Called(ctx, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}
