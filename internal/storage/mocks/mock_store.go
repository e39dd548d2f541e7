package mocks

import (
	"context"
	"io"

	"jobsearchapi/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) WriteStream(ctx context.Context, name string, r io.Reader) (int64, error) {
	args := m.Called(ctx, name, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) Stat(ctx context.Context, name string) (storage.FileInfo, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(storage.FileInfo), args.Error(1)
}

func (m *MockStore) List(ctx context.Context) ([]storage.FileInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.FileInfo), args.Error(1)
}

func (m *MockStore) Remove(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) Path(name string) string {
	args := m.Called(name)
	return args.String(0)
}
