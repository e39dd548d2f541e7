package mocks

import (
	"context"
	"io"

	"jobsearchapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Save(ctx context.Context, r io.Reader, docType model.DocumentType, originalFilename, contentType string) (*model.Document, error) {
	args := m.Called(ctx, r, docType, originalFilename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, docType *model.DocumentType) (*model.DocumentListResponse, error) {
	args := m.Called(ctx, docType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentListResponse), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, filename string) (*model.Document, error) {
	args := m.Called(ctx, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, filename string) (bool, error) {
	args := m.Called(ctx, filename)
	return args.Bool(0), args.Error(1)
}

type MockJobSearchService struct {
	mock.Mock
}

func (m *MockJobSearchService) Search(ctx context.Context, req model.JobSearchRequest) (*model.JobSearchResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobSearchResponse), args.Error(1)
}

func (m *MockJobSearchService) SearchMany(ctx context.Context, reqs []model.JobSearchRequest) (map[string][]model.JobResult, error) {
	args := m.Called(ctx, reqs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]model.JobResult), args.Error(1)
}

type MockJobAnalysisService struct {
	mock.Mock
}

func (m *MockJobAnalysisService) Analyze(ctx context.Context, jobURL string) (*model.ApplicationResponse, error) {
	args := m.Called(ctx, jobURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ApplicationResponse), args.Error(1)
}
