package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	llmMocks "jobsearchapi/internal/llm/mocks"
	"jobsearchapi/internal/model"
	"jobsearchapi/internal/scrape"
)

type mockPostingScraper struct {
	mock.Mock
}

func (m *mockPostingScraper) Scrape(ctx context.Context, jobURL string) (*scrape.JobPosting, error) {
	args := m.Called(ctx, jobURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scrape.JobPosting), args.Error(1)
}

type mockFormScraper struct {
	mock.Mock
}

func (m *mockFormScraper) Scrape(ctx context.Context, pageURL string) (map[string]model.FormField, error) {
	args := m.Called(ctx, pageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.FormField), args.Error(1)
}

func TestJobAnalysisService_Analyze(t *testing.T) {
	ctx := context.Background()
	jobURL := "https://jobs.example/posting/1"
	posting := &scrape.JobPosting{URL: jobURL, Title: "Go Dev", Content: "Requirements: Go"}

	t.Run("scraped form fields win", func(t *testing.T) {
		mPostings := new(mockPostingScraper)
		mPostings.On("Scrape", ctx, jobURL).Return(posting, nil)

		mForms := new(mockFormScraper)
		mForms.On("Scrape", ctx, jobURL).Return(map[string]model.FormField{
			"full_name": {Type: "text", Required: true},
		}, nil)

		svc := NewJobAnalysisService(mPostings, mForms, nil)

		resp, err := svc.Analyze(ctx, jobURL)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, jobURL, resp.Analysis.URL)
		assert.Contains(t, resp.Analysis.FormFields, "full_name")
		mForms.AssertExpectations(t)
	})

	t.Run("llm fallback when form scraping fails", func(t *testing.T) {
		mPostings := new(mockPostingScraper)
		mPostings.On("Scrape", ctx, jobURL).Return(posting, nil)

		mForms := new(mockFormScraper)
		mForms.On("Scrape", ctx, jobURL).Return(nil, errors.New("no forms"))

		mPrompter := new(llmMocks.MockPrompter)
		mPrompter.On("IdentifyFormFields", ctx, posting.Content).Return(map[string]any{
			"years_of_experience": map[string]any{"required": true, "field_type": "number"},
		}, nil)

		svc := NewJobAnalysisService(mPostings, mForms, mPrompter)

		resp, err := svc.Analyze(ctx, jobURL)
		require.NoError(t, err)
		assert.Contains(t, resp.Analysis.FormFields, "years_of_experience")
		mPrompter.AssertExpectations(t)
	})

	t.Run("llm fallback when page has no form", func(t *testing.T) {
		mPostings := new(mockPostingScraper)
		mPostings.On("Scrape", ctx, jobURL).Return(posting, nil)

		mForms := new(mockFormScraper)
		mForms.On("Scrape", ctx, jobURL).Return(map[string]model.FormField{}, nil)

		mPrompter := new(llmMocks.MockPrompter)
		mPrompter.On("IdentifyFormFields", ctx, posting.Content).Return(map[string]any{}, nil)

		svc := NewJobAnalysisService(mPostings, mForms, mPrompter)

		resp, err := svc.Analyze(ctx, jobURL)
		require.NoError(t, err)
		assert.Empty(t, resp.Analysis.FormFields)
	})

	t.Run("posting scrape failure", func(t *testing.T) {
		mPostings := new(mockPostingScraper)
		mPostings.On("Scrape", ctx, jobURL).Return(nil, scrape.ErrNotJobPosting)

		svc := NewJobAnalysisService(mPostings, new(mockFormScraper), nil)

		_, err := svc.Analyze(ctx, jobURL)
		assert.ErrorIs(t, err, scrape.ErrNotJobPosting)
	})

	t.Run("no extractor and no form yields empty fields", func(t *testing.T) {
		mPostings := new(mockPostingScraper)
		mPostings.On("Scrape", ctx, jobURL).Return(posting, nil)

		mForms := new(mockFormScraper)
		mForms.On("Scrape", ctx, jobURL).Return(map[string]model.FormField{}, nil)

		svc := NewJobAnalysisService(mPostings, mForms, nil)

		resp, err := svc.Analyze(ctx, jobURL)
		require.NoError(t, err)
		assert.NotNil(t, resp.Analysis.FormFields)
		assert.Empty(t, resp.Analysis.FormFields)
	})

	t.Run("llm failure propagates", func(t *testing.T) {
		mPostings := new(mockPostingScraper)
		mPostings.On("Scrape", ctx, jobURL).Return(posting, nil)

		mForms := new(mockFormScraper)
		mForms.On("Scrape", ctx, jobURL).Return(map[string]model.FormField{}, nil)

		mPrompter := new(llmMocks.MockPrompter)
		mPrompter.On("IdentifyFormFields", ctx, posting.Content).Return(nil, errors.New("llm down"))

		svc := NewJobAnalysisService(mPostings, mForms, mPrompter)

		_, err := svc.Analyze(ctx, jobURL)
		assert.ErrorContains(t, err, "llm down")
	})
}
