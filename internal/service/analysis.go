package service

import (
	"context"
	"fmt"
	"log"

	"jobsearchapi/internal/model"
	"jobsearchapi/internal/scrape"
)

// PostingScraper fetches and extracts a job posting page.
type PostingScraper interface {
	Scrape(ctx context.Context, jobURL string) (*scrape.JobPosting, error)
}

// FormFieldScraper enumerates application form fields on a page.
type FormFieldScraper interface {
	Scrape(ctx context.Context, pageURL string) (map[string]model.FormField, error)
}

// FieldExtractor proposes form fields from posting text when no real form
// can be scraped. Satisfied by llm.Prompter.
type FieldExtractor interface {
	IdentifyFormFields(ctx context.Context, content string) (map[string]any, error)
}

// JobAnalysisService analyzes a job posting URL: scrape the posting, scrape
// its application form when one exists, and otherwise have the LLM propose
// the fields from the posting text.
type JobAnalysisService interface {
	Analyze(ctx context.Context, jobURL string) (*model.ApplicationResponse, error)
}

type jobAnalysisService struct {
	postings  PostingScraper
	forms     FormFieldScraper
	extractor FieldExtractor
}

// NewJobAnalysisService constructs the analysis façade. extractor may be nil,
// in which case form scraping is the only source of fields.
func NewJobAnalysisService(postings PostingScraper, forms FormFieldScraper, extractor FieldExtractor) JobAnalysisService {
	return &jobAnalysisService{postings: postings, forms: forms, extractor: extractor}
}

func (s *jobAnalysisService) Analyze(ctx context.Context, jobURL string) (*model.ApplicationResponse, error) {
	posting, err := s.postings.Scrape(ctx, jobURL)
	if err != nil {
		return nil, fmt.Errorf("scrape job posting: %w", err)
	}

	formFields, err := s.formFields(ctx, posting)
	if err != nil {
		return nil, err
	}

	return &model.ApplicationResponse{
		Analysis: model.JobAnalysis{
			URL:        posting.URL,
			FormFields: formFields,
		},
		Success: true,
		Message: "job posting analyzed successfully",
	}, nil
}

// formFields prefers the real application form; the LLM proposal is the
// fallback when scraping finds nothing.
func (s *jobAnalysisService) formFields(ctx context.Context, posting *scrape.JobPosting) (map[string]any, error) {
	scraped, err := s.forms.Scrape(ctx, posting.URL)
	if err != nil {
		log.Printf("analysis: form scraping failed for %s: %v", posting.URL, err)
	}
	if len(scraped) > 0 {
		fields := make(map[string]any, len(scraped))
		for name, field := range scraped {
			fields[name] = field
		}
		return fields, nil
	}

	if s.extractor == nil {
		return map[string]any{}, nil
	}
	fields, err := s.extractor.IdentifyFormFields(ctx, posting.Content)
	if err != nil {
		return nil, fmt.Errorf("identify form fields: %w", err)
	}
	return fields, nil
}
