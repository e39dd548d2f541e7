package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"jobsearchapi/internal/model"
	"jobsearchapi/internal/search"
)

// ErrQueryRequired means the search request carried an empty query.
var ErrQueryRequired = fmt.Errorf("search query cannot be empty")

const defaultNumResults = 10

// QueryOptimizer rewrites a job search request into a provider-friendly
// query string. Optional: without one the composed query is used as-is.
type QueryOptimizer interface {
	OptimizeQuery(ctx context.Context, req model.JobSearchRequest) (string, error)
}

// JobSearchService turns job search requests into provider calls.
type JobSearchService interface {
	Search(ctx context.Context, req model.JobSearchRequest) (*model.JobSearchResponse, error)

	// SearchMany runs several searches concurrently. A failed search maps to
	// an empty result list rather than failing the batch.
	SearchMany(ctx context.Context, reqs []model.JobSearchRequest) (map[string][]model.JobResult, error)
}

type jobSearchService struct {
	provider  search.Provider
	optimizer QueryOptimizer
}

// NewJobSearchService constructs a search service over the given provider.
// optimizer may be nil; a nil provider makes every search fail, which lets
// the server boot without search credentials.
func NewJobSearchService(provider search.Provider, optimizer QueryOptimizer) JobSearchService {
	return &jobSearchService{provider: provider, optimizer: optimizer}
}

func (s *jobSearchService) Search(ctx context.Context, req model.JobSearchRequest) (*model.JobSearchResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, ErrQueryRequired
	}
	if s.provider == nil {
		return nil, fmt.Errorf("no search provider configured")
	}
	num := req.NumResults
	if num <= 0 {
		num = defaultNumResults
	}

	query := composeSearchQuery(req)
	if s.optimizer != nil {
		optimized, err := s.optimizer.OptimizeQuery(ctx, req)
		if err != nil {
			log.Printf("jobsearch: query optimization failed, using composed query: %v", err)
		} else if strings.TrimSpace(optimized) != "" {
			query = optimized
		}
	}

	results, err := s.provider.Search(ctx, query, num)
	if err != nil {
		return nil, fmt.Errorf("search via %s: %w", s.provider.Name(), err)
	}

	jobResults := make([]model.JobResult, 0, len(results))
	for _, r := range results {
		jobResults = append(jobResults, model.JobResult{
			Title:      r.Title,
			Link:       r.Link,
			Snippet:    r.Snippet,
			Company:    r.Source,
			Location:   r.Location,
			PostedDate: r.PostedDate,
		})
	}

	return &model.JobSearchResponse{
		Results:      jobResults,
		TotalResults: len(jobResults),
		SearchQuery:  req.Query,
	}, nil
}

func (s *jobSearchService) SearchMany(ctx context.Context, reqs []model.JobSearchRequest) (map[string][]model.JobResult, error) {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string][]model.JobResult, len(reqs))
	)

	for _, req := range reqs {
		wg.Add(1)
		go func(req model.JobSearchRequest) {
			defer wg.Done()

			resp, err := s.Search(ctx, req)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("jobsearch: query %q failed: %v", req.Query, err)
				results[req.Query] = []model.JobResult{}
				return
			}
			results[req.Query] = resp.Results
		}(req)
	}

	wg.Wait()
	return results, nil
}

// composeSearchQuery builds the provider query from the request parts:
// "{query} jobs [in {location}] [{job_type}] [{experience_level}]".
func composeSearchQuery(req model.JobSearchRequest) string {
	parts := []string{req.Query, "jobs"}
	if req.Location != "" {
		parts = append(parts, "in "+req.Location)
	}
	if req.JobType != "" {
		parts = append(parts, req.JobType)
	}
	if req.ExperienceLevel != "" {
		parts = append(parts, req.ExperienceLevel)
	}
	return strings.Join(parts, " ")
}
