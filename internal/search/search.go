package search

// Package search contains the external search provider abstraction and the
// HTTP clients for the supported providers.

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"jobsearchapi/internal/config"
)

// Result is one ranked listing as returned by a provider.
type Result struct {
	Title      string
	Link       string
	Snippet    string
	Source     string
	Location   string
	PostedDate string
}

// Provider is a ranked-listing search backend.
type Provider interface {
	Search(ctx context.Context, query string, numResults int) ([]Result, error)
	Name() string
}

// NewProvider selects a provider from configuration.
func NewProvider(cfg config.SearchConfig) (Provider, error) {
	switch cfg.Provider {
	case "serpapi":
		if cfg.SerpAPIKey == "" {
			return nil, fmt.Errorf("SERPAPI_API_KEY is required for the serpapi provider")
		}
		return NewSerpAPI(cfg.SerpAPIKey), nil
	case "google":
		if cfg.GoogleAPIKey == "" || cfg.GoogleCSEID == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY and GOOGLE_CSE_ID are required for the google provider")
		}
		return NewGoogleCSE(cfg.GoogleAPIKey, cfg.GoogleCSEID), nil
	default:
		return nil, fmt.Errorf("unknown search provider %q", cfg.Provider)
	}
}

// newHTTPClient builds the shared outbound client: bounded timeout,
// otel-instrumented transport.
func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout:   15 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}
