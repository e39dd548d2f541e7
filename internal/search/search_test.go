package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsearchapi/internal/config"
)

func TestNewProvider(t *testing.T) {
	t.Run("serpapi", func(t *testing.T) {
		p, err := NewProvider(config.SearchConfig{Provider: "serpapi", SerpAPIKey: "k"})
		require.NoError(t, err)
		assert.Equal(t, "serpapi", p.Name())
	})

	t.Run("serpapi without key", func(t *testing.T) {
		_, err := NewProvider(config.SearchConfig{Provider: "serpapi"})
		assert.Error(t, err)
	})

	t.Run("google", func(t *testing.T) {
		p, err := NewProvider(config.SearchConfig{Provider: "google", GoogleAPIKey: "k", GoogleCSEID: "cx"})
		require.NoError(t, err)
		assert.Equal(t, "google", p.Name())
	})

	t.Run("google without cse id", func(t *testing.T) {
		_, err := NewProvider(config.SearchConfig{Provider: "google", GoogleAPIKey: "k"})
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewProvider(config.SearchConfig{Provider: "bing"})
		assert.Error(t, err)
	})
}

func TestSerpAPI_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("maps organic results", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "golang developer jobs", r.URL.Query().Get("q"))
			assert.Equal(t, "5", r.URL.Query().Get("num"))
			assert.Equal(t, "secret", r.URL.Query().Get("api_key"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"organic_results": [
					{"title": "Go Developer at Acme", "link": "https://acme.example/jobs/1",
					 "snippet": "Build services in Go", "source": "Acme", "date": "2 days ago",
					 "location": "Berlin"},
					{"title": "Backend Engineer", "link": "https://other.example/jobs/2",
					 "snippet": "Backend role"}
				]
			}`))
		}))
		defer srv.Close()

		p := NewSerpAPI("secret")
		p.baseURL = srv.URL

		results, err := p.Search(ctx, "golang developer jobs", 5)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Go Developer at Acme", results[0].Title)
		assert.Equal(t, "Acme", results[0].Source)
		assert.Equal(t, "Berlin", results[0].Location)
		assert.Equal(t, "2 days ago", results[0].PostedDate)
	})

	t.Run("api error payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error": "Invalid API key"}`))
		}))
		defer srv.Close()

		p := NewSerpAPI("bad")
		p.baseURL = srv.URL

		_, err := p.Search(ctx, "anything", 5)
		assert.ErrorContains(t, err, "Invalid API key")
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		p := NewSerpAPI("k")
		p.baseURL = srv.URL

		_, err := p.Search(ctx, "anything", 5)
		assert.ErrorContains(t, err, "status 429")
	})
}

func TestGoogleCSE_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("maps items and caps num at 10", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "10", r.URL.Query().Get("num"))
			assert.Equal(t, "cx-1", r.URL.Query().Get("cx"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"items": [
					{"title": "SRE at Example", "link": "https://example.com/careers/sre",
					 "snippet": "Run infra", "displayLink": "example.com"}
				]
			}`))
		}))
		defer srv.Close()

		p := NewGoogleCSE("key", "cx-1")
		p.baseURL = srv.URL

		results, err := p.Search(ctx, "sre jobs", 25)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "SRE at Example", results[0].Title)
		assert.Equal(t, "example.com", results[0].Source)
	})

	t.Run("empty items", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		p := NewGoogleCSE("key", "cx-1")
		p.baseURL = srv.URL

		results, err := p.Search(ctx, "niche query", 5)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
