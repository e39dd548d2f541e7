package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const serpAPIBaseURL = "https://serpapi.com/search.json"

// SerpAPI queries the SerpAPI Google engine and maps its organic results.
type SerpAPI struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewSerpAPI builds a SerpAPI provider.
func NewSerpAPI(apiKey string) *SerpAPI {
	return &SerpAPI{
		apiKey:  apiKey,
		baseURL: serpAPIBaseURL,
		client:  newHTTPClient(),
	}
}

func (p *SerpAPI) Name() string { return "serpapi" }

type serpAPIResponse struct {
	OrganicResults []struct {
		Title    string `json:"title"`
		Link     string `json:"link"`
		Snippet  string `json:"snippet"`
		Source   string `json:"source"`
		Date     string `json:"date"`
		Location string `json:"location"`
	} `json:"organic_results"`
	Error string `json:"error"`
}

func (p *SerpAPI) Search(ctx context.Context, query string, numResults int) ([]Result, error) {
	q := url.Values{}
	q.Set("engine", "google")
	q.Set("q", query)
	q.Set("num", strconv.Itoa(numResults))
	q.Set("api_key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build serpapi request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi returned status %d", resp.StatusCode)
	}

	var body serpAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode serpapi response: %w", err)
	}
	if body.Error != "" {
		return nil, fmt.Errorf("serpapi error: %s", body.Error)
	}

	results := make([]Result, 0, len(body.OrganicResults))
	for _, r := range body.OrganicResults {
		results = append(results, Result{
			Title:      r.Title,
			Link:       r.Link,
			Snippet:    r.Snippet,
			Source:     r.Source,
			Location:   r.Location,
			PostedDate: r.Date,
		})
	}
	return results, nil
}
