package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const googleCSEBaseURL = "https://www.googleapis.com/customsearch/v1"

// GoogleCSE queries the Google Custom Search JSON API.
type GoogleCSE struct {
	apiKey  string
	cseID   string
	baseURL string
	client  *http.Client
}

// NewGoogleCSE builds a Google Custom Search provider.
func NewGoogleCSE(apiKey, cseID string) *GoogleCSE {
	return &GoogleCSE{
		apiKey:  apiKey,
		cseID:   cseID,
		baseURL: googleCSEBaseURL,
		client:  newHTTPClient(),
	}
}

func (p *GoogleCSE) Name() string { return "google" }

type googleCSEResponse struct {
	Items []struct {
		Title       string `json:"title"`
		Link        string `json:"link"`
		Snippet     string `json:"snippet"`
		DisplayLink string `json:"displayLink"`
	} `json:"items"`
}

func (p *GoogleCSE) Search(ctx context.Context, query string, numResults int) ([]Result, error) {
	// The CSE API caps num at 10 per request.
	if numResults > 10 {
		numResults = 10
	}

	q := url.Values{}
	q.Set("key", p.apiKey)
	q.Set("cx", p.cseID)
	q.Set("q", query)
	q.Set("num", strconv.Itoa(numResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build google search request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google search returned status %d", resp.StatusCode)
	}

	var body googleCSEResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode google search response: %w", err)
	}

	results := make([]Result, 0, len(body.Items))
	for _, item := range body.Items {
		results = append(results, Result{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
			Source:  item.DisplayLink,
		})
	}
	return results, nil
}
