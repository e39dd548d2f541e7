package scrape

// Package scrape fetches job posting pages and extracts text, job details,
// and application form fields.

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client is the shared page fetcher. Redirects are followed; the final URL
// after redirects is what gets analyzed.
type Client struct {
	http *http.Client
}

// NewClient builds a fetcher with a bounded timeout and traced transport.
func NewClient() *Client {
	return &Client{
		http: &http.Client{
			Timeout:   20 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// fetch downloads a page and parses it. Returns the document and the final
// URL after redirects.
func (c *Client) fetch(ctx context.Context, pageURL string) (*goquery.Document, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build page request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("fetch page: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("parse page: %w", err)
	}
	return doc, resp.Request.URL.String(), nil
}

// PageText returns the visible text of a page, one trimmed line per block.
func (c *Client) PageText(ctx context.Context, pageURL string) (string, error) {
	doc, _, err := c.fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}
	return documentText(doc), nil
}

func documentText(doc *goquery.Document) string {
	doc.Find("script, style, noscript").Remove()

	raw := doc.Find("body").Text()
	if strings.TrimSpace(raw) == "" {
		raw = doc.Text()
	}

	lines := make([]string, 0, 64)
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n")
}
