package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNotJobPosting means the URL does not look like a job posting at all.
var ErrNotJobPosting = errors.New("url does not appear to be a job posting")

// JobPosting is the extracted content of one job posting page.
type JobPosting struct {
	URL     string `json:"url"`
	Title   string `json:"title,omitempty"`
	Company string `json:"company,omitempty"`
	Content string `json:"content"`
}

// boardSelectors holds the per-site URL pattern and CSS selectors for a
// known job board.
type boardSelectors struct {
	jobPattern string
	content    string
	title      string
	company    string
}

var jobBoards = map[string]boardSelectors{
	"linkedin.com": {
		jobPattern: "/jobs/view/",
		content:    ".job-description",
		title:      ".job-details-jobs-unified-top-card__job-title",
		company:    ".job-details-jobs-unified-top-card__company-name",
	},
	"indeed.com": {
		jobPattern: "/job/",
		content:    ".jobsearch-jobDescriptionText",
		title:      ".jobsearch-JobInfoHeader-title",
		company:    ".jobsearch-CompanyInfoContainer",
	},
	"glassdoor.com": {
		jobPattern: "/Job/",
		content:    ".jobDescriptionContent",
		title:      ".job-title",
		company:    ".employer-name",
	},
}

// Generic indicators used when the page is not on a known board.
var jobIndicators = []string{
	"job", "career", "position", "vacancy", "opening",
	"apply", "application", "requirements", "qualifications",
}

// JobScraper extracts job posting details, using per-board selectors when
// the domain is recognized and generic heuristics otherwise.
type JobScraper struct {
	client *Client
}

// NewJobScraper builds a job posting scraper over the shared fetcher.
func NewJobScraper(client *Client) *JobScraper {
	return &JobScraper{client: client}
}

// Scrape fetches a URL, checks that it plausibly is a job posting, and
// extracts title/company/content. The content falls back to the full page
// text when no selector matches.
func (s *JobScraper) Scrape(ctx context.Context, jobURL string) (*JobPosting, error) {
	doc, finalURL, err := s.client.fetch(ctx, jobURL)
	if err != nil {
		return nil, err
	}

	if !looksLikeJobPosting(finalURL, doc) {
		return nil, ErrNotJobPosting
	}

	posting := &JobPosting{URL: finalURL}
	if sel, ok := selectorsFor(finalURL); ok {
		posting.Title = strings.TrimSpace(doc.Find(sel.title).First().Text())
		posting.Company = strings.TrimSpace(doc.Find(sel.company).First().Text())
		posting.Content = strings.TrimSpace(doc.Find(sel.content).First().Text())
	} else {
		posting.Title, posting.Company = genericDetails(doc)
	}

	if posting.Content == "" {
		posting.Content = documentText(doc)
	}
	if posting.Content == "" {
		return nil, fmt.Errorf("no content extracted from %s", finalURL)
	}
	return posting, nil
}

func selectorsFor(pageURL string) (boardSelectors, bool) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return boardSelectors{}, false
	}
	host := strings.ToLower(u.Hostname())
	for board, sel := range jobBoards {
		if host == board || strings.HasSuffix(host, "."+board) {
			return sel, true
		}
	}
	return boardSelectors{}, false
}

// looksLikeJobPosting accepts known-board URLs matching the board's posting
// pattern, and otherwise falls back to a keyword scan of the page text.
func looksLikeJobPosting(pageURL string, doc *goquery.Document) bool {
	if sel, ok := selectorsFor(pageURL); ok {
		return strings.Contains(pageURL, sel.jobPattern)
	}

	text := strings.ToLower(doc.Text())
	for _, indicator := range jobIndicators {
		if strings.Contains(text, indicator) {
			return true
		}
	}
	return false
}

// genericDetails pulls a plausible title and company from an unrecognized
// page: the first heading mentioning a job keyword, and the first element
// whose class hints at a company name.
func genericDetails(doc *goquery.Document) (title, company string) {
	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		text := h.Text()
		lower := strings.ToLower(text)
		for _, kw := range []string{"job", "position", "career", "engineer", "developer", "manager"} {
			if strings.Contains(lower, kw) {
				title = strings.TrimSpace(text)
				return false
			}
		}
		return true
	})

	doc.Find("div, span").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		class, _ := el.Attr("class")
		lower := strings.ToLower(class)
		for _, kw := range []string{"company", "employer", "organization"} {
			if strings.Contains(lower, kw) {
				company = strings.TrimSpace(el.Text())
				return false
			}
		}
		return true
	})

	return title, company
}
