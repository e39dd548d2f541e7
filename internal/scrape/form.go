package scrape

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobsearchapi/internal/model"
)

// FormScraper enumerates the application form fields present on a page.
type FormScraper struct {
	client *Client
}

// NewFormScraper builds a form scraper over the shared fetcher.
func NewFormScraper(client *Client) *FormScraper {
	return &FormScraper{client: client}
}

// Scrape collects every named input, select, and textarea inside form
// elements. Fields without a name or id are skipped.
func (s *FormScraper) Scrape(ctx context.Context, pageURL string) (map[string]model.FormField, error) {
	doc, _, err := s.client.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]model.FormField)
	doc.Find("form").Each(func(_ int, form *goquery.Selection) {
		form.Find("input, select, textarea").Each(func(_ int, el *goquery.Selection) {
			name := el.AttrOr("name", el.AttrOr("id", ""))
			if name == "" {
				return
			}

			_, required := el.Attr("required")
			field := model.FormField{
				Type:        el.AttrOr("type", "text"),
				Required:    required,
				Placeholder: el.AttrOr("placeholder", ""),
			}
			if goquery.NodeName(el) == "select" {
				el.Find("option").Each(func(_ int, opt *goquery.Selection) {
					if v, ok := opt.Attr("value"); ok && strings.TrimSpace(v) != "" {
						field.Options = append(field.Options, v)
					}
				})
			}
			fields[name] = field
		})
	})
	return fields, nil
}
