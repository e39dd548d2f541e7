package model

// JobSearchRequest carries the search parameters for a job query.
type JobSearchRequest struct {
	Query           string `json:"query"`
	Location        string `json:"location,omitempty"`
	NumResults      int    `json:"num_results,omitempty"`
	JobType         string `json:"job_type,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
}

// JobResult is a single ranked listing returned by a search provider.
type JobResult struct {
	Title      string `json:"title"`
	Link       string `json:"link"`
	Snippet    string `json:"snippet"`
	Company    string `json:"company,omitempty"`
	Location   string `json:"location,omitempty"`
	PostedDate string `json:"posted_date,omitempty"`
}

// JobSearchResponse is the payload returned by the search endpoint.
type JobSearchResponse struct {
	Results      []JobResult `json:"results"`
	TotalResults int         `json:"total_results"`
	SearchQuery  string      `json:"search_query"`
}
