package model

// FormField describes one input discovered on an application form.
type FormField struct {
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// JobAnalysis is the result of analyzing a job posting: the resolved URL and
// the application form fields discovered by scraping or proposed by the LLM.
type JobAnalysis struct {
	URL        string         `json:"url"`
	FormFields map[string]any `json:"form_fields"`
}

// ApplicationRequest is the payload for submitting an application against an
// analyzed posting. Resume and cover letter IDs are stored document names.
type ApplicationRequest struct {
	JobURL        string         `json:"job_url"`
	FormData      map[string]any `json:"form_data"`
	ResumeID      string         `json:"resume_id,omitempty"`
	CoverLetterID string         `json:"cover_letter_id,omitempty"`
}

// ApplicationResponse is returned by the analyze endpoint.
type ApplicationResponse struct {
	Analysis JobAnalysis `json:"analysis"`
	Success  bool        `json:"success"`
	Message  string      `json:"message"`
}
