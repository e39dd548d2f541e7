package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"jobsearchapi/internal/config"
	"jobsearchapi/internal/model"
)

// Prompter is the LLM-backed helper layer: it rewrites job search requests
// into effective provider queries and proposes application form fields from
// job posting text.
type Prompter interface {
	OptimizeQuery(ctx context.Context, req model.JobSearchRequest) (string, error)
	IdentifyFormFields(ctx context.Context, content string) (map[string]any, error)
}

const optimizeQueryPrompt = `You are a job search expert. Your task is to optimize the given job search parameters
into an effective search query. Focus on:
1. Including relevant job titles and skills
2. Adding location if specified
3. Including job type if specified
4. Including experience level if specified

Format the query to work well with search engines. Use quotes for exact phrases and the site: operator
for specific job sites when appropriate. Return only the query, nothing else.

Query: %s
Location: %s
Job Type: %s
Experience: %s`

const identifyFormFieldsPrompt = `You are an expert at analyzing job postings and identifying required application form fields.
Analyze the job posting and identify ONLY the form fields that an applicant needs to fill out.
Return a JSON object where each key is a form field name and the value is an object with:
- required: boolean indicating if the field is mandatory
- field_type: type of input needed (text, number, date, select, etc.)
- description: brief description of what should go in this field
Do not include any predefined fields or assumptions. Only include fields explicitly mentioned in the job posting.
Return valid JSON only, without markdown code fences.

Content: %s

Identify the required application form fields.`

// Postings can be long; keep the prompt within a sane budget.
const maxPromptContent = 20000

type prompter struct {
	client llms.Model
}

// NewPrompter initializes the OpenAI-backed prompting client.
func NewPrompter(cfg config.LLMConfig) (Prompter, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required for the prompting layer")
	}
	client, err := openai.New(
		openai.WithToken(cfg.OpenAIAPIKey),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}
	return &prompter{client: client}, nil
}

func (p *prompter) OptimizeQuery(ctx context.Context, req model.JobSearchRequest) (string, error) {
	prompt := fmt.Sprintf(optimizeQueryPrompt, req.Query, req.Location, req.JobType, req.ExperienceLevel)

	resp, err := llms.GenerateFromSinglePrompt(ctx, p.client, prompt, llms.WithTemperature(0))
	if err != nil {
		return "", fmt.Errorf("optimize query: %w", err)
	}
	return strings.TrimSpace(resp), nil
}

func (p *prompter) IdentifyFormFields(ctx context.Context, content string) (map[string]any, error) {
	if len(content) > maxPromptContent {
		content = content[:maxPromptContent]
	}
	prompt := fmt.Sprintf(identifyFormFieldsPrompt, content)

	resp, err := llms.GenerateFromSinglePrompt(ctx, p.client, prompt, llms.WithTemperature(0))
	if err != nil {
		return nil, fmt.Errorf("identify form fields: %w", err)
	}

	fields, err := parseFieldsJSON(resp)
	if err != nil {
		return nil, fmt.Errorf("parse form fields response: %w", err)
	}
	return fields, nil
}

// parseFieldsJSON tolerates markdown code fences around the model output.
func parseFieldsJSON(resp string) (map[string]any, error) {
	s := strings.TrimSpace(resp)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	var fields map[string]any
	if err := json.Unmarshal([]byte(s), &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
