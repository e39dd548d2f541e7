package config

import (
	"os"
	"strconv"
)

// UploadConfig holds settings for the document ingestion pipeline.
type UploadConfig struct {
	// Root is the flat directory that holds accepted documents. Created if absent.
	Root string
	// MaxFileSizeBytes is the hard ceiling for a single upload.
	MaxFileSizeBytes int64
	// ChunkSizeBytes is the read granularity while streaming an upload to disk.
	ChunkSizeBytes int
	// AllowedMediaTypes is the closed set of sniffed media types accepted at ingestion.
	AllowedMediaTypes []string
}

// SearchConfig holds external search provider settings.
type SearchConfig struct {
	Provider     string // "serpapi" or "google"
	SerpAPIKey   string
	GoogleAPIKey string
	GoogleCSEID  string
}

// LLMConfig holds settings for the prompting layer.
type LLMConfig struct {
	OpenAIAPIKey string
	Model        string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables and passed explicitly into
// constructors; there is no process-wide cached settings object.
type AppConfig struct {
	AppName   string
	Port      string
	APIPrefix string
	Upload    UploadConfig
	Search    SearchConfig
	LLM       LLMConfig
}

// DefaultAllowedMediaTypes is the document allow-list: PDF, legacy Word,
// Word XML, and plain text. Anything else is rejected at ingestion.
func DefaultAllowedMediaTypes() []string {
	return []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"text/plain",
	}
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppName:   getEnv("APP_NAME", "Job Search API"),
		Port:      getEnv("PORT", "8080"),
		APIPrefix: getEnv("API_PREFIX", "/api/v1"),
		Upload: UploadConfig{
			Root:              getEnv("UPLOAD_ROOT", "./uploads"),
			MaxFileSizeBytes:  getEnvInt64("UPLOAD_MAX_FILE_SIZE_BYTES", 10*1024*1024),
			ChunkSizeBytes:    getEnvInt("UPLOAD_CHUNK_SIZE_BYTES", 1024*1024),
			AllowedMediaTypes: DefaultAllowedMediaTypes(),
		},
		Search: SearchConfig{
			Provider:     getEnv("SEARCH_PROVIDER", "serpapi"),
			SerpAPIKey:   getEnv("SERPAPI_API_KEY", ""),
			GoogleAPIKey: getEnv("GOOGLE_API_KEY", ""),
			GoogleCSEID:  getEnv("GOOGLE_CSE_ID", ""),
		},
		LLM: LLMConfig{
			OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
			Model:        getEnv("OPENAI_MODEL", "gpt-4-turbo-preview"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}
