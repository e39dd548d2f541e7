package model

import (
	"fmt"
	"time"
)

// DocumentType is the closed set of document categories accepted for upload.
// The value doubles as the stored-name prefix, so it is fixed at upload time
// and never mutated.
type DocumentType string

const (
	DocumentTypeResume      DocumentType = "resume"
	DocumentTypeCoverLetter DocumentType = "cover_letter"
)

// DocumentTypes lists every known category. Listing relies on this to decide
// which files in the upload root belong to the store.
func DocumentTypes() []DocumentType {
	return []DocumentType{DocumentTypeResume, DocumentTypeCoverLetter}
}

// ParseDocumentType validates a caller-supplied category token.
func ParseDocumentType(s string) (DocumentType, error) {
	for _, dt := range DocumentTypes() {
		if s == string(dt) {
			return dt, nil
		}
	}
	return "", fmt.Errorf("unknown document type %q", s)
}

// Document describes a stored file. Only the stored name, category, and
// extension are persisted (encoded in the file name); size and modification
// time are read from file-system metadata at query time.
type Document struct {
	Filename         string       `json:"filename"`
	OriginalFilename string       `json:"original_filename"`
	FilePath         string       `json:"file_path"`
	DocumentType     DocumentType `json:"document_type"`
	Size             int64        `json:"size"`
	ContentType      string       `json:"content_type"`
	LastModified     *time.Time   `json:"last_modified,omitempty"`
}

// DocumentListResponse wraps a listing with its total and the filter applied.
type DocumentListResponse struct {
	Documents    []Document    `json:"documents"`
	TotalCount   int           `json:"total_count"`
	DocumentType *DocumentType `json:"document_type,omitempty"`
}
