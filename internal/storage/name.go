package storage

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobsearchapi/internal/model"
)

// NewStoredName derives a collision-resistant, sortable file name:
//
//	{category}_{YYYYMMDD_HHMMSS}_{8-char random suffix}{extension}
//
// Uniqueness relies on the suffix entropy rather than a reservation scheme;
// the store's O_EXCL open turns the (negligibly rare) exact collision into an
// error instead of an overwrite, but no retry is attempted.
func NewStoredName(docType model.DocumentType, originalFilename string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	ext := sanitizeExt(originalFilename)
	return string(docType) + "_" + timestamp + "_" + suffix + ext
}

// CategoryOf re-parses the category from a stored name prefix. Known
// categories are matched as whole prefixes so that multi-token categories
// like cover_letter survive the round trip. Foreign files yield ok=false and
// are skipped by listing.
func CategoryOf(name string) (model.DocumentType, bool) {
	for _, dt := range model.DocumentTypes() {
		if strings.HasPrefix(name, string(dt)+"_") {
			return dt, true
		}
	}
	return "", false
}

// sanitizeExt extracts the extension from a caller-supplied name. The input
// is advisory and untrusted, so anything that could escape the store root or
// smuggle a separator is dropped.
func sanitizeExt(originalFilename string) string {
	ext := filepath.Ext(filepath.Base(originalFilename))
	if ext == "" || ext == "." {
		return ""
	}
	for _, r := range ext[1:] {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		default:
			return ""
		}
	}
	return ext
}
