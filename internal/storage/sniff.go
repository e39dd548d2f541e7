package storage

import (
	"github.com/gabriel-vasile/mimetype"
)

// Sniffer decides whether a completed file's true media type is on the
// allow-list. It inspects the binary signature on disk and ignores both the
// caller-declared content type and the file extension.
type Sniffer struct {
	allowed []string
}

// NewSniffer builds a validator over a closed set of media types.
func NewSniffer(allowed []string) *Sniffer {
	return &Sniffer{allowed: allowed}
}

// Allowed reports whether the file's sniffed media type is on the allow-list.
// It must be called on a fully written file. Any inspection failure counts as
// not allowed: validation rejects on ambiguity rather than erring open.
func (s *Sniffer) Allowed(path string) bool {
	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return false
	}
	for _, mt := range s.allowed {
		if detected.Is(mt) {
			return true
		}
	}
	return false
}
