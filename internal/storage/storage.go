package storage

// Package storage contains the local document store: a single flat directory
// that uploads are streamed into under a byte budget. All descriptor metadata
// besides the stored name is derived from file-system metadata at read time;
// there are no sidecar files and no subdirectories.

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrSizeLimit is returned by WriteStream when the inbound stream exceeds the
// configured ceiling. The partial file has already been removed when this is
// returned.
var ErrSizeLimit = errors.New("file size exceeds maximum limit")

// FileInfo carries the file-system metadata of one stored document.
type FileInfo struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// Store is the durable directory of accepted documents.
type Store interface {
	// WriteStream consumes r in fixed-size chunks and writes it under name,
	// enforcing the size ceiling. On any failure no file remains at the
	// destination. Returns the exact byte count written.
	WriteStream(ctx context.Context, name string, r io.Reader) (int64, error)
	// Stat returns metadata for a stored file; the error wraps fs.ErrNotExist
	// when the name is unknown.
	Stat(ctx context.Context, name string) (FileInfo, error)
	// List enumerates every regular file in the store root, sorted by name.
	List(ctx context.Context) ([]FileInfo, error)
	// Remove deletes a stored file and reports whether anything was removed.
	// Removing an unknown name is not an error.
	Remove(ctx context.Context, name string) (bool, error)
	// Path resolves the storage path for a stored name.
	Path(name string) string
}
