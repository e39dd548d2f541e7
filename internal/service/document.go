package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"time"

	"jobsearchapi/internal/model"
	"jobsearchapi/internal/storage"
)

var (
	// ErrReaderNil means the caller supplied no upload stream.
	ErrReaderNil = errors.New("reader is nil")
	// ErrFileTooLarge is an input-rejection error: the stream exceeded the
	// configured ceiling. The partial file has already been cleaned up.
	ErrFileTooLarge = errors.New("file size exceeds maximum limit")
	// ErrUnsupportedType is an input-rejection error: the completed file's
	// sniffed signature is outside the allow-list. The file has been removed.
	ErrUnsupportedType = errors.New("unsupported media type")
	// ErrNotFound signals an unknown stored name for Get.
	ErrNotFound = errors.New("document not found")
	// ErrFilenameRequired means the caller supplied an empty stored name.
	ErrFilenameRequired = errors.New("filename is required")
)

// fallbackContentType is reported for descriptors built from file-system
// metadata, where the declared type of the original upload is not persisted.
const fallbackContentType = "application/octet-stream"

// DocumentService is the ingestion façade over the document store:
// accept → stream-write → validate → descriptor, with rollback of any partial
// artifact on every failure path. Errors other than the exported sentinels
// are storage faults (disk full, permissions, vanished directory) and should
// be treated as system-level failures, not input rejection.
type DocumentService interface {
	// Save streams an upload into the store under a generated name. The
	// returned descriptor is the only point at which the document becomes
	// observable; no descriptor ever refers to a partial or invalid file.
	Save(ctx context.Context, r io.Reader, docType model.DocumentType, originalFilename, contentType string) (*model.Document, error)

	// List enumerates stored documents, optionally filtered by category.
	// Files whose name prefix is not a known category are skipped.
	List(ctx context.Context, docType *model.DocumentType) (*model.DocumentListResponse, error)

	// Get returns the descriptor for a stored name, re-reading file-system
	// metadata. Returns ErrNotFound for unknown names.
	Get(ctx context.Context, filename string) (*model.Document, error)

	// Delete removes a document and reports whether anything was removed.
	// Deleting an unknown name returns (false, nil).
	Delete(ctx context.Context, filename string) (bool, error)
}

// Validator decides whether a completed file on disk is acceptable.
type Validator interface {
	Allowed(path string) bool
}

type documentService struct {
	store storage.Store
	sniff Validator
}

// NewDocumentService constructs the ingestion façade.
func NewDocumentService(store storage.Store, sniff Validator) DocumentService {
	return &documentService{store: store, sniff: sniff}
}

func (s *documentService) Save(ctx context.Context, r io.Reader, docType model.DocumentType, originalFilename, contentType string) (*model.Document, error) {
	if r == nil {
		return nil, ErrReaderNil
	}

	name := storage.NewStoredName(docType, originalFilename, time.Now())

	size, err := s.store.WriteStream(ctx, name, r)
	if err != nil {
		// The stream writer already removed its partial output.
		if errors.Is(err, storage.ErrSizeLimit) {
			return nil, ErrFileTooLarge
		}
		return nil, fmt.Errorf("stream upload to store: %w", err)
	}

	// Signature inspection runs only on fully flushed bytes.
	if !s.sniff.Allowed(s.store.Path(name)) {
		// Best-effort rollback; a cleanup failure must not mask the rejection.
		_, _ = s.store.Remove(ctx, name)
		return nil, ErrUnsupportedType
	}

	return &model.Document{
		Filename:         name,
		OriginalFilename: originalFilename,
		FilePath:         s.store.Path(name),
		DocumentType:     docType,
		Size:             size,
		ContentType:      contentType,
	}, nil
}

func (s *documentService) List(ctx context.Context, docType *model.DocumentType) (*model.DocumentListResponse, error) {
	infos, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list store: %w", err)
	}

	documents := make([]model.Document, 0, len(infos))
	for _, info := range infos {
		category, ok := storage.CategoryOf(info.Name)
		if !ok {
			// Foreign files in the store root are tolerated, not an error.
			continue
		}
		if docType != nil && category != *docType {
			continue
		}
		documents = append(documents, descriptorFromInfo(info, category))
	}

	sort.Slice(documents, func(i, j int) bool {
		return documents[i].Filename < documents[j].Filename
	})

	return &model.DocumentListResponse{
		Documents:    documents,
		TotalCount:   len(documents),
		DocumentType: docType,
	}, nil
}

func (s *documentService) Get(ctx context.Context, filename string) (*model.Document, error) {
	if filename == "" {
		return nil, ErrFilenameRequired
	}

	info, err := s.store.Stat(ctx, filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("stat document: %w", err)
	}

	category, ok := storage.CategoryOf(filename)
	if !ok {
		// Unknown prefixes default to resume on direct lookup; only listing
		// skips them.
		category = model.DocumentTypeResume
	}
	doc := descriptorFromInfo(info, category)
	return &doc, nil
}

func (s *documentService) Delete(ctx context.Context, filename string) (bool, error) {
	if filename == "" {
		return false, ErrFilenameRequired
	}
	removed, err := s.store.Remove(ctx, filename)
	if err != nil {
		return false, fmt.Errorf("delete document: %w", err)
	}
	return removed, nil
}

func descriptorFromInfo(info storage.FileInfo, category model.DocumentType) model.Document {
	modTime := info.ModTime
	return model.Document{
		Filename:         info.Name,
		OriginalFilename: info.Name,
		FilePath:         info.Path,
		DocumentType:     category,
		Size:             info.Size,
		ContentType:      fallbackContentType,
		LastModified:     &modTime,
	}
}
