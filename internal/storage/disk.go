package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"jobsearchapi/internal/config"
)

// Disk implements Store on a flat local directory. Concurrent writers need no
// coordination: each upload targets a distinct stored name and files are
// opened with O_EXCL, so an exact name collision surfaces as an error instead
// of an overwrite.
type Disk struct {
	root      string
	maxSize   int64
	chunkSize int
}

// NewDisk creates the upload root if absent and returns a store over it.
func NewDisk(cfg config.UploadConfig) (*Disk, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("upload root is required")
	}
	if cfg.MaxFileSizeBytes <= 0 {
		return nil, fmt.Errorf("max file size must be positive")
	}
	if cfg.ChunkSizeBytes <= 0 {
		return nil, fmt.Errorf("chunk size must be positive")
	}
	if err := os.MkdirAll(cfg.Root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &Disk{
		root:      cfg.Root,
		maxSize:   cfg.MaxFileSizeBytes,
		chunkSize: cfg.ChunkSizeBytes,
	}, nil
}

// Root returns the store's directory.
func (d *Disk) Root() string { return d.root }

// Path resolves the storage path for a stored name. Names are generated by
// NewStoredName and never contain separators, so the result stays inside root.
func (d *Disk) Path(name string) string {
	return filepath.Join(d.root, filepath.Base(name))
}

// WriteStream streams r to the destination in chunkSize reads, keeping a
// running total against the ceiling. The check happens before each chunk is
// written, so the file on disk never exceeds maxSize even transiently.
func (d *Disk) WriteStream(ctx context.Context, name string, r io.Reader) (int64, error) {
	dst := d.Path(name)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, fmt.Errorf("create destination file: %w", err)
	}

	var total int64
	buf := make([]byte, d.chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			d.abort(f, dst)
			return 0, fmt.Errorf("upload canceled: %w", err)
		}

		n, rerr := r.Read(buf)
		if n > 0 {
			if total+int64(n) > d.maxSize {
				d.abort(f, dst)
				return 0, ErrSizeLimit
			}
			if _, werr := f.Write(buf[:n]); werr != nil {
				d.abort(f, dst)
				return 0, fmt.Errorf("write chunk: %w", werr)
			}
			total += int64(n)
		}
		if rerr == io.EOF {
			break
		}
		// An abandoned or broken inbound stream is a failure, not a short file.
		if rerr != nil {
			d.abort(f, dst)
			return 0, fmt.Errorf("read upload stream: %w", rerr)
		}
	}

	if err := f.Close(); err != nil {
		d.discard(dst)
		return 0, fmt.Errorf("flush destination file: %w", err)
	}
	return total, nil
}

// Stat reads file-system metadata for a stored name.
func (d *Disk) Stat(ctx context.Context, name string) (FileInfo, error) {
	path := d.Path(name)
	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("stat %s: %w", name, err)
	}
	return FileInfo{Name: name, Path: path, Size: st.Size(), ModTime: st.ModTime()}, nil
}

// List enumerates regular files in the root. os.ReadDir returns entries
// sorted by name, which gives the store its stable listing order.
func (d *Disk) List(ctx context.Context) ([]FileInfo, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("read upload root: %w", err)
	}

	infos := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		st, err := e.Info()
		if err != nil {
			// Entry vanished between readdir and stat; a concurrent delete
			// is not a listing failure.
			continue
		}
		infos = append(infos, FileInfo{
			Name:    e.Name(),
			Path:    filepath.Join(d.root, e.Name()),
			Size:    st.Size(),
			ModTime: st.ModTime(),
		})
	}
	return infos, nil
}

// Remove deletes a stored file if present. Idempotent: a missing name yields
// (false, nil).
func (d *Disk) Remove(ctx context.Context, name string) (bool, error) {
	err := os.Remove(d.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("remove %s: %w", name, err)
	}
	return true, nil
}

// abort closes the open handle and deletes the partial file. Cleanup failures
// are logged, never propagated, so they cannot mask the primary error.
func (d *Disk) abort(f *os.File, dst string) {
	if err := f.Close(); err != nil {
		log.Printf("storage: close partial file %s: %v", dst, err)
	}
	d.discard(dst)
}

func (d *Disk) discard(dst string) {
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		log.Printf("storage: remove partial file %s: %v", dst, err)
	}
}
