package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Compile-time check that FS implements Storage
var _ Storage = (*FS)(nil)

// FS serves a read-only Storage from any fs.FS.
type FS struct {
	fsys fs.FS
}

// NewFS wraps fsys as Storage.
func NewFS(fsys fs.FS) *FS {
	return &FS{fsys: fsys}
}

// NewLocal creates Storage rooted at a host directory.
// Returns an error if root does not exist or is not a directory.
func NewLocal(root string) (*FS, error) {
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: root does not exist: %s", ErrInvalidConfig, root)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: root is not a directory: %s", ErrInvalidConfig, root)
	}

	return NewFS(os.DirFS(root)), nil
}

// fsName converts a rooted path to an fs.FS name.
func fsName(p string) string {
	if name := Key(p); name != "" {
		return name
	}
	return "."
}

// Exists reports whether path names a file or directory.
func (s *FS) Exists(ctx context.Context, path string) bool {
	if ctx.Err() != nil {
		return false
	}
	_, err := fs.Stat(s.fsys, fsName(path))
	return err == nil
}

// ReadFile returns the file content at path.
func (s *FS) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOperationCanceled, err)
	}

	data, err := fs.ReadFile(s.fsys, fsName(path))
	if err != nil {
		return nil, classifyFSError(err, path)
	}
	return data, nil
}

// Stat returns metadata for path.
func (s *FS) Stat(ctx context.Context, path string) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrOperationCanceled, err)
	}

	info, err := fs.Stat(s.fsys, fsName(path))
	if err != nil {
		return Entry{}, classifyFSError(err, path)
	}
	return entryFromInfo(Clean(path), info), nil
}

// List returns the children of dir sorted by name.
func (s *FS) List(ctx context.Context, dir string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOperationCanceled, err)
	}

	dirents, err := fs.ReadDir(s.fsys, fsName(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, classifyFSError(err, dir)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		info, err := d.Info()
		if err != nil {
			// Entry vanished between ReadDir and Info
			continue
		}
		entries = append(entries, entryFromInfo(Join(dir, d.Name()), info))
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func entryFromInfo(path string, info fs.FileInfo) Entry {
	e := Entry{
		Name:    Base(path),
		Path:    path,
		IsDir:   info.IsDir(),
		ModTime: info.ModTime(),
	}
	if !e.IsDir {
		e.Size = info.Size()
	}
	return e
}

func classifyFSError(err error, path string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrAccessDenied, path)
	case errors.Is(err, fs.ErrInvalid):
		return fmt.Errorf("%w: %s", ErrInvalidPath, path)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}
