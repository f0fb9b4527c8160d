package storage

import (
	"context"
	"time"
)

// Source provides existence checks and reads. It is all the inlining engine
// consumes.
type Source interface {
	// Exists reports whether path names a file or directory.
	Exists(ctx context.Context, path string) bool
	// ReadFile returns the whole content of the file at path.
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// Storage is a read-only virtual filesystem.
type Storage interface {
	Source
	// Stat returns metadata for a file or directory.
	Stat(ctx context.Context, path string) (Entry, error)
	// List returns the immediate children of dir.
	List(ctx context.Context, dir string) ([]Entry, error)
}

// Entry describes a file or directory.
type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}
