package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/nohost/core/storage"
)

// Compile-time check that Storage implements storage.Storage interface
var _ storage.Storage = (*Storage)(nil)

// DefaultScanCount is the SCAN COUNT hint used when none is configured.
const DefaultScanCount = 1000

// Client is the subset of redis.Cmdable used by Storage.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	StrLen(ctx context.Context, key string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

// Storage serves string keys as files. The key "site:docs/a.md" under
// prefix "site:" is the file "/docs/a.md"; directories are implied.
type Storage struct {
	client    Client
	prefix    string
	scanCount int64
}

// Option configures Storage.
type Option func(*Storage)

// WithPrefix sets the key prefix that maps to "/".
func WithPrefix(prefix string) Option {
	return func(s *Storage) {
		s.prefix = prefix
	}
}

// WithScanCount sets the SCAN COUNT hint for directory operations.
func WithScanCount(n int) Option {
	return func(s *Storage) {
		if n > 0 {
			s.scanCount = int64(n)
		}
	}
}

// New creates Redis backed storage.
func New(client Client, opts ...Option) (*Storage, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: redis client is required", storage.ErrInvalidConfig)
	}
	s := &Storage{client: client, scanCount: DefaultScanCount}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Storage) key(p string) string {
	return s.prefix + storage.Key(p)
}

// dirPrefix returns the key prefix shared by every entry under p.
func (s *Storage) dirPrefix(p string) string {
	k := storage.Key(p)
	if k == "" {
		return s.prefix
	}
	return s.prefix + k + "/"
}

// Exists reports whether path names a key or a non-empty directory.
func (s *Storage) Exists(ctx context.Context, path string) bool {
	_, err := s.Stat(ctx, path)
	return err == nil
}

// ReadFile returns the value stored at path.
func (s *Storage) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if storage.Key(path) == "" {
		return nil, fmt.Errorf("%w: %s", storage.ErrIsDirectory, storage.Clean(path))
	}
	data, err := s.client.Get(ctx, s.key(path)).Bytes()
	if err != nil {
		return nil, classifyError(err, path)
	}
	return data, nil
}

// Stat returns metadata for path. Redis keeps no modification time, so
// ModTime is always zero.
func (s *Storage) Stat(ctx context.Context, path string) (storage.Entry, error) {
	clean := storage.Clean(path)
	if clean == "/" {
		return storage.Entry{Name: "/", Path: "/", IsDir: true}, nil
	}

	n, err := s.client.Exists(ctx, s.key(clean)).Result()
	if err != nil {
		return storage.Entry{}, classifyError(err, clean)
	}
	if n > 0 {
		size, err := s.client.StrLen(ctx, s.key(clean)).Result()
		if err != nil {
			return storage.Entry{}, classifyError(err, clean)
		}
		return storage.Entry{Name: storage.Base(clean), Path: clean, Size: size}, nil
	}

	found := false
	err = s.scan(ctx, s.dirPrefix(clean), func(string) bool {
		found = true
		return false
	})
	if err != nil {
		return storage.Entry{}, err
	}
	if !found {
		return storage.Entry{}, fmt.Errorf("%w: %s", storage.ErrFileNotFound, clean)
	}
	return storage.Entry{Name: storage.Base(clean), Path: clean, IsDir: true}, nil
}

// List returns the immediate children of dir sorted by name. File sizes
// are not fetched.
func (s *Storage) List(ctx context.Context, dir string) ([]storage.Entry, error) {
	clean := storage.Clean(dir)
	prefix := s.dirPrefix(clean)

	// name -> is a plain key; a name that is both a key and a prefix lists as a file
	files := make(map[string]bool)
	err := s.scan(ctx, prefix, func(key string) bool {
		rest := strings.TrimPrefix(key, prefix)
		name, _, nested := strings.Cut(rest, "/")
		switch {
		case name == "":
		case !nested:
			files[name] = true
		default:
			if _, ok := files[name]; !ok {
				files[name] = false
			}
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 && clean != "/" {
		return nil, fmt.Errorf("%w: %s", storage.ErrDirectoryNotFound, clean)
	}

	entries := make([]storage.Entry, 0, len(files))
	for name, isFile := range files {
		entries = append(entries, storage.Entry{
			Name:  name,
			Path:  storage.Join(clean, name),
			IsDir: !isFile,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// scan calls fn for every key starting with prefix until fn returns false.
func (s *Storage) scan(ctx context.Context, prefix string, fn func(key string) bool) error {
	match := escapePattern(prefix) + "*"
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, match, s.scanCount).Result()
		if err != nil {
			return classifyError(err, prefix)
		}
		for _, k := range keys {
			if !fn(k) {
				return nil
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// escapePattern quotes glob metacharacters for SCAN MATCH.
func escapePattern(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func classifyError(err error, path string) error {
	switch {
	case errors.Is(err, redis.Nil):
		return fmt.Errorf("%w: %s", storage.ErrFileNotFound, path)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s", storage.ErrOperationTimeout, path)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %s", storage.ErrOperationCanceled, path)
	default:
		return fmt.Errorf("redis %s: %w", path, err)
	}
}
