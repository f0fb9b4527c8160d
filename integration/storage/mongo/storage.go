package mongo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/nohost/core/storage"
)

// Compile-time check that Storage implements storage.Storage interface
var _ storage.Storage = (*Storage)(nil)

// File is the part of a GridFS files document Storage reads.
type File struct {
	Name       string    `bson:"filename"`
	Length     int64     `bson:"length"`
	UploadDate time.Time `bson:"uploadDate"`
}

// Bucket is the GridFS access Storage needs. NewBucket adapts a
// *mongo.GridFSBucket.
type Bucket interface {
	// Find returns the files documents matching filter.
	Find(ctx context.Context, filter bson.M) ([]File, error)
	// Download writes the newest revision of name to w.
	Download(ctx context.Context, name string, w io.Writer) error
}

type gridFSBucket struct {
	bucket *mongo.GridFSBucket
}

// NewBucket opens the GridFS bucket called name in db. An empty name
// selects the driver default "fs".
func NewBucket(db *mongo.Database, name string) Bucket {
	opts := options.GridFSBucket()
	if name != "" {
		opts.SetName(name)
	}
	return &gridFSBucket{bucket: db.GridFSBucket(opts)}
}

func (b *gridFSBucket) Find(ctx context.Context, filter bson.M) ([]File, error) {
	cursor, err := b.bucket.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var files []File
	if err := cursor.All(ctx, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (b *gridFSBucket) Download(ctx context.Context, name string, w io.Writer) error {
	_, err := b.bucket.DownloadToStreamByName(ctx, name, w)
	return err
}

// Storage serves GridFS files. The file "site/docs/a.md" under prefix
// "site/" is "/docs/a.md"; directories are implied by "/" in file names.
type Storage struct {
	bucket Bucket
	prefix string
}

// Option configures Storage.
type Option func(*Storage)

// WithPrefix sets the file name prefix that maps to "/".
func WithPrefix(prefix string) Option {
	return func(s *Storage) {
		s.prefix = prefix
	}
}

// New creates GridFS backed storage.
func New(bucket Bucket, opts ...Option) (*Storage, error) {
	if bucket == nil {
		return nil, fmt.Errorf("%w: gridfs bucket is required", storage.ErrInvalidConfig)
	}
	s := &Storage{bucket: bucket}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Storage) name(p string) string {
	return s.prefix + storage.Key(p)
}

// dirPrefix returns the file name prefix shared by every entry under p.
func (s *Storage) dirPrefix(p string) string {
	k := storage.Key(p)
	if k == "" {
		return s.prefix
	}
	return s.prefix + k + "/"
}

// Exists reports whether path names a file or a non-empty directory.
func (s *Storage) Exists(ctx context.Context, path string) bool {
	_, err := s.Stat(ctx, path)
	return err == nil
}

// ReadFile returns the newest revision of the file at path.
func (s *Storage) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if storage.Key(path) == "" {
		return nil, fmt.Errorf("%w: %s", storage.ErrIsDirectory, storage.Clean(path))
	}
	var buf bytes.Buffer
	if err := s.bucket.Download(ctx, s.name(path), &buf); err != nil {
		return nil, classifyError(err, path)
	}
	return buf.Bytes(), nil
}

// Stat returns metadata for path. When a file has several revisions the
// newest one is described.
func (s *Storage) Stat(ctx context.Context, path string) (storage.Entry, error) {
	clean := storage.Clean(path)
	if clean == "/" {
		return storage.Entry{Name: "/", Path: "/", IsDir: true}, nil
	}

	name := s.name(clean)
	files, err := s.bucket.Find(ctx, bson.M{
		"filename": bson.M{"$regex": "^" + regexp.QuoteMeta(name) + "(/|$)"},
	})
	if err != nil {
		return storage.Entry{}, classifyError(err, clean)
	}
	if len(files) == 0 {
		return storage.Entry{}, fmt.Errorf("%w: %s", storage.ErrFileNotFound, clean)
	}

	var newest *File
	for i := range files {
		if files[i].Name != name {
			continue
		}
		if newest == nil || files[i].UploadDate.After(newest.UploadDate) {
			newest = &files[i]
		}
	}
	if newest == nil {
		return storage.Entry{Name: storage.Base(clean), Path: clean, IsDir: true}, nil
	}
	return storage.Entry{
		Name:    storage.Base(clean),
		Path:    clean,
		Size:    newest.Length,
		ModTime: newest.UploadDate,
	}, nil
}

// List returns the immediate children of dir sorted by name.
func (s *Storage) List(ctx context.Context, dir string) ([]storage.Entry, error) {
	clean := storage.Clean(dir)
	prefix := s.dirPrefix(clean)

	filter := bson.M{}
	if prefix != "" {
		filter["filename"] = bson.M{"$regex": "^" + regexp.QuoteMeta(prefix)}
	}
	files, err := s.bucket.Find(ctx, filter)
	if err != nil {
		return nil, classifyError(err, clean)
	}

	// A name that is both a file and a prefix lists as a file
	children := make(map[string]storage.Entry)
	for _, f := range files {
		rest, ok := strings.CutPrefix(f.Name, prefix)
		if !ok {
			continue
		}
		name, _, nested := strings.Cut(rest, "/")
		if name == "" {
			continue
		}

		cur, seen := children[name]
		if nested {
			if !seen {
				children[name] = storage.Entry{Name: name, Path: storage.Join(clean, name), IsDir: true}
			}
			continue
		}
		if !seen || cur.IsDir || f.UploadDate.After(cur.ModTime) {
			children[name] = storage.Entry{
				Name:    name,
				Path:    storage.Join(clean, name),
				Size:    f.Length,
				ModTime: f.UploadDate,
			}
		}
	}
	if len(children) == 0 && clean != "/" {
		return nil, fmt.Errorf("%w: %s", storage.ErrDirectoryNotFound, clean)
	}

	entries := make([]storage.Entry, 0, len(children))
	for _, e := range children {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func classifyError(err error, path string) error {
	switch {
	case errors.Is(err, mongo.ErrFileNotFound):
		return fmt.Errorf("%w: %s", storage.ErrFileNotFound, path)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s", storage.ErrOperationTimeout, path)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %s", storage.ErrOperationCanceled, path)
	default:
		return fmt.Errorf("gridfs %s: %w", path, err)
	}
}
