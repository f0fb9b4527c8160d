package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/nohost/core/storage"
)

// Compile-time check that Storage implements storage.Storage interface
var _ storage.Storage = (*Storage)(nil)

// Client defines the S3 operations used by Storage.
type Client interface {
	HeadObject(ctx context.Context, params *s3aws.HeadObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3aws.ListObjectsV2Input, optFns ...func(*s3aws.Options)) (*s3aws.ListObjectsV2Output, error)
}

// Storage serves a bucket, optionally under a key prefix, as a read-only
// virtual filesystem. Directories are derived from "/" separated keys.
type Storage struct {
	client Client
	bucket string
	prefix string
}

// Config contains configuration for S3 storage.
type Config struct {
	Bucket         string `env:"NOHOST_S3_BUCKET"`
	Region         string `env:"NOHOST_S3_REGION" envDefault:"us-east-1"`
	Prefix         string `env:"NOHOST_S3_PREFIX"` // Key prefix served as "/"
	AccessKeyID    string `env:"NOHOST_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"NOHOST_S3_SECRET_KEY"`
	Endpoint       string `env:"NOHOST_S3_ENDPOINT"`                             // For S3-compatible services like MinIO, Wasabi
	ForcePathStyle bool   `env:"NOHOST_S3_FORCE_PATH_STYLE" envDefault:"false"` // Required for MinIO and some S3-compatible services
}

// Option configures Storage construction.
type Option func(*options)

type options struct {
	httpClient    *http.Client
	client        Client
	configOptions []func(*config.LoadOptions) error
	clientOptions []func(*s3aws.Options)
}

// WithClient sets a pre-configured S3 client.
// Primarily used for testing with mocks.
func WithClient(client Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithConfigOption adds a custom AWS config option.
func WithConfigOption(option func(*config.LoadOptions) error) Option {
	return func(o *options) {
		o.configOptions = append(o.configOptions, option)
	}
}

// WithClientOption adds a custom S3 client option.
func WithClientOption(option func(*s3aws.Options)) Option {
	return func(o *options) {
		o.clientOptions = append(o.clientOptions, option)
	}
}

// New creates S3 backed storage.
// Credentials fall back to the default AWS chain when not given in cfg.
func New(ctx context.Context, cfg Config, opts ...Option) (*Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("%w: bucket and region are required", storage.ErrInvalidConfig)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}
		if o.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(o.httpClient))
		}
		awsOptions = append(awsOptions, o.configOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client = s3aws.NewFromConfig(awsConfig, func(so *s3aws.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle
			for _, opt := range o.clientOptions {
				opt(so)
			}
		})
	}

	return &Storage{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
	}, nil
}

// key maps a rooted path to an object key. The root maps to the prefix.
func (s *Storage) key(p string) string {
	k := storage.Key(p)
	switch {
	case s.prefix == "":
		return k
	case k == "":
		return s.prefix
	default:
		return s.prefix + "/" + k
	}
}

// dirPrefix returns the listing prefix for a rooted directory path.
func (s *Storage) dirPrefix(p string) string {
	k := s.key(p)
	if k == "" {
		return ""
	}
	return k + "/"
}

// Exists reports whether path is an object or a non-empty key prefix.
func (s *Storage) Exists(ctx context.Context, path string) bool {
	_, err := s.Stat(ctx, path)
	return err == nil
}

// ReadFile downloads the object at path.
func (s *Storage) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if storage.Key(path) == "" {
		return nil, fmt.Errorf("%w: %s", storage.ErrIsDirectory, storage.Clean(path))
	}

	out, err := s.client.GetObject(ctx, &s3aws.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(path)),
	})
	if err != nil {
		return nil, classifyS3Error(err, "read file")
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, classifyS3Error(err, "read file")
	}
	return data, nil
}

// Stat returns metadata for an object, or for a directory implied by keys
// sharing the path as prefix.
func (s *Storage) Stat(ctx context.Context, path string) (storage.Entry, error) {
	clean := storage.Clean(path)
	if clean == "/" {
		return storage.Entry{Name: "/", Path: "/", IsDir: true}, nil
	}

	head, err := s.client.HeadObject(ctx, &s3aws.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(clean)),
	})
	if err == nil {
		e := storage.Entry{
			Name: storage.Base(clean),
			Path: clean,
			Size: aws.ToInt64(head.ContentLength),
		}
		if head.LastModified != nil {
			e.ModTime = *head.LastModified
		}
		return e, nil
	}
	if err = classifyS3Error(err, "stat"); !errors.Is(err, storage.ErrFileNotFound) {
		return storage.Entry{}, err
	}

	resp, err := s.client.ListObjectsV2(ctx, &s3aws.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(s.dirPrefix(clean)),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return storage.Entry{}, classifyS3Error(err, "stat")
	}
	if len(resp.Contents) == 0 && len(resp.CommonPrefixes) == 0 {
		return storage.Entry{}, fmt.Errorf("%w: %s", storage.ErrFileNotFound, clean)
	}
	return storage.Entry{Name: storage.Base(clean), Path: clean, IsDir: true}, nil
}

// List returns the immediate children of dir sorted by name.
// Uses the "/" delimiter so subdirectories come back as common prefixes.
func (s *Storage) List(ctx context.Context, dir string) ([]storage.Entry, error) {
	clean := storage.Clean(dir)
	prefix := s.dirPrefix(clean)

	var entries []storage.Entry
	var token *string
	found := false
	for {
		resp, err := s.client.ListObjectsV2(ctx, &s3aws.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(prefix),
			Delimiter:         aws.String("/"),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, classifyS3Error(err, "list directory")
		}
		found = found || len(resp.Contents) > 0 || len(resp.CommonPrefixes) > 0

		for _, cp := range resp.CommonPrefixes {
			name := strings.TrimSuffix(strings.TrimPrefix(aws.ToString(cp.Prefix), prefix), "/")
			if name == "" {
				continue
			}
			entries = append(entries, storage.Entry{
				Name:  name,
				Path:  storage.Join(clean, name),
				IsDir: true,
			})
		}

		for _, obj := range resp.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), prefix)
			// Skip the directory marker and anything deeper
			if name == "" || strings.Contains(name, "/") {
				continue
			}
			e := storage.Entry{
				Name: name,
				Path: storage.Join(clean, name),
				Size: aws.ToInt64(obj.Size),
			}
			if obj.LastModified != nil {
				e.ModTime = *obj.LastModified
			}
			entries = append(entries, e)
		}

		if !aws.ToBool(resp.IsTruncated) || resp.NextContinuationToken == nil {
			break
		}
		token = resp.NextContinuationToken
	}

	if !found && clean != "/" {
		return nil, fmt.Errorf("%w: %s", storage.ErrDirectoryNotFound, clean)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}
