package static

import (
	"context"
	"io"
	"log/slog"
)

// Inliner rewrites an HTML document into a self-contained one.
// *inline.Rewriter implements it.
type Inliner interface {
	Document(ctx context.Context, html, docPath string) string
}

type config struct {
	logger *slog.Logger
	hidden []string
}

// Option configures a handler.
type Option func(*config)

// WithLogger sets the logger for read failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHidden hides directory entries matching any of the doublestar
// patterns. Patterns are matched against the entry name and against its
// path without the leading slash.
func WithHidden(patterns ...string) Option {
	return func(c *config) {
		c.hidden = append(c.hidden, patterns...)
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
