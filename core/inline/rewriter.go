package inline

import (
	"context"
	"io"
	"log/slog"

	"github.com/dmitrymomot/nohost/core/storage"
)

// Rewriter inlines documents and stylesheets using resources from a
// storage.Source. A Rewriter holds no per-document state and is safe for
// concurrent use; each call owns the tree it rewrites.
type Rewriter struct {
	src         storage.Source
	markup      Markup
	logger      *slog.Logger
	concurrency int
}

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithLogger sets the logger that receives skipped-reference reports.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Rewriter) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMarkup replaces the HTML parser and serializer.
func WithMarkup(m Markup) Option {
	return func(r *Rewriter) {
		if m != nil {
			r.markup = m
		}
	}
}

// WithConcurrency lets up to n reads of one stage run ahead in the
// background. Results are still applied in discovery order.
// Values below 1 mean sequential processing.
func WithConcurrency(n int) Option {
	return func(r *Rewriter) {
		r.concurrency = max(n, 1)
	}
}

// New creates a Rewriter reading resources from src.
func New(src storage.Source, opts ...Option) *Rewriter {
	r := &Rewriter{
		src:         src,
		markup:      HTMLMarkup{},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		concurrency: 1,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// InlineDocument rewrites src with a default Rewriter reading from store.
func InlineDocument(ctx context.Context, store storage.Source, src, docPath string) string {
	return New(store).Document(ctx, src, docPath)
}
