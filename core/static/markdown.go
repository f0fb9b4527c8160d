package static

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/dmitrymomot/nohost/core/handler"
	"github.com/dmitrymomot/nohost/core/logger"
	"github.com/dmitrymomot/nohost/core/pages"
	"github.com/dmitrymomot/nohost/core/response"
	"github.com/dmitrymomot/nohost/core/storage"
)

// newMarkdown creates the goldmark converter with GFM extensions.
// Raw HTML in sources is not passed through.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
}

// Markdown renders the Markdown file at ctx.Path() into a page and inlines
// it. Relative links and images in the Markdown resolve against the file's
// own directory.
func Markdown[C handler.Context](src storage.Source, rw Inliner, opts ...Option) handler.HandlerFunc[C] {
	cfg := newConfig(opts)
	md := newMarkdown()

	return func(ctx C) handler.Response {
		p := ctx.Path()

		data, err := src.ReadFile(ctx, p)
		if err != nil {
			cfg.logger.WarnContext(ctx, "unable to read markdown",
				logger.Component("static"),
				logger.Path(p),
				logger.Error(err),
			)
			return notFound(p)
		}

		var body bytes.Buffer
		if err := md.Convert(data, &body); err != nil {
			return response.Error(err)
		}

		doc, err := pages.Render(ctx, pages.MarkdownDocument(p, body.String()))
		if err != nil {
			return response.Error(err)
		}

		return response.HTML(rw.Document(ctx, doc, p))
	}
}
