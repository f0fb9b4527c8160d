package static

import (
	"github.com/dmitrymomot/nohost/core/handler"
	"github.com/dmitrymomot/nohost/core/logger"
	"github.com/dmitrymomot/nohost/core/response"
	"github.com/dmitrymomot/nohost/core/storage"
)

// HTML serves the document at ctx.Path() with its resources inlined.
func HTML[C handler.Context](src storage.Source, rw Inliner, opts ...Option) handler.HandlerFunc[C] {
	cfg := newConfig(opts)

	return func(ctx C) handler.Response {
		p := ctx.Path()

		data, err := src.ReadFile(ctx, p)
		if err != nil {
			cfg.logger.WarnContext(ctx, "unable to read document",
				logger.Component("static"),
				logger.Path(p),
				logger.Error(err),
			)
			return notFound(p)
		}

		return response.HTML(rw.Document(ctx, string(data), p))
	}
}
