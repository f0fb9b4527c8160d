package static

import (
	"path"

	"github.com/dmitrymomot/nohost/core/handler"
	"github.com/dmitrymomot/nohost/core/logger"
	"github.com/dmitrymomot/nohost/core/response"
	"github.com/dmitrymomot/nohost/core/storage"
	"github.com/dmitrymomot/nohost/pkg/datauri"
)

// File serves the raw bytes at ctx.Path().
func File[C handler.Context](src storage.Source, opts ...Option) handler.HandlerFunc[C] {
	cfg := newConfig(opts)

	return func(ctx C) handler.Response {
		p := ctx.Path()

		data, err := src.ReadFile(ctx, p)
		if err != nil {
			cfg.logger.WarnContext(ctx, "unable to read file",
				logger.Component("static"),
				logger.Path(p),
				logger.Error(err),
			)
			return notFound(p)
		}

		return response.WithHeaders(
			response.Bytes(data, datauri.MIMEFromExt(path.Ext(p))),
			map[string]string{"X-Content-Type-Options": "nosniff"},
		)
	}
}
