package static

import (
	"github.com/dmitrymomot/nohost/core/handler"
	"github.com/dmitrymomot/nohost/core/pages"
	"github.com/dmitrymomot/nohost/core/response"
)

// Image serves a synthetic page displaying the image at ctx.Path(). The
// image itself is embedded by rw.
func Image[C handler.Context](rw Inliner) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		p := ctx.Path()

		doc, err := pages.Render(ctx, pages.ImageDocument(p))
		if err != nil {
			return response.Error(err)
		}

		return response.HTML(rw.Document(ctx, doc, p))
	}
}
