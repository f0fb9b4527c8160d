package static

import (
	"net/http"

	"github.com/dmitrymomot/nohost/core/handler"
	"github.com/dmitrymomot/nohost/core/pages"
	"github.com/dmitrymomot/nohost/core/response"
)

// NotFound answers with the Apache-style 404 page.
func NotFound[C handler.Context]() handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		return notFound(ctx.Path())
	}
}

func notFound(p string) handler.Response {
	return response.TemplWithStatus(pages.NotFound(p), http.StatusNotFound)
}
