// Package response builds handler.Response values: plain text, HTML, raw
// bytes and templ components, plus the HTTPError type understood by
// ErrorHandler.
//
//	func page(ctx handler.Context) handler.Response {
//		return response.Templ(pages.NotFound(ctx.Path()))
//	}
//
// An error implementing StatusCode() int picks the status written by
// ErrorHandler; other errors become 500.
package response
