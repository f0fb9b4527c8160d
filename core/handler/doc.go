// Package handler defines the request handling contract shared by the
// static handlers, middleware and the dispatcher.
//
// A HandlerFunc receives a typed Context and returns a Response; the
// Response does the writing. Errors returned by a Response are passed to an
// ErrorHandler. Errors that implement
//
//	interface{ StatusCode() int }
//
// select the HTTP status; anything else becomes a 500.
//
//	func hello(ctx handler.Context) handler.Response {
//		return response.HTML("<p>" + ctx.Path() + "</p>")
//	}
//
//	h := handler.Chain(hello, middleware.RequestID[handler.Context](), middleware.Logging[handler.Context](log))
package handler
