// Package middleware provides the handler.Middleware used by the server:
// request IDs and request logging.
//
//	h := handler.Chain(endpoint,
//		middleware.RequestID[*nohost.Context](),
//		middleware.Logging[*nohost.Context](log),
//	)
//
// RequestID runs first so the logging middleware can attach the ID to its
// log line.
package middleware
