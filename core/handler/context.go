package handler

import (
	"context"
	"net/http"
)

// Context defines the contract for request contexts passed to handlers.
// Path is the storage path the request targets.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Path() string
	SetValue(key, val any)
}
