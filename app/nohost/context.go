package nohost

import (
	"context"
	"net/http"
	"time"
)

// Context is the per-request context handed to handlers. context.Context
// methods delegate to the request's context.
type Context struct {
	w    http.ResponseWriter
	r    *http.Request
	path string
}

func newContext(w http.ResponseWriter, r *http.Request, path string) *Context {
	return &Context{w: w, r: r, path: path}
}

func (c *Context) Deadline() (deadline time.Time, ok bool) { return c.r.Context().Deadline() }
func (c *Context) Done() <-chan struct{}                   { return c.r.Context().Done() }
func (c *Context) Err() error                              { return c.r.Context().Err() }
func (c *Context) Value(key any) any                       { return c.r.Context().Value(key) }

// Request returns the *http.Request associated with the context.
func (c *Context) Request() *http.Request { return c.r }

// ResponseWriter returns the http.ResponseWriter associated with the context.
func (c *Context) ResponseWriter() http.ResponseWriter { return c.w }

// Path returns the cleaned storage path taken from the query string.
func (c *Context) Path() string { return c.path }

// SetValue stores a value on the request context so later Value calls,
// including those made by loggers, observe it.
func (c *Context) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}
