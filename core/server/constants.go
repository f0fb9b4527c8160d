package server

import "time"

// Defaults for a read-only file server. Requests are bodiless GETs, so the
// read side is kept tight; responses are written only after the whole
// document has been inlined, so the write side is generous.
const (
	DefaultAddr              = ":8080"
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultReadTimeout       = 10 * time.Second
	DefaultWriteTimeout      = 60 * time.Second
	DefaultIdleTimeout       = 60 * time.Second
	DefaultShutdownTimeout   = 15 * time.Second

	// The requested path travels in the query string and counts against
	// this limit.
	DefaultMaxHeaderBytes = 64 << 10
)
