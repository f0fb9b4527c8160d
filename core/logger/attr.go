package logger

import (
	"log/slog"
	"strings"
	"time"
)

// Helpers that take optional values return an empty Attr when the value
// is missing; slog drops empty attributes.

// ============================================================================
// Error Handling
// ============================================================================

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ============================================================================
// Performance and Timing
// ============================================================================

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// ============================================================================
// Generic Identifiers
// ============================================================================

// RequestID creates an attribute for HTTP request IDs.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// ============================================================================
// Network and HTTP
// ============================================================================

// Method creates an attribute for HTTP methods.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path creates an attribute for URL paths.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// StatusCode creates an attribute for HTTP status codes.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// RemoteAddr creates an attribute for the peer address of a connection.
func RemoteAddr(addr string) slog.Attr {
	return slog.String("remote_addr", addr)
}

// ============================================================================
// Generic Metadata
// ============================================================================

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Storage creates an attribute for the storage backend name.
func Storage(kind string) slog.Attr {
	return slog.String("storage", kind)
}

// ============================================================================
// Inlining
// ============================================================================

// Ref creates an attribute for a reference as written in a document.
// Data URIs are truncated to their media type.
func Ref(ref string) slog.Attr {
	if i := strings.IndexByte(ref, ','); i > 0 && strings.HasPrefix(strings.ToLower(ref), "data:") {
		ref = ref[:i] + ",..."
	}
	return slog.String("ref", ref)
}

// Stage creates an attribute for the rewriting stage an event belongs to.
func Stage(name string) slog.Attr {
	return slog.String("stage", name)
}
