// Package datauri encodes bytes as RFC 2397 data URIs and infers MIME types
// from file extensions.
//
// A data URI is the embedded representation used when inlining resources
// into HTML and CSS documents:
//
//	import "github.com/dmitrymomot/nohost/pkg/datauri"
//
//	mime := datauri.MIMEFromExt(".png")        // "image/png"
//	uri := datauri.Encode(pngBytes, mime)      // "data:image/png;base64,iVBOR..."
//
// Encoded payloads always use standard base64 with padding.
package datauri
