package datauri

import (
	"encoding/base64"
	"strings"
)

// Prefix starts every data URI.
const Prefix = "data:"

// Encode returns data as a base64 data URI with the given MIME type.
// An empty mime falls back to DefaultMIME.
func Encode(data []byte, mime string) string {
	if mime == "" {
		mime = DefaultMIME
	}

	var b strings.Builder
	b.Grow(len(Prefix) + len(mime) + len(";base64,") + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString(Prefix)
	b.WriteString(mime)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// IsDataURI reports whether s is already an embedded data URI.
// Leading whitespace is ignored and the scheme is matched case-insensitively.
func IsDataURI(s string) bool {
	s = strings.TrimLeft(s, " \t\r\n\f")
	return len(s) >= len(Prefix) && strings.EqualFold(s[:len(Prefix)], Prefix)
}
