package datauri

import (
	"mime"
	"strings"
)

// DefaultMIME is used when an extension is unknown.
const DefaultMIME = "application/octet-stream"

// knownTypes covers the resources that show up in web pages. It takes
// precedence over the platform MIME database so results do not depend on
// /etc/mime.types.
var knownTypes = map[string]string{
	".html":  "text/html",
	".htm":   "text/html",
	".css":   "text/css",
	".js":    "text/javascript",
	".mjs":   "text/javascript",
	".json":  "application/json",
	".txt":   "text/plain",
	".md":    "text/markdown",
	".xml":   "application/xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".svg":   "image/svg+xml",
	".ico":   "image/x-icon",
	".bmp":   "image/bmp",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".eot":   "application/vnd.ms-fontobject",
	".mp3":   "audio/mpeg",
	".ogg":   "audio/ogg",
	".wav":   "audio/wav",
	".mp4":   "video/mp4",
	".webm":  "video/webm",
	".pdf":   "application/pdf",
	".wasm":  "application/wasm",
}

// MIMEFromExt returns the MIME type for a file extension such as ".png".
// The leading dot is optional and matching is case-insensitive.
// Parameters like "; charset=utf-8" are stripped.
func MIMEFromExt(ext string) string {
	if ext == "" {
		return DefaultMIME
	}
	ext = normalizeExt(ext)

	if t, ok := knownTypes[ext]; ok {
		return t
	}

	if t := mime.TypeByExtension(ext); t != "" {
		if base, _, err := mime.ParseMediaType(t); err == nil {
			return base
		}
		return t
	}
	return DefaultMIME
}

// IsImageExt reports whether ext names an image format served by the
// image wrapper. Only the built-in table is consulted, so the answer does
// not depend on the host MIME database.
func IsImageExt(ext string) bool {
	if ext == "" {
		return false
	}
	return strings.HasPrefix(knownTypes[normalizeExt(ext)], "image/")
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext[0] != '.' {
		ext = "." + ext
	}
	return ext
}
