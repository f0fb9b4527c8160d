package storage

import (
	"path"
	"strings"
)

// Clean normalizes p into a rooted POSIX path. Backslashes are not treated as
// separators. The result always starts with "/".
func Clean(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	return path.Clean(p)
}

// Key converts a rooted path into a backend key without the leading slash.
// The root maps to the empty key.
func Key(p string) string {
	return strings.TrimPrefix(Clean(p), "/")
}

// Dir returns the rooted parent directory of p.
func Dir(p string) string {
	return path.Dir(Clean(p))
}

// Base returns the last element of p. The root returns "/".
func Base(p string) string {
	return path.Base(Clean(p))
}

// Ext returns the file name extension of p including the dot.
func Ext(p string) string {
	return path.Ext(p)
}

// Join joins elements onto dir and cleans the result.
func Join(dir string, elem ...string) string {
	return Clean(path.Join(append([]string{dir}, elem...)...))
}
