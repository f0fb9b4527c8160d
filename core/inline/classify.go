package inline

import (
	"strings"

	"github.com/dmitrymomot/nohost/pkg/datauri"
)

// Class is the outcome of classifying a reference.
type Class int

const (
	// Skip marks references that must be left untouched.
	Skip Class = iota
	// Inlineable marks references relative to the current base directory.
	Inlineable
)

// String implements fmt.Stringer.
func (c Class) String() string {
	if c == Inlineable {
		return "inlineable"
	}
	return "skip"
}

// Classify decides whether ref points into the storage tree.
// Empty refs, absolute URLs (containing "://"), protocol-relative URLs
// (leading "//") and data URIs are skipped.
func Classify(ref string) Class {
	switch {
	case ref == "":
		return Skip
	case strings.Contains(ref, "://"):
		return Skip
	case strings.HasPrefix(ref, "//"):
		return Skip
	case datauri.IsDataURI(ref):
		return Skip
	}
	return Inlineable
}

// IsInlineable reports whether Classify(ref) is Inlineable.
func IsInlineable(ref string) bool {
	return Classify(ref) == Inlineable
}
