package inline

import (
	"path"
	"strings"
)

// Resolve turns ref into an absolute storage path relative to baseDir.
// Refs starting with "/" are rooted at the storage root. Query and fragment
// parts are not part of the lookup key. No existence check is made.
func Resolve(baseDir, ref string) string {
	p, _, _ := splitRef(ref)
	if strings.HasPrefix(p, "/") {
		return path.Clean(p)
	}
	return path.Join("/", baseDir, p)
}

// AnchorHref returns the same-origin link that opens ref through the server:
// "?" followed by the resolved path. A fragment on ref is kept.
func AnchorHref(baseDir, ref string) string {
	_, _, fragment := splitRef(ref)
	return "?" + Resolve(baseDir, ref) + fragment
}

// splitRef separates the path of ref from its query and fragment.
// The returned query and fragment keep their leading '?' and '#'.
func splitRef(ref string) (p, query, fragment string) {
	p = ref
	if i := strings.IndexByte(p, '#'); i >= 0 {
		p, fragment = p[:i], p[i:]
	}
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p, query = p[:i], p[i:]
	}
	return p, query, fragment
}
