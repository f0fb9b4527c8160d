package inline

import (
	"context"
	"path"
	"regexp"

	"github.com/dmitrymomot/nohost/pkg/datauri"
)

// cssURLPattern matches url(...) tokens. Group 1 is the reference without
// surrounding quotes or whitespace.
var cssURLPattern = regexp.MustCompile(`url\(\s*['"]?([^'"()]+?)['"]?\s*\)`)

// Replacement pairs a url() reference with the data URI replacing it.
type Replacement struct {
	Ref      string
	Embedded string
}

// Stylesheet returns css with every inlineable url() reference replaced by a
// data URI. References resolve against the directory containing cssPath.
// If any reference cannot be fetched a *StylesheetError is returned and no
// substitution is made.
func (r *Rewriter) Stylesheet(ctx context.Context, css, cssPath string) (string, error) {
	refs := scanStylesheet(css)
	if len(refs) == 0 {
		return css, nil
	}

	dir := path.Dir(path.Join("/", cssPath))
	paths := make([]string, len(refs))
	for i, ref := range refs {
		paths[i] = Resolve(dir, ref)
	}

	load, cancel := r.loader(ctx, paths, r.read)
	defer cancel()

	replacements := make([]Replacement, 0, len(refs))
	for i, ref := range refs {
		data, err := load(i)
		if err != nil {
			return "", &StylesheetError{Stylesheet: cssPath, Ref: ref, Err: err}
		}
		replacements = append(replacements, Replacement{
			Ref:      ref,
			Embedded: datauri.Encode(data, datauri.MIMEFromExt(path.Ext(paths[i]))),
		})
	}

	return applyReplacements(css, replacements), nil
}

// scanStylesheet collects inlineable url() references in first-seen order.
// Repeated references appear once.
func scanStylesheet(css string) []string {
	var refs []string
	seen := make(map[string]bool)

	for _, m := range cssURLPattern.FindAllStringSubmatch(css, -1) {
		ref := m[1]
		if !IsInlineable(ref) || seen[ref] {
			continue
		}
		seen[ref] = true
		refs = append(refs, ref)
	}
	return refs
}

// applyReplacements rewrites the reference inside each matching url() token.
// Text outside url() tokens is never touched, so a reference that is a
// substring of another, or that also appears in a comment or selector, is not
// mis-substituted.
func applyReplacements(css string, replacements []Replacement) string {
	embedded := make(map[string]string, len(replacements))
	for _, rep := range replacements {
		if _, ok := embedded[rep.Ref]; !ok {
			embedded[rep.Ref] = rep.Embedded
		}
	}

	return cssURLPattern.ReplaceAllStringFunc(css, func(token string) string {
		m := cssURLPattern.FindStringSubmatchIndex(token)
		if m == nil {
			return token
		}
		uri, ok := embedded[token[m[2]:m[3]]]
		if !ok {
			return token
		}
		return token[:m[2]] + uri + token[m[3]:]
	})
}
