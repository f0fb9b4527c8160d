package pages

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Signature is the server name in page footers.
const Signature = "NoHost/0.0.1 (Web)"

// Render renders c into a string.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// writer accumulates the first write error so page bodies read linearly.
type writer struct {
	w   io.Writer
	err error
}

// raw writes trusted markup.
func (w *writer) raw(parts ...string) {
	for _, p := range parts {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.w, p)
	}
}

// text writes escaped text.
func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

// NotFound is the Apache-style 404 page for url.
func NotFound(url string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<!DOCTYPE html><html><head><title>404 Not Found</title></head><body>`,
			`<h1>Not Found</h1><p>The requested URL `)
		w.text(url)
		w.raw(` was not found on this server.</p><hr><address>`, Signature, ` Server</address></body></html>`)
		return w.err
	})
}

const imageStyle = `@media not print {` +
	` body { margin: 0; }` +
	` img { text-align: center; position: absolute; margin: auto; top: 0; right: 0; bottom: 0; left: 0; }` +
	` }` +
	` img { image-orientation: from-image; }`

// ImageDocument is a page showing the image at path centered on an empty
// background. The img src is path itself, for the inliner to embed.
func ImageDocument(path string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<!DOCTYPE html><html><head><title>`)
		w.text(path)
		w.raw(`</title><style>`, imageStyle, `</style></head><body><img src="`)
		w.text(path)
		w.raw(`"></body></html>`)
		return w.err
	})
}

// MarkdownDocument wraps already rendered Markdown body HTML into a page.
func MarkdownDocument(title, body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<!DOCTYPE html><html><head><meta charset="utf-8"><title>`)
		w.text(title)
		w.raw(`</title></head><body>`, body, `</body></html>`)
		return w.err
	})
}
