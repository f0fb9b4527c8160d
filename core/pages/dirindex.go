package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// DirIndex is the data behind a directory listing.
type DirIndex struct {
	Path   string
	Parent string // href of the parent directory link
	Rows   []DirRow
}

// DirRow is one listed entry. Modified and Size are preformatted.
type DirRow struct {
	Icon     string
	Alt      string
	Href     string
	Name     string
	Modified string
	Size     string
}

// DirListing is the Apache-style index page for idx.
func DirListing(idx DirIndex) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}

		w.raw(`<!DOCTYPE html><html><head><title>Index of `)
		w.text(idx.Path)
		w.raw(`</title></head><body><h1>Index of `)
		w.text(idx.Path)
		w.raw(`</h1>`,
			`<table><tr><th><img src="icons/blank.png" alt="[ICO]"></th>`,
			`<th><a href="#">Name</a></th><th><a href="#">Last modified</a></th>`,
			`<th><a href="#">Size</a></th><th><a href="#">Description</a></th></tr>`,
			`<tr><th colspan="5"><hr></th></tr>`,
			`<tr><td valign="top"><img src="icons/back.png" alt="[DIR]"></td><td><a href="`)
		w.text(idx.Parent)
		w.raw(`">Parent Directory</a></td><td>&nbsp;</td><td align="right">  - </td><td>&nbsp;</td></tr>`)

		for _, row := range idx.Rows {
			w.raw(`<tr><td valign="top"><img src="`)
			w.text(row.Icon)
			w.raw(`" alt="`)
			w.text(row.Alt)
			w.raw(`"></td><td><a href="`)
			w.text(row.Href)
			w.raw(`">`)
			w.text(row.Name)
			w.raw(`</a></td><td align="right">`)
			w.text(row.Modified)
			w.raw(`  </td><td align="right">`)
			w.text(row.Size)
			w.raw(`</td><td>&nbsp;</td></tr>`)
		}

		w.raw(`<tr><th colspan="5"><hr></th></tr></table><address>`, Signature, `</address></body></html>`)
		return w.err
	})
}
