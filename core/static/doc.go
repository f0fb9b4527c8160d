// Package static implements the presentation handlers of the server. Every
// handler reads the requested storage path from ctx.Path():
//
//   - NotFound renders the 404 page.
//   - File echoes raw bytes with a MIME type inferred from the extension.
//   - Dir renders an Apache-style index of a directory.
//   - Image wraps an image in a synthetic page and inlines it.
//   - HTML reads a document and inlines its resources.
//   - Markdown renders Markdown to HTML, then inlines it like HTML.
//
// Handlers never return errors for missing content; they answer with the
// 404 page and log the cause.
package static
