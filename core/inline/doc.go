// Package inline turns an HTML document stored in a virtual filesystem into a
// self-contained document. Stylesheets, scripts, images and frames referenced
// by relative URLs are fetched from a storage.Source and replaced with data
// URIs; url(...) references inside linked stylesheets are embedded the same
// way. Anchors are rewritten to query links ("?/dir/page.html") so that
// following them re-enters the server instead of being embedded.
//
// # Usage
//
//	rw := inline.New(store,
//		inline.WithLogger(log),
//		inline.WithConcurrency(4),
//	)
//
//	out := rw.Document(ctx, htmlText, "/site/index.html")
//
// Document never fails. Missing or unreadable references are left as-is
// and reported to the logger; so is a stylesheet link whose own url()
// resources cannot all be fetched.
//
// # Processing order
//
// Elements are rewritten in fixed stages: anchors, stylesheet links, images,
// scripts, iframes. Within a stage elements are visited in document order and
// each one is fully resolved before the next substitution is applied. With
// WithConcurrency(n), up to n reads run ahead in the background but results
// are still applied in document order, so the output is identical to the
// sequential run.
//
// # Reference policy
//
// Classify decides which URLs are local. Absolute URLs ("https://..."),
// protocol-relative URLs ("//cdn...") and data URIs are skipped everywhere,
// both in HTML attributes and in CSS url() tokens.
//
// # Stylesheets
//
// Stylesheet inlining is all-or-nothing. Every url() reference is fetched
// first; only when all fetches succeed are the tokens rewritten. Nested
// references resolve against the stylesheet's own directory. @import rules
// are not followed.
package inline
