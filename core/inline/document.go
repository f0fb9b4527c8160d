package inline

import (
	"context"
	"errors"
	"log/slog"
	"path"

	"github.com/dmitrymomot/nohost/core/logger"
	"github.com/dmitrymomot/nohost/pkg/datauri"
)

const (
	stylesheetMIME = "text/css"
	scriptMIME     = "text/javascript"
)

// stage rewrites one category of referencing elements.
type stage func(ctx context.Context, doc Document, dir string)

// Document returns html with every inlineable reference embedded.
// docPath is the storage path of the document; references resolve against
// its directory. The result is always a usable document: if html cannot be
// parsed it is returned unchanged.
func (r *Rewriter) Document(ctx context.Context, html, docPath string) string {
	doc, err := r.markup.Parse(html)
	if err != nil {
		r.logger.WarnContext(ctx, "failed to parse document",
			logger.Component("inline"),
			logger.Path(docPath),
			logger.Error(err),
		)
		return html
	}

	dir := path.Dir(path.Join("/", docPath))

	for _, run := range r.stages() {
		run(ctx, doc, dir)
	}

	out, err := doc.Render()
	if err != nil {
		r.logger.WarnContext(ctx, "failed to render document",
			logger.Component("inline"),
			logger.Path(docPath),
			logger.Error(err),
		)
		return html
	}
	return out
}

// stages returns the traversal categories in processing order.
func (r *Rewriter) stages() []stage {
	return []stage{
		r.rewriteAnchors,
		r.rewriteLinks,
		r.elementStage("images", "img", "src", ""),
		r.elementStage("scripts", "script", "src", scriptMIME),
		r.elementStage("iframes", "iframe", "src", ""),
	}
}

// rewriteAnchors points relative anchors back at the server. It never
// consults storage.
func (r *Rewriter) rewriteAnchors(_ context.Context, doc Document, dir string) {
	for _, el := range doc.QueryAll("a") {
		href, ok := el.Attr("href")
		if !ok || !IsInlineable(href) {
			continue
		}
		el.SetAttr("href", AnchorHref(dir, href))
	}
}

// target is an element whose attribute qualified for inlining.
type target struct {
	el   Element
	ref  string
	path string
}

func collectTargets(doc Document, tag, attr, dir string) []target {
	var targets []target
	for _, el := range doc.QueryAll(tag) {
		ref, ok := el.Attr(attr)
		if !ok || !IsInlineable(ref) {
			continue
		}
		targets = append(targets, target{el: el, ref: ref, path: Resolve(dir, ref)})
	}
	return targets
}

func targetPaths(targets []target) []string {
	paths := make([]string, len(targets))
	for i, t := range targets {
		paths[i] = t.path
	}
	return paths
}

// rewriteLinks embeds linked stylesheets after inlining their own url()
// references. A stylesheet that cannot be fully inlined keeps its href.
func (r *Rewriter) rewriteLinks(ctx context.Context, doc Document, dir string) {
	targets := collectTargets(doc, "link", "href", dir)
	if len(targets) == 0 {
		return
	}

	load, cancel := r.loader(ctx, targetPaths(targets), r.readExisting)
	defer cancel()

	for i, t := range targets {
		data, err := load(i)
		if err != nil {
			r.skipped(ctx, "links", t, err)
			continue
		}

		css, err := r.Stylesheet(ctx, string(data), t.path)
		if err != nil {
			r.skipped(ctx, "links", t, err)
			continue
		}

		t.el.SetAttr("href", datauri.Encode([]byte(css), stylesheetMIME))
	}
}

// elementStage builds the uniform rewriting routine for tag[attr].
// An empty mime means the type is inferred from the resolved path.
func (r *Rewriter) elementStage(name, tag, attr, mime string) stage {
	return func(ctx context.Context, doc Document, dir string) {
		targets := collectTargets(doc, tag, attr, dir)
		if len(targets) == 0 {
			return
		}

		load, cancel := r.loader(ctx, targetPaths(targets), r.readExisting)
		defer cancel()

		for i, t := range targets {
			data, err := load(i)
			if err != nil {
				r.skipped(ctx, name, t, err)
				continue
			}

			typ := mime
			if typ == "" {
				typ = datauri.MIMEFromExt(path.Ext(t.path))
			}
			t.el.SetAttr(attr, datauri.Encode(data, typ))
		}
	}
}

// skipped reports a reference that was left as-is. Missing resources are
// expected and only logged at debug level.
func (r *Rewriter) skipped(ctx context.Context, stageName string, t target, err error) {
	level := slog.LevelWarn
	if errors.Is(err, ErrMissingResource) {
		level = slog.LevelDebug
	}

	r.logger.LogAttrs(ctx, level, "reference left unresolved",
		logger.Component("inline"),
		logger.Stage(stageName),
		logger.Ref(t.ref),
		logger.Path(t.path),
		logger.Error(err),
	)
}
