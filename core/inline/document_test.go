package inline_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nohost/core/inline"
	"github.com/dmitrymomot/nohost/core/storage"
	"github.com/dmitrymomot/nohost/pkg/datauri"
)

func TestDocumentImage(t *testing.T) {
	t.Parallel()

	src := storage.NewFS(fstest.MapFS{
		"site/logo.jpg": {Data: []byte{0xFF, 0xD8}},
	})

	out := inline.InlineDocument(context.Background(), src, `<img src="logo.jpg">`, "/site/index.html")
	assert.Contains(t, out, `src="data:image/jpeg;base64,/9g="`)
	assert.NotContains(t, out, `logo.jpg`)
}

func TestDocumentAnchors(t *testing.T) {
	t.Parallel()

	r := inline.New(newFakeSource(nil))
	doc := `<a href="sub/page.html">a</a><a href="https://example.com/">b</a><a href="//cdn.example.com">c</a><a>d</a>`

	out := r.Document(context.Background(), doc, "/docs/index.html")
	assert.Contains(t, out, `<a href="?/docs/sub/page.html">a</a>`)
	assert.Contains(t, out, `<a href="https://example.com/">b</a>`)
	assert.Contains(t, out, `<a href="//cdn.example.com">c</a>`)
	assert.Contains(t, out, `<a>d</a>`)
}

func TestDocumentStylesheet(t *testing.T) {
	t.Parallel()

	src := newFakeSource(map[string]string{
		"/site/css/main.css": `body{background:url(../img/bg.png)}`,
		"/site/img/bg.png":   "PNG",
	})
	r := inline.New(src)

	out := r.Document(context.Background(), `<link rel="stylesheet" href="css/main.css">`, "/site/index.html")

	css := `body{background:url(` + datauri.Encode([]byte("PNG"), "image/png") + `)}`
	assert.Contains(t, out, `href="`+datauri.Encode([]byte(css), "text/css")+`"`)
}

func TestDocumentStylesheetFailureLeavesLink(t *testing.T) {
	t.Parallel()

	src := newFakeSource(map[string]string{
		"/broken.css": `body{background:url(bg.png)}`,
		"/ok.css":     `p{color:red}`,
	})
	src.failing["/bg.png"] = errUnreadable

	var logs bytes.Buffer
	r := inline.New(src, inline.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	out := r.Document(context.Background(), `<link href="broken.css"><link href="ok.css">`, "/index.html")
	assert.Contains(t, out, `<link href="broken.css"/>`)
	assert.Contains(t, out, `href="`+datauri.Encode([]byte(`p{color:red}`), "text/css")+`"`)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "stage=links")
	assert.Contains(t, logs.String(), "ref=broken.css")
}

func TestDocumentMissingIsUnchanged(t *testing.T) {
	t.Parallel()

	r := inline.New(newFakeSource(nil))
	doc := `<link href="none.css"><img src="none.png"><script src="none.js"></script><iframe src="none.html"></iframe>`

	first := r.Document(context.Background(), doc, "/index.html")
	assert.Contains(t, first, `href="none.css"`)
	assert.Contains(t, first, `src="none.png"`)
	assert.Contains(t, first, `src="none.js"`)
	assert.Contains(t, first, `src="none.html"`)

	second := r.Document(context.Background(), first, "/index.html")
	assert.Equal(t, first, second)
}

func TestDocumentSkippedAttributesUnchanged(t *testing.T) {
	t.Parallel()

	src := newFakeSource(map[string]string{"/a.png": "A"})
	r := inline.New(src)

	refs := []string{
		"https://example.com/a.png",
		"//example.com/a.png",
		"data:image/png;base64,QQ==",
	}
	for _, ref := range refs {
		out := r.Document(context.Background(), `<img src="`+ref+`">`, "/index.html")
		assert.Equal(t, `<img src="`+ref+`"/>`, out)
	}
	assert.Empty(t, src.readLog())
}

func TestDocumentScriptAndIframe(t *testing.T) {
	t.Parallel()

	src := newFakeSource(map[string]string{
		"/js/app.mjs":      "console.log(1)",
		"/frames/a.html":   "<p>frame</p>",
		"/frames/logo.svg": "<svg/>",
	})
	r := inline.New(src)

	out := r.Document(context.Background(),
		`<script src="/js/app.mjs"></script><iframe src="frames/a.html"></iframe><img src="frames/logo.svg">`,
		"/index.html")

	assert.Contains(t, out, `src="`+datauri.Encode([]byte("console.log(1)"), "text/javascript")+`"`)
	assert.Contains(t, out, `src="`+datauri.Encode([]byte("<p>frame</p>"), "text/html")+`"`)
	assert.Contains(t, out, `src="`+datauri.Encode([]byte("<svg/>"), "image/svg+xml")+`"`)
}

func TestDocumentReadErrorSkipsElement(t *testing.T) {
	t.Parallel()

	src := newFakeSource(map[string]string{
		"/a.png": "A",
		"/c.png": "C",
	})
	src.failing["/b.png"] = errUnreadable

	var logs bytes.Buffer
	r := inline.New(src, inline.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	out := r.Document(context.Background(), `<img src="a.png"><img src="b.png"><img src="c.png">`, "/index.html")
	assert.Contains(t, out, `src="`+datauri.Encode([]byte("A"), "image/png")+`"`)
	assert.Contains(t, out, `src="b.png"`)
	assert.Contains(t, out, `src="`+datauri.Encode([]byte("C"), "image/png")+`"`)
	assert.Contains(t, logs.String(), "stage=images")
}

func TestDocumentFullDocumentKeepsDoctype(t *testing.T) {
	t.Parallel()

	src := newFakeSource(map[string]string{"/a.png": "A"})
	out := inline.New(src).Document(context.Background(),
		"<!DOCTYPE html><html><head><title>t</title></head><body><img src=\"a.png\"></body></html>",
		"/index.html")

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>t</title>")
	assert.Contains(t, out, datauri.Encode([]byte("A"), "image/png"))
}

func TestDocumentFragmentHasNoWrapper(t *testing.T) {
	t.Parallel()

	out := inline.New(newFakeSource(nil)).Document(context.Background(), `<p>hello</p>`, "/index.html")
	assert.Equal(t, `<p>hello</p>`, out)
}

func TestDocumentStructureIsPreserved(t *testing.T) {
	t.Parallel()

	img := datauri.Encode([]byte("A"), "image/png")

	tests := []struct {
		name     string
		doc      string
		prefix   string
		contains []string
	}{
		{
			name:     "comment before doctype",
			doc:      "<!-- saved from url -->\n<!DOCTYPE html><html lang=\"en\"><head><title>t</title></head><body class=\"x\"><img src=\"a.png\"></body></html>",
			prefix:   "<!-- saved from url -->",
			contains: []string{"<!DOCTYPE html>", `<html lang="en">`, "<head><title>t</title></head>", `<body class="x">`},
		},
		{
			name:     "byte order mark",
			doc:      "\ufeff<!DOCTYPE html><html><head><title>t</title></head><body><img src=\"a.png\"></body></html>",
			prefix:   "\ufeff<!DOCTYPE html>",
			contains: []string{"<head><title>t</title></head>", "<body>"},
		},
		{
			name:     "head and body without html",
			doc:      `<head><title>t</title></head><body class="y"><img src="a.png"></body>`,
			contains: []string{"<head><title>t</title></head>", `<body class="y">`},
		},
		{
			name:     "leading whitespace and uppercase tags",
			doc:      "\n\t<HTML LANG=\"de\"><BODY><img src=\"a.png\"></BODY></HTML>",
			contains: []string{`<html lang="de">`, "<body>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newFakeSource(map[string]string{"/a.png": "A"})
			out := inline.New(src).Document(context.Background(), tt.doc, "/index.html")

			assert.True(t, strings.HasPrefix(out, tt.prefix), "output %q", out)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			assert.Contains(t, out, `src="`+img+`"`)
		})
	}
}

func TestDocumentFragmentIgnoresTagsInScriptAndComments(t *testing.T) {
	t.Parallel()

	doc := `<!-- <body> --><script>document.write("<html>")</script><p>x</p>`
	out := inline.New(newFakeSource(nil)).Document(context.Background(), doc, "/index.html")
	assert.Equal(t, doc, out)
}

func TestDocumentStageOrder(t *testing.T) {
	t.Parallel()

	src := newFakeSource(map[string]string{
		"/f.html": "<p>frame</p>",
		"/s.js":   "alert(1)",
		"/i.png":  "PNG",
		"/c.css":  "p{color:red}",
	})
	doc := `<iframe src="f.html"></iframe><script src="s.js"></script><img src="i.png">` +
		`<link rel="stylesheet" href="c.css"><a href="missing.html">m</a>`

	out := inline.New(src).Document(context.Background(), doc, "/index.html")

	assert.Equal(t, []string{"/c.css", "/i.png", "/s.js", "/f.html"}, src.readLog())
	assert.NotContains(t, src.existsLog(), "/missing.html")
	assert.Contains(t, out, `<a href="?/missing.html">m</a>`)
}

func TestDocumentConcurrentMatchesSequential(t *testing.T) {
	t.Parallel()

	files := make(map[string]string)
	var doc strings.Builder
	for i := range 6 {
		p := fmt.Sprintf("/img/%d.png", i)
		files[p] = fmt.Sprintf("image-%d", i)
		fmt.Fprintf(&doc, `<img src="img/%d.png">`, i)
	}

	src := newFakeSource(files)
	// Earlier images finish last.
	for i := range 6 {
		src.delays[fmt.Sprintf("/img/%d.png", i)] = time.Duration(6-i) * 5 * time.Millisecond
	}

	seq := inline.New(src).Document(context.Background(), doc.String(), "/index.html")
	par := inline.New(src, inline.WithConcurrency(6)).Document(context.Background(), doc.String(), "/index.html")
	assert.Equal(t, seq, par)

	for i := range 6 {
		assert.Contains(t, par, datauri.Encode([]byte(fmt.Sprintf("image-%d", i)), "image/png"))
	}
}

func TestDocumentConcurrencyBound(t *testing.T) {
	t.Parallel()

	files := make(map[string]string)
	var doc strings.Builder
	for i := range 8 {
		p := fmt.Sprintf("/%d.png", i)
		files[p] = "x"
		fmt.Fprintf(&doc, `<img src="%d.png">`, i)
	}

	src := newFakeSource(files)
	for p := range files {
		src.delays[p] = 5 * time.Millisecond
	}

	inline.New(src, inline.WithConcurrency(2)).Document(context.Background(), doc.String(), "/index.html")
	assert.LessOrEqual(t, src.peakReads(), 2)

	seq := newFakeSource(files)
	inline.New(seq).Document(context.Background(), doc.String(), "/index.html")
	assert.Equal(t, 1, seq.peakReads())
}

type failingMarkup struct{ err error }

func (m failingMarkup) Parse(string) (inline.Document, error) { return nil, m.err }

type renderFailMarkup struct{}

func (renderFailMarkup) Parse(src string) (inline.Document, error) {
	doc, err := inline.HTMLMarkup{}.Parse(src)
	if err != nil {
		return nil, err
	}
	return renderFailDocument{doc}, nil
}

type renderFailDocument struct{ inline.Document }

func (renderFailDocument) Render() (string, error) { return "", errors.New("render failed") }

func TestDocumentMarkupFailures(t *testing.T) {
	t.Parallel()

	src := newFakeSource(map[string]string{"/a.png": "A"})
	doc := `<img src="a.png">`

	out := inline.New(src, inline.WithMarkup(failingMarkup{err: errors.New("bad markup")})).
		Document(context.Background(), doc, "/index.html")
	assert.Equal(t, doc, out)

	out = inline.New(src, inline.WithMarkup(renderFailMarkup{})).
		Document(context.Background(), doc, "/index.html")
	assert.Equal(t, doc, out)
}

func TestHTMLMarkupAttributes(t *testing.T) {
	t.Parallel()

	doc, err := inline.HTMLMarkup{}.Parse(`<IMG SRC="a.png"><img>`)
	require.NoError(t, err)

	imgs := doc.QueryAll("img")
	require.Len(t, imgs, 2)

	v, ok := imgs[0].Attr("src")
	assert.True(t, ok)
	assert.Equal(t, "a.png", v)

	_, ok = imgs[1].Attr("src")
	assert.False(t, ok)

	imgs[1].SetAttr("src", "b.png")
	out, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t, `<img src="a.png"/><img src="b.png"/>`, out)
}
