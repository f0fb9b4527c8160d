package inline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Markup parses text into a navigable Document.
type Markup interface {
	Parse(src string) (Document, error)
}

// Document is a parsed markup tree. Rewriting only changes attribute values;
// node identity and order are preserved.
type Document interface {
	// QueryAll returns every element with the given tag name in document order.
	QueryAll(tag string) []Element
	// Render serializes the tree back to text.
	Render() (string, error)
}

// Element is a single node of a Document.
type Element interface {
	Attr(name string) (string, bool)
	SetAttr(name, value string)
}

// HTMLMarkup is the Markup backed by golang.org/x/net/html.
// Input whose tokens include a doctype or an explicit <html>, <head> or
// <body> start tag is parsed and rendered as a full document, comments
// before the doctype included. Tags inside comments or script text do not
// count. Anything else is parsed as a body fragment and rendered without
// the implied <html><head><body> wrapper. A leading UTF-8 BOM is kept.
type HTMLMarkup struct{}

// Parse implements Markup.
func (HTMLMarkup) Parse(src string) (Document, error) {
	bom := ""
	if rest, ok := strings.CutPrefix(src, "\ufeff"); ok {
		bom, src = "\ufeff", rest
	}
	root, fragment, err := parseHTML(src)
	if err != nil {
		return nil, err
	}
	return &htmlDocument{root: root, fragment: fragment, prefix: bom}, nil
}

func parseHTML(content string) (*html.Node, bool, error) {
	if hasDocumentStructure(content) {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// hasDocumentStructure reports whether content spells out a doctype or an
// <html>, <head> or <body> start tag.
func hasDocumentStructure(content string) bool {
	z := html.NewTokenizer(strings.NewReader(content))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.DoctypeToken:
			return true
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Html, atom.Head, atom.Body:
				return true
			}
		}
	}
}

type htmlDocument struct {
	root     *html.Node
	fragment bool
	prefix   string
}

func (d *htmlDocument) QueryAll(tag string) []Element {
	tag = strings.ToLower(tag)

	var out []Element
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, &htmlElement{node: n})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return out
}

func (d *htmlDocument) Render() (string, error) {
	var buf strings.Builder
	buf.WriteString(d.prefix)

	if d.fragment {
		for c := d.root.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, d.root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type htmlElement struct {
	node *html.Node
}

func (e *htmlElement) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

func (e *htmlElement) SetAttr(name, value string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: strings.ToLower(name), Val: value})
}
