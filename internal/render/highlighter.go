package render

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Mark is the slice of a Highlight the applier needs: the verbatim text to
// find and the attributes to stamp on the wrapper element.
type Mark struct {
	ID    string
	Text  string
	Color string
}

// ApplyHighlights wraps each mark's first occurrence in the content with a
// <mark> element carrying the highlight id and color as data attributes.
// The content is parsed into a node tree, matched against text nodes in
// document order, mutated, and serialized once, so existing tags are never
// corrupted. Returns the annotated HTML and the ids of the marks that were
// actually applied; marks whose text is absent (stale highlights) or spans a
// tag boundary are skipped silently.
func ApplyHighlights(content string, marks []Mark) (string, []string) {
	if content == "" || len(marks) == 0 {
		return content, nil
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return content, nil
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}

	var applied []string
	for _, m := range marks {
		if m.Text == "" {
			continue
		}
		if wrapFirstOccurrence(body, m) {
			applied = append(applied, m.ID)
		}
	}

	var buf bytes.Buffer
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return content, nil
		}
	}
	return buf.String(), applied
}

// wrapFirstOccurrence walks text nodes in document order and wraps the first
// occurrence of m.Text that is not already inside a mark element. Matching is
// per text node; text that crosses element boundaries never matches.
func wrapFirstOccurrence(root *html.Node, m Mark) bool {
	var walk func(n *html.Node, inMark bool) bool
	walk = func(n *html.Node, inMark bool) bool {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Mark:
				inMark = true
			case atom.Script, atom.Style:
				return false
			}
		}
		if n.Type == html.TextNode && !inMark {
			if idx := strings.Index(n.Data, m.Text); idx >= 0 {
				wrapTextRange(n, idx, len(m.Text), m)
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c, inMark) {
				return true
			}
		}
		return false
	}
	return walk(root, false)
}

// wrapTextRange splits a text node around [idx, idx+length) and replaces the
// middle with a mark element. The caller stops walking immediately after, so
// mutating the sibling list here is safe.
func wrapTextRange(text *html.Node, idx, length int, m Mark) {
	parent := text.Parent
	before := text.Data[:idx]
	match := text.Data[idx : idx+length]
	after := text.Data[idx+length:]

	wrapper := &html.Node{
		Type:     html.ElementNode,
		Data:     "mark",
		DataAtom: atom.Mark,
		Attr: []html.Attribute{
			{Key: "class", Val: "reader-highlight"},
			{Key: "data-highlight-id", Val: m.ID},
			{Key: "data-color", Val: m.Color},
		},
	}
	wrapper.AppendChild(&html.Node{Type: html.TextNode, Data: match})

	if before != "" {
		parent.InsertBefore(&html.Node{Type: html.TextNode, Data: before}, text)
	}
	parent.InsertBefore(wrapper, text)
	if after != "" {
		parent.InsertBefore(&html.Node{Type: html.TextNode, Data: after}, text)
	}
	parent.RemoveChild(text)
}
