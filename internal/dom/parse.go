package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse reads an HTML fragment or document and returns the contents of its
// body as a Document. Fragments are wrapped in html/head/body by the HTML
// parser, so a bare "<h1>..</h1><ol>..</ol>" ends up with both elements as
// top-level children.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse body: %w", err)
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return &Document{}, nil
	}

	var children []Node
	for c := body.Get(0).FirstChild; c != nil; c = c.NextSibling {
		if n := FromHTML(c); n != nil {
			children = append(children, n)
		}
	}
	return &Document{Children: children}, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// FromHTML converts a parsed HTML node and its subtree. It returns nil for
// nodes that carry no content: comments, doctypes and whitespace-only text.
func FromHTML(n *html.Node) Node {
	if n == nil {
		return nil
	}

	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}
		return Text(n.Data)
	case html.ElementNode:
		el := &Element{Tag: tagFromAtom(n.DataAtom, n.Data), Name: n.Data}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := FromHTML(c); child != nil {
				el.Children = append(el.Children, child)
			}
		}
		return el
	}
	return nil
}

func tagFromAtom(a atom.Atom, name string) Tag {
	switch a {
	case atom.H1:
		return TagHeading1
	case atom.Ol:
		return TagOrderedList
	case atom.Ul:
		return TagUnorderedList
	case atom.Li:
		return TagListItem
	case atom.P:
		return TagParagraph
	case atom.Em:
		return TagEmphasis
	case atom.Code:
		return TagCode
	case 0:
		return LookupTag(name)
	}
	return TagOther
}
