// Package dom holds the read-only document tree the markdown renderer walks.
//
// A tree is built once from parsed HTML (see Parse and FromHTML) and is
// never mutated afterwards. Each node is either a Text leaf or an Element
// carrying a Tag and an ordered list of children.
package dom

import "strings"

// Tag identifies the element kinds the renderer knows about. Anything
// else is TagOther and keeps its raw name on the Element.
type Tag int

const (
	TagOther Tag = iota
	TagHeading1
	TagOrderedList
	TagUnorderedList
	TagListItem
	TagParagraph
	TagEmphasis
	TagCode
)

var tagNames = map[Tag]string{
	TagHeading1:      "h1",
	TagOrderedList:   "ol",
	TagUnorderedList: "ul",
	TagListItem:      "li",
	TagParagraph:     "p",
	TagEmphasis:      "em",
	TagCode:          "code",
}

// String returns the HTML tag name, or "other" for TagOther.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "other"
}

// LookupTag maps an HTML tag name to a Tag.
func LookupTag(name string) Tag {
	switch strings.ToLower(name) {
	case "h1":
		return TagHeading1
	case "ol":
		return TagOrderedList
	case "ul":
		return TagUnorderedList
	case "li":
		return TagListItem
	case "p":
		return TagParagraph
	case "em":
		return TagEmphasis
	case "code":
		return TagCode
	}
	return TagOther
}

// Node is a Text or an *Element.
type Node interface {
	node()
}

// Text is a leaf holding literal character data.
type Text string

func (Text) node() {}

// Element is a tagged node with ordered children.
type Element struct {
	Tag Tag
	// Name is the raw tag name as parsed, e.g. "table" for a TagOther element.
	Name     string
	Children []Node
}

func (*Element) node() {}

// NewElement builds an element for a known tag.
func NewElement(tag Tag, children ...Node) *Element {
	return &Element{Tag: tag, Name: tag.String(), Children: children}
}

// NewOther builds an element for a tag the renderer does not recognize.
func NewOther(name string, children ...Node) *Element {
	return &Element{Tag: TagOther, Name: name, Children: children}
}

// Is reports whether e is non-nil and carries the given tag.
func (e *Element) Is(tag Tag) bool {
	return e != nil && e.Tag == tag
}

// Text concatenates the text of every descendant leaf in document order.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	var walk func(children []Node)
	walk = func(children []Node) {
		for _, c := range children {
			switch v := c.(type) {
			case Text:
				b.WriteString(string(v))
			case *Element:
				if v != nil {
					walk(v.Children)
				}
			}
		}
	}
	walk(e.Children)
	return b.String()
}

// Document is the root of a parsed description: its top-level children
// are the contents of the HTML body.
type Document struct {
	Children []Node
}
