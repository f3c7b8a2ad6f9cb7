package markdown

import (
	"strconv"
	"strings"
)

// indentUnit is one level of list nesting.
const indentUnit = "    "

// ListKind is the kind of list a ListContext renders items for.
type ListKind int

const (
	Ordered ListKind = iota
	Unordered
)

func (k ListKind) String() string {
	if k == Ordered {
		return "ordered"
	}
	return "unordered"
}

// ListContext is the state needed to prefix one list item. It is passed by
// value through the recursion so sibling and nested lists never share a
// counter.
type ListContext struct {
	Kind ListKind
	// Indent is the nesting depth, 0 for the outermost list.
	Indent int
	// Counter is the next item number. Only meaningful for Ordered.
	Counter int
}

// NewOrdered returns the context for the first item of a top-level ordered list.
func NewOrdered() ListContext {
	return ListContext{Kind: Ordered, Indent: 0, Counter: 1}
}

// Prefix returns the text emitted before a list item's content. Every item
// starts on a new line: "\n" + indentation + "N. " or "- ".
func (c ListContext) Prefix() string {
	var b strings.Builder
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(indentUnit, c.Indent))
	if c.Kind == Ordered {
		b.WriteString(strconv.Itoa(c.Counter))
		b.WriteString(". ")
	} else {
		b.WriteString("- ")
	}
	return b.String()
}

// Next returns the context for the following sibling item.
func (c ListContext) Next() ListContext {
	if c.Kind == Ordered {
		c.Counter++
	}
	return c
}

// Nested returns the context for a list one level deeper. Ordered lists
// restart at 1.
func (c ListContext) Nested(kind ListKind) ListContext {
	next := ListContext{Kind: kind, Indent: c.Indent + 1}
	if kind == Ordered {
		next.Counter = 1
	}
	return next
}
