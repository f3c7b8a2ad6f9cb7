package markdown

import (
	"log/slog"
	"strings"

	"github.com/tesh254/labnote/internal/dom"
)

const questionsHeading = "## Questions"

// ParseQuestions writes the questions section for list, the ordered list
// found after a marker heading. Each direct list item is rendered as a
// top-level numbered question followed by a blank line.
func (r *Renderer) ParseQuestions(b *strings.Builder, list *dom.Element) {
	b.WriteString(questionsHeading)

	ctx := NewOrdered()
	for _, child := range list.Children {
		item, ok := child.(*dom.Element)
		if !ok || !item.Is(dom.TagListItem) {
			r.skip(child, ctx, "ignoring non list item in questions list")
			continue
		}
		r.renderItem(b, item, ctx)
		b.WriteByte('\n')
		ctx = ctx.Next()
	}
}

func (r *Renderer) renderItem(b *strings.Builder, item *dom.Element, ctx ListContext) {
	b.WriteString(ctx.Prefix())
	r.renderChildren(b, item.Children, ctx)
}

// renderList renders the children of a nested list. Numbering advances here,
// between sibling items, never inside an item's subtree.
func (r *Renderer) renderList(b *strings.Builder, list *dom.Element, ctx ListContext) {
	for _, child := range list.Children {
		if item, ok := child.(*dom.Element); ok && item.Is(dom.TagListItem) {
			r.renderItem(b, item, ctx)
			ctx = ctx.Next()
			continue
		}
		r.renderNode(b, child, ctx)
	}
}

func (r *Renderer) renderChildren(b *strings.Builder, children []dom.Node, ctx ListContext) {
	for _, child := range children {
		r.renderNode(b, child, ctx)
	}
}

func (r *Renderer) renderNode(b *strings.Builder, node dom.Node, ctx ListContext) {
	switch n := node.(type) {
	case dom.Text:
		b.WriteString(string(n))
	case *dom.Element:
		if n == nil {
			r.skip(node, ctx, "skipping malformed node")
			return
		}
		r.renderElement(b, n, ctx)
	default:
		r.skip(node, ctx, "skipping malformed node")
	}
}

func (r *Renderer) renderElement(b *strings.Builder, el *dom.Element, ctx ListContext) {
	switch el.Tag {
	case dom.TagListItem:
		r.renderItem(b, el, ctx)
	case dom.TagParagraph:
		r.renderChildren(b, el.Children, ctx)
	case dom.TagCode:
		b.WriteString(" `")
		r.renderChildren(b, el.Children, ctx)
		b.WriteString("` ")
	case dom.TagEmphasis:
		b.WriteString(" _")
		r.renderChildren(b, el.Children, ctx)
		b.WriteString("_ ")
	case dom.TagUnorderedList:
		r.renderList(b, el, ctx.Nested(Unordered))
	case dom.TagOrderedList:
		r.renderList(b, el, ctx.Nested(Ordered))
	default:
		r.skip(el, ctx, "unhandled html element")
	}
}

func (r *Renderer) skip(node dom.Node, ctx ListContext, msg string) {
	attrs := []any{slog.Int("indent", ctx.Indent)}
	switch n := node.(type) {
	case *dom.Element:
		if n != nil {
			attrs = append(attrs,
				slog.String("tag", n.Name),
				slog.Int("children", len(n.Children)),
				slog.String("text", n.Text()),
			)
		}
	case dom.Text:
		attrs = append(attrs, slog.String("text", string(n)))
	}
	if node == nil {
		attrs = append(attrs, slog.String("node", "nil"))
	}
	r.logger.Warn(msg, attrs...)
}
