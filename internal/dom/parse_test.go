package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString_TopLevelChildren(t *testing.T) {
	doc, err := ParseString(`
<h1>Questions</h1>
<p>Answer these.</p>
<ol>
  <li>What is <code>x=1</code>?</li>
</ol>`)
	require.NoError(t, err)
	require.Len(t, doc.Children, 3)

	h1, ok := doc.Children[0].(*Element)
	require.True(t, ok)
	assert.Equal(t, TagHeading1, h1.Tag)
	assert.Equal(t, []Node{Text("Questions")}, h1.Children)

	ol, ok := doc.Children[2].(*Element)
	require.True(t, ok)
	assert.Equal(t, TagOrderedList, ol.Tag)
	require.Len(t, ol.Children, 1, "whitespace between list items is dropped")

	li := ol.Children[0].(*Element)
	assert.Equal(t, TagListItem, li.Tag)
	require.Len(t, li.Children, 3)
	assert.Equal(t, Text("What is "), li.Children[0])
	code := li.Children[1].(*Element)
	assert.Equal(t, TagCode, code.Tag)
	assert.Equal(t, "x=1", code.Text())
	assert.Equal(t, Text("?"), li.Children[2])
}

func TestParseString_UnknownTagsKeepTheirName(t *testing.T) {
	doc, err := ParseString(`<table><tr><td>cell</td></tr></table><!-- note -->`)
	require.NoError(t, err)
	require.Len(t, doc.Children, 1)

	table := doc.Children[0].(*Element)
	assert.Equal(t, TagOther, table.Tag)
	assert.Equal(t, "table", table.Name)
	assert.Equal(t, "cell", table.Text())
}

func TestParseString_Empty(t *testing.T) {
	doc, err := ParseString("")
	require.NoError(t, err)
	assert.Empty(t, doc.Children)
}

func TestLookupTag(t *testing.T) {
	cases := []struct {
		name string
		tag  Tag
	}{
		{"h1", TagHeading1},
		{"OL", TagOrderedList},
		{"ul", TagUnorderedList},
		{"li", TagListItem},
		{"p", TagParagraph},
		{"em", TagEmphasis},
		{"code", TagCode},
		{"h2", TagOther},
		{"strong", TagOther},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.tag, LookupTag(c.name))
		})
	}
}

func TestElementText_Nested(t *testing.T) {
	el := NewElement(TagListItem,
		Text("a "),
		NewElement(TagEmphasis, Text("b")),
		NewElement(TagParagraph, Text(" c"), NewElement(TagCode, Text("d"))),
	)
	assert.Equal(t, "a b cd", el.Text())

	var nilEl *Element
	assert.Equal(t, "", nilEl.Text())
	assert.False(t, nilEl.Is(TagListItem))
}
