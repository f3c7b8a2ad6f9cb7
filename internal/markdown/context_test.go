package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListContext_Prefix(t *testing.T) {
	cases := []struct {
		name   string
		ctx    ListContext
		prefix string
	}{
		{"top level ordered", NewOrdered(), "\n1. "},
		{"top level ordered later item", ListContext{Kind: Ordered, Counter: 12}, "\n12. "},
		{"nested ordered", ListContext{Kind: Ordered, Indent: 2, Counter: 3}, "\n        3. "},
		{"top level unordered", ListContext{Kind: Unordered}, "\n- "},
		{"nested unordered", ListContext{Kind: Unordered, Indent: 1}, "\n    - "},
		{"unordered ignores counter", ListContext{Kind: Unordered, Indent: 1, Counter: 7}, "\n    - "},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.prefix, c.ctx.Prefix())
		})
	}
}

func TestListContext_Next(t *testing.T) {
	ordered := ListContext{Kind: Ordered, Indent: 1, Counter: 4}
	assert.Equal(t, ListContext{Kind: Ordered, Indent: 1, Counter: 5}, ordered.Next())
	assert.Equal(t, 4, ordered.Counter, "Next does not modify the receiver")

	unordered := ListContext{Kind: Unordered, Indent: 2}
	assert.Equal(t, unordered, unordered.Next())
}

func TestListContext_Nested(t *testing.T) {
	outer := ListContext{Kind: Ordered, Indent: 0, Counter: 5}

	assert.Equal(t, ListContext{Kind: Ordered, Indent: 1, Counter: 1}, outer.Nested(Ordered))
	assert.Equal(t, ListContext{Kind: Unordered, Indent: 1}, outer.Nested(Unordered))
	assert.Equal(t, ListContext{Kind: Ordered, Indent: 2, Counter: 1}, outer.Nested(Unordered).Nested(Ordered))
}
