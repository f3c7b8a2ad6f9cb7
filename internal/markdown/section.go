package markdown

import "github.com/tesh254/labnote/internal/dom"

// markerTexts are the heading texts that introduce the questions of an
// assignment. Matching is exact: no trimming, case-sensitive.
var markerTexts = map[string]bool{
	"Turn In":   true,
	"Questions": true,
}

// IsQuestionMarker reports whether el is an h1 with a direct text child
// equal to one of the marker texts.
func IsQuestionMarker(el *dom.Element) bool {
	if !el.Is(dom.TagHeading1) {
		return false
	}
	for _, child := range el.Children {
		if text, ok := child.(dom.Text); ok && markerTexts[string(text)] {
			return true
		}
	}
	return false
}

// LocateQuestionsList scans top-level children in order and returns the
// first ordered list that follows a marker heading. Other siblings between
// the marker and the list are skipped. It returns nil when no ordered list
// follows any marker.
func LocateQuestionsList(children []dom.Node) *dom.Element {
	armed := false
	for _, child := range children {
		el, ok := child.(*dom.Element)
		if !ok || el == nil {
			continue
		}
		if IsQuestionMarker(el) {
			armed = true
			continue
		}
		if armed && el.Is(dom.TagOrderedList) {
			return el
		}
	}
	return nil
}
