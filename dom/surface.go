package dom

import (
	"golang.org/x/net/html"

	"github.com/Alp4ka/pagebar"
)

const (
	rootAttr = "data-pagination-root"
	pageAttr = "data-pagination-page"
)

func buttonAttr(kind pagebar.ButtonKind) string {
	return "data-pagination-" + string(kind)
}

// Surface is the pagination subtree of a Document. Every query walks the
// current tree, so edits to the document show up on the next key event.
type Surface struct {
	doc  *Document
	root *html.Node
}

// Root returns the pagination root element.
func (s *Surface) Root() *Element {
	return s.doc.element(s.root)
}

// PageTriggers - implements pagebar.Surface.
func (s *Surface) PageTriggers() []pagebar.Element {
	nodes := findAll(s.root, func(n *html.Node) bool {
		_, ok := attr(n, pageAttr)
		return ok
	})

	ret := make([]pagebar.Element, 0, len(nodes))
	for _, n := range nodes {
		ret = append(ret, s.doc.element(n))
	}

	return ret
}

// Button - implements pagebar.Surface.
func (s *Surface) Button(kind pagebar.ButtonKind) pagebar.Element {
	name := buttonAttr(kind)
	nodes := findAll(s.root, func(n *html.Node) bool {
		_, ok := attr(n, name)
		return ok
	})
	if len(nodes) == 0 {
		return nil
	}

	return s.doc.element(nodes[0])
}

// Direction - implements pagebar.Surface.
func (s *Surface) Direction() pagebar.TextDirection {
	return ElementDirection(s.root)
}

var _ pagebar.Surface = (*Surface)(nil)
