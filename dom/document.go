// Package dom hosts a pagination bar inside a parsed HTML tree.
//
// A Document wraps a golang.org/x/net/html node tree and tracks which element
// has input focus. Surface adapts the subtree under a pagination root element
// to pagebar.Surface, so a pagebar.Root can run keyboard navigation against
// server-rendered markup.
package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/Alp4ka/pagebar"
)

// Document is a parsed HTML tree with a focus cursor. It is not safe for
// concurrent use.
type Document struct {
	root     *html.Node
	elements map[*html.Node]*Element
	focused  *Element
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html document: %w", err)
	}

	return NewDocument(node), nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// NewDocument wraps an already parsed tree.
func NewDocument(root *html.Node) *Document {
	return &Document{
		root:     root,
		elements: make(map[*html.Node]*Element),
	}
}

// element returns the one Element for n, so that focus order lookups can
// compare elements by identity.
func (d *Document) element(n *html.Node) *Element {
	if el, ok := d.elements[n]; ok {
		return el
	}

	el := &Element{doc: d, node: n}
	d.elements[n] = el

	return el
}

// ElementByID returns the first element with the given id, or nil.
func (d *Document) ElementByID(id string) *Element {
	n := findFirst(d.root, func(n *html.Node) bool {
		v, ok := attr(n, "id")
		return ok && v == id
	})
	if n == nil {
		return nil
	}

	return d.element(n)
}

// Focused returns the element holding input focus, or nil.
func (d *Document) Focused() *Element {
	return d.focused
}

// Blur clears input focus.
func (d *Document) Blur() {
	d.focused = nil
}

// Surface returns the pagination surface rooted at the element with rootID.
// The element must carry the data-pagination-root attribute.
func (d *Document) Surface(rootID string) (*Surface, error) {
	el := d.ElementByID(rootID)
	if el == nil {
		return nil, fmt.Errorf("pagination root '%s' not found", rootID)
	}
	if _, ok := attr(el.node, rootAttr); !ok {
		return nil, fmt.Errorf("element '%s' is not a pagination root", rootID)
	}

	return &Surface{doc: d, root: el.node}, nil
}

// Mount binds root to its rendered element, looked up by root.ID().
func (d *Document) Mount(root *pagebar.Root) error {
	surface, err := d.Surface(root.ID())
	if err != nil {
		return fmt.Errorf("cannot mount pagination: %w", err)
	}
	root.Bind(surface)

	return nil
}

// KeyDown delivers a key-down event for key to the focused element and
// returns the event, so callers can see whether the default was prevented.
func (d *Document) KeyDown(root *pagebar.Root, key string) *pagebar.KeyboardEvent {
	e := pagebar.NewKeyboardEvent(key)
	if d.focused != nil {
		root.HandleKeyDown(e, d.focused)
	}

	return e
}

// Element is an element node of a Document.
type Element struct {
	doc  *Document
	node *html.Node
}

// Focus - implements pagebar.Element.
func (e *Element) Focus() {
	e.doc.focused = e
}

// ID returns the id attribute.
func (e *Element) ID() string {
	v, _ := attr(e.node, "id")
	return v
}

// Attr returns an attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	return attr(e.node, name)
}

// Node returns the underlying html node.
func (e *Element) Node() *html.Node {
	return e.node
}

var _ pagebar.Element = (*Element)(nil)

func attr(n *html.Node, name string) (string, bool) {
	if n == nil || n.Type != html.ElementNode {
		return "", false
	}

	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}

	return "", false
}

// findFirst returns the first node in document order under n (inclusive)
// matching fn.
func findFirst(n *html.Node, fn func(*html.Node) bool) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && fn(n) {
		return n
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, fn); found != nil {
			return found
		}
	}

	return nil
}

// findAll collects the descendants of n (exclusive) matching fn in document
// order.
func findAll(n *html.Node, fn func(*html.Node) bool) []*html.Node {
	var ret []*html.Node

	var walk func(*html.Node)
	walk = func(p *html.Node) {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && fn(c) {
				ret = append(ret, c)
			}
			walk(c)
		}
	}
	walk(n)

	return ret
}
