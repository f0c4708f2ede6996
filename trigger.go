package pagebar

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/samber/lo"
)

// Attrs are element attributes to spread onto a rendered node. An attribute
// with an empty value is a boolean attribute that is present.
type Attrs map[string]string

// Names returns the attribute names in lexical order.
func (a Attrs) Names() []string {
	names := lo.Keys(a)
	slices.Sort(names)

	return names
}

// Has reports whether the attribute is present.
func (a Attrs) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Props is what a host binds to one rendered element.
type Props struct {
	Attrs     Attrs
	OnClick   func()
	OnKeyDown func(KeyEvent)
}

// PageTrigger is the element that selects one page.
type PageTrigger struct {
	id    string
	value int
	root  *Root
	el    Element
}

// Bind attaches the rendered element of the trigger.
func (t *PageTrigger) Bind(el Element) {
	t.el = el
}

// Unbind detaches the rendered element.
func (t *PageTrigger) Unbind() {
	t.el = nil
}

func (t *PageTrigger) Value() int {
	return t.value
}

// Selected reports whether the trigger's page is the current page.
func (t *PageTrigger) Selected() bool {
	return t.value == t.root.Page()
}

// Click selects the trigger's page.
func (t *PageTrigger) Click() {
	t.root.SetPage(t.value)
}

// KeyDown runs keyboard navigation from this trigger.
func (t *PageTrigger) KeyDown(e KeyEvent) {
	t.root.HandleKeyDown(e, t.el)
}

func (t *PageTrigger) Props() Props {
	attrs := Attrs{
		"id":         t.id,
		"aria-label": fmt.Sprintf("Page %d", t.value),
		"data-value": strconv.Itoa(t.value),
		pageAttr:     "",
	}
	if t.Selected() {
		attrs["data-selected"] = ""
	}

	return Props{
		Attrs:     attrs,
		OnClick:   t.Click,
		OnKeyDown: t.KeyDown,
	}
}

// Button is the previous or next page button.
type Button struct {
	id   string
	kind ButtonKind
	root *Root
	el   Element
}

// Bind attaches the rendered element of the button.
func (b *Button) Bind(el Element) {
	b.el = el
}

// Unbind detaches the rendered element.
func (b *Button) Unbind() {
	b.el = nil
}

func (b *Button) Kind() ButtonKind {
	return b.kind
}

// Click moves one page in the button's direction.
func (b *Button) Click() {
	if b.kind == ButtonPrev {
		b.root.PrevPage()
		return
	}

	b.root.NextPage()
}

// KeyDown runs keyboard navigation from this button.
func (b *Button) KeyDown(e KeyEvent) {
	b.root.HandleKeyDown(e, b.el)
}

func (b *Button) Props() Props {
	attrs := Attrs{
		"id": b.id,
	}
	attrs[lo.Ternary(b.kind == ButtonPrev, prevAttr, nextAttr)] = ""

	return Props{
		Attrs:     attrs,
		OnClick:   b.Click,
		OnKeyDown: b.KeyDown,
	}
}
