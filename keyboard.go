package pagebar

import (
	"slices"
)

// FocusOrder returns the focusable elements of the bound surface:
// [prev button] + page triggers in document order + [next button]. Buttons
// that are not rendered are left out. An unbound root has no focus order.
func (r *Root) FocusOrder() []Element {
	surface := r.Surface()
	if surface == nil {
		return nil
	}

	triggers := surface.PageTriggers()
	items := make([]Element, 0, len(triggers)+2)
	if prev := surface.Button(ButtonPrev); prev != nil {
		items = append(items, prev)
	}
	items = append(items, triggers...)
	if next := surface.Button(ButtonNext); next != nil {
		items = append(items, next)
	}

	return items
}

// HandleKeyDown moves focus from node according to the pressed key.
//
// The logical next/prev arrows depend on orientation and text direction;
// Home and End target the first and last element. A recognized key has its
// default action suppressed. With loop enabled, stepping past either end
// wraps around; otherwise focus stays where it is.
//
// Nothing happens when the root has no bound surface, node is nil or not part
// of the focus order, or the key is not a navigation key.
func (r *Root) HandleKeyDown(e KeyEvent, node Element) {
	if e == nil || node == nil || r.Surface() == nil {
		return
	}

	items := r.FocusOrder()
	currentIndex := slices.IndexFunc(items, func(el Element) bool {
		return el == node
	})
	if currentIndex == -1 {
		return
	}

	keys := GetDirectionalKeys(r.surface.Direction(), r.Orientation())

	var itemIndex int
	switch e.Key() {
	case keys.Next:
		itemIndex = currentIndex + 1
	case keys.Prev:
		itemIndex = currentIndex - 1
	case KeyHome:
		itemIndex = 0
	case KeyEnd:
		itemIndex = len(items) - 1
	default:
		return
	}
	e.PreventDefault()

	if r.Loop() {
		if itemIndex < 0 {
			itemIndex = len(items) - 1
		} else if itemIndex == len(items) {
			itemIndex = 0
		}
	}

	if itemIndex < 0 || itemIndex >= len(items) {
		return
	}

	items[itemIndex].Focus()
}
