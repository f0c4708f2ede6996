package pagebar

// ButtonKind distinguishes the previous and next page buttons.
type ButtonKind string

const (
	ButtonPrev ButtonKind = "prev"
	ButtonNext ButtonKind = "next"
)

func (k ButtonKind) Valid() bool {
	return k == ButtonPrev || k == ButtonNext
}

// Element is a focusable node of a host surface. Implementations must be
// comparable: focus order lookup relies on ==.
type Element interface {
	Focus()
}

// Surface is the live interactive surface of one pagination bar. It is
// queried on every key event, so it always reflects what is rendered now.
type Surface interface {
	// PageTriggers returns the page trigger elements in document order.
	PageTriggers() []Element
	// Button returns the prev or next button, or nil when it is not rendered.
	Button(kind ButtonKind) Element
	// Direction returns the resolved text direction of the bar.
	Direction() TextDirection
}

// KeyEvent is a key-down event delivered by the host.
type KeyEvent interface {
	Key() string
	PreventDefault()
}

// KeyboardEvent is a plain KeyEvent for hosts without a native event object.
type KeyboardEvent struct {
	key              string
	defaultPrevented bool
}

func NewKeyboardEvent(key string) *KeyboardEvent {
	return &KeyboardEvent{key: key}
}

// Key - implements KeyEvent.
func (e *KeyboardEvent) Key() string {
	if e == nil {
		return ""
	}

	return e.key
}

// PreventDefault - implements KeyEvent.
func (e *KeyboardEvent) PreventDefault() {
	if e != nil {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether a handler suppressed the default action.
func (e *KeyboardEvent) DefaultPrevented() bool {
	return e != nil && e.defaultPrevented
}

var _ KeyEvent = (*KeyboardEvent)(nil)
