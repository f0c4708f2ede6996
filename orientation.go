package pagebar

import "fmt"

// Orientation defines the navigable axis of a pagination bar.
type Orientation string

const (
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
)

func (o Orientation) Valid() bool {
	return o == OrientationHorizontal || o == OrientationVertical
}

// TextDirection is the resolved writing direction of an element.
type TextDirection string

const (
	DirectionLTR TextDirection = "ltr"
	DirectionRTL TextDirection = "rtl"
)

func (d TextDirection) Valid() bool {
	return d == DirectionLTR || d == DirectionRTL
}

// Key identifiers as reported by KeyboardEvent.key.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
)

// DirectionalKeys holds the keys that move focus forward and backward.
type DirectionalKeys struct {
	Next string
	Prev string
}

// GetDirectionalKeys resolves the logical next/prev keys for a layout.
// Vertical bars always use down/up. Horizontal bars use right/left, swapped
// for right-to-left text.
func GetDirectionalKeys(dir TextDirection, orientation Orientation) DirectionalKeys {
	switch {
	case orientation == OrientationVertical:
		return DirectionalKeys{Next: KeyArrowDown, Prev: KeyArrowUp}
	case dir == DirectionRTL:
		return DirectionalKeys{Next: KeyArrowLeft, Prev: KeyArrowRight}
	default:
		return DirectionalKeys{Next: KeyArrowRight, Prev: KeyArrowLeft}
	}
}

// ParseOrientation maps a case-sensitive attribute value onto Orientation.
func ParseOrientation(s string) (Orientation, error) {
	o := Orientation(s)
	if !o.Valid() {
		return "", fmt.Errorf("invalid orientation '%s'", s)
	}

	return o, nil
}
