package floating

import (
	"fmt"

	"github.com/samber/lo"
)

// Side of the anchor the floating element is placed against.
type Side string

const (
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
)

// Sides lists every side in clockwise order starting at the top.
var Sides = []Side{SideTop, SideRight, SideBottom, SideLeft}

func (s Side) Valid() bool {
	return lo.Contains(Sides, s)
}

// Align is the alignment of the floating element along its side.
type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

func (a Align) Valid() bool {
	return lo.Contains([]Align{AlignStart, AlignCenter, AlignEnd}, a)
}

// Sticky controls whether the element keeps to the anchor when the anchor
// scrolls out of the boundary.
type Sticky string

const (
	StickyPartial Sticky = "partial"
	StickyAlways  Sticky = "always"
)

func (s Sticky) Valid() bool {
	return s == StickyPartial || s == StickyAlways
}

// UpdatePositionStrategy controls how often the position engine recomputes.
type UpdatePositionStrategy string

const (
	UpdateOptimized UpdatePositionStrategy = "optimized"
	UpdateAlways    UpdatePositionStrategy = "always"
)

func (u UpdatePositionStrategy) Valid() bool {
	return u == UpdateOptimized || u == UpdateAlways
}

// Strategy is the CSS positioning strategy of the floating element.
type Strategy string

const (
	StrategyAbsolute Strategy = "absolute"
	StrategyFixed    Strategy = "fixed"
)

func (s Strategy) Valid() bool {
	return s == StrategyAbsolute || s == StrategyFixed
}

// Padding is a per-side distance in pixels.
type Padding struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// UniformPadding returns a padding of v on every side.
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// Get returns the padding of one side. Unknown sides have none.
func (p Padding) Get(side Side) float64 {
	switch side {
	case SideTop:
		return p.Top
	case SideRight:
		return p.Right
	case SideBottom:
		return p.Bottom
	case SideLeft:
		return p.Left
	default:
		return 0
	}
}

func (p *Padding) set(side Side, v float64) {
	switch side {
	case SideTop:
		p.Top = v
	case SideRight:
		p.Right = v
	case SideBottom:
		p.Bottom = v
	case SideLeft:
		p.Left = v
	}
}

func (p Padding) validate() error {
	for _, side := range Sides {
		if v := p.Get(side); v < 0 {
			return fmt.Errorf("negative %s padding %v", side, v)
		}
	}

	return nil
}
