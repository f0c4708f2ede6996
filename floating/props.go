package floating

import (
	"errors"
	"fmt"

	"github.com/Alp4ka/pagebar"
)

const (
	DefaultSide             = SideBottom
	DefaultAlign            = AlignCenter
	DefaultCollisionPadding = 8
	DefaultSticky           = StickyPartial
	DefaultUpdateStrategy   = UpdateOptimized
	DefaultStrategy         = StrategyFixed
)

// ContentProps configures a floating element for an external positioning
// engine. Nothing here computes coordinates.
type ContentProps struct {
	ID string
	// Side preferred side of the anchor. May be flipped on collision.
	Side Side
	// SideOffset distance in pixels from the anchor.
	SideOffset float64
	// Align preferred alignment along the side. May change on collision.
	Align Align
	// AlignOffset offset in pixels from the start or end alignment.
	AlignOffset float64
	// SameWidth makes the element as wide as its anchor.
	SameWidth    bool
	ArrowPadding float64
	// AvoidCollisions lets the engine override Side and Align to stay inside
	// the boundary.
	AvoidCollisions bool
	// CollisionBoundary ids of the elements checked for overflow. Empty means
	// the viewport.
	CollisionBoundary []string
	// CollisionPadding virtual padding around the boundary edges.
	CollisionPadding       Padding
	Sticky                 Sticky
	HideWhenDetached       bool
	UpdatePositionStrategy UpdatePositionStrategy
	// OnPlaced is called by the host after the element is positioned.
	OnPlaced  func()
	Strategy  Strategy
	Dir       pagebar.TextDirection
	Style     map[string]string
	Present   bool
	WrapperID string
}

// AnchorProps identifies the element a floating layer is placed against.
type AnchorProps struct {
	ID string
}

func (a AnchorProps) Validate() error {
	if a.ID == "" {
		return errors.New("anchor id is empty")
	}

	return nil
}

// DefaultContentProps returns props with every option at its default.
func DefaultContentProps(id string) ContentProps {
	return ContentProps{
		ID:                     id,
		Side:                   DefaultSide,
		Align:                  DefaultAlign,
		AvoidCollisions:        true,
		CollisionPadding:       UniformPadding(DefaultCollisionPadding),
		Sticky:                 DefaultSticky,
		UpdatePositionStrategy: DefaultUpdateStrategy,
		Strategy:               DefaultStrategy,
		Dir:                    pagebar.DirectionLTR,
	}
}

// Validate reports the first invalid option.
func (p ContentProps) Validate() error {
	switch {
	case p.ID == "":
		return errors.New("content id is empty")
	case !p.Side.Valid():
		return fmt.Errorf("invalid side '%s'", p.Side)
	case !p.Align.Valid():
		return fmt.Errorf("invalid align '%s'", p.Align)
	case !p.Sticky.Valid():
		return fmt.Errorf("invalid sticky '%s'", p.Sticky)
	case !p.UpdatePositionStrategy.Valid():
		return fmt.Errorf("invalid update position strategy '%s'", p.UpdatePositionStrategy)
	case !p.Strategy.Valid():
		return fmt.Errorf("invalid strategy '%s'", p.Strategy)
	case !p.Dir.Valid():
		return fmt.Errorf("invalid dir '%s'", p.Dir)
	case p.ArrowPadding < 0:
		return fmt.Errorf("negative arrow padding %v", p.ArrowPadding)
	}

	if err := p.CollisionPadding.validate(); err != nil {
		return fmt.Errorf("invalid collision padding: %w", err)
	}

	return nil
}

// Placement returns the engine placement, e.g. "bottom" or "top-start".
// Center alignment has no suffix.
func (p ContentProps) Placement() string {
	if p.Align == AlignCenter || p.Align == "" {
		return string(p.Side)
	}

	return fmt.Sprintf("%s-%s", p.Side, p.Align)
}

// Place invokes OnPlaced if set.
func (p ContentProps) Place() {
	if p.OnPlaced != nil {
		p.OnPlaced()
	}
}
