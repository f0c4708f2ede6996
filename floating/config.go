package floating

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"

	"github.com/Alp4ka/pagebar"
)

// Config is the file form of ContentProps. Unset keys keep their defaults.
//
// CollisionPadding is either a number applied to every side or a table keyed
// by side. CollisionBoundary is either one element id or a list of them.
type Config struct {
	Side                   *string           `toml:"side" json:"side"`
	SideOffset             *float64          `toml:"side_offset" json:"sideOffset"`
	Align                  *string           `toml:"align" json:"align"`
	AlignOffset            *float64          `toml:"align_offset" json:"alignOffset"`
	SameWidth              *bool             `toml:"same_width" json:"sameWidth"`
	ArrowPadding           *float64          `toml:"arrow_padding" json:"arrowPadding"`
	AvoidCollisions        *bool             `toml:"avoid_collisions" json:"avoidCollisions"`
	CollisionBoundary      any               `toml:"collision_boundary" json:"collisionBoundary"`
	CollisionPadding       any               `toml:"collision_padding" json:"collisionPadding"`
	Sticky                 *string           `toml:"sticky" json:"sticky"`
	HideWhenDetached       *bool             `toml:"hide_when_detached" json:"hideWhenDetached"`
	UpdatePositionStrategy *string           `toml:"update_position_strategy" json:"updatePositionStrategy"`
	Strategy               *string           `toml:"strategy" json:"strategy"`
	Dir                    *string           `toml:"dir" json:"dir"`
	Style                  map[string]string `toml:"style" json:"style"`
	WrapperID              *string           `toml:"wrapper_id" json:"wrapperId"`
}

// DecodeTOML reads a Config from a TOML document.
func DecodeTOML(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode toml config: %w", err)
	}

	return cfg, nil
}

// DecodeJSON reads a Config from a JSON document.
func DecodeJSON(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode json config: %w", err)
	}

	return cfg, nil
}

// ContentProps applies the config on top of DefaultContentProps(id) and
// validates the result.
func (c Config) ContentProps(id string) (ContentProps, error) {
	p := DefaultContentProps(id)

	p.Side = Side(lo.FromPtrOr(c.Side, string(p.Side)))
	p.SideOffset = lo.FromPtrOr(c.SideOffset, p.SideOffset)
	p.Align = Align(lo.FromPtrOr(c.Align, string(p.Align)))
	p.AlignOffset = lo.FromPtrOr(c.AlignOffset, p.AlignOffset)
	p.SameWidth = lo.FromPtrOr(c.SameWidth, p.SameWidth)
	p.ArrowPadding = lo.FromPtrOr(c.ArrowPadding, p.ArrowPadding)
	p.AvoidCollisions = lo.FromPtrOr(c.AvoidCollisions, p.AvoidCollisions)
	p.Sticky = Sticky(lo.FromPtrOr(c.Sticky, string(p.Sticky)))
	p.HideWhenDetached = lo.FromPtrOr(c.HideWhenDetached, p.HideWhenDetached)
	p.UpdatePositionStrategy = UpdatePositionStrategy(lo.FromPtrOr(c.UpdatePositionStrategy, string(p.UpdatePositionStrategy)))
	p.Strategy = Strategy(lo.FromPtrOr(c.Strategy, string(p.Strategy)))
	p.Dir = pagebar.TextDirection(lo.FromPtrOr(c.Dir, string(p.Dir)))
	p.WrapperID = lo.FromPtrOr(c.WrapperID, p.WrapperID)
	p.Style = c.Style

	if c.CollisionPadding != nil {
		padding, err := parsePadding(c.CollisionPadding)
		if err != nil {
			return ContentProps{}, fmt.Errorf("invalid collision_padding: %w", err)
		}
		p.CollisionPadding = padding
	}

	if c.CollisionBoundary != nil {
		boundary, err := parseBoundary(c.CollisionBoundary)
		if err != nil {
			return ContentProps{}, fmt.Errorf("invalid collision_boundary: %w", err)
		}
		p.CollisionBoundary = boundary
	}

	if err := p.Validate(); err != nil {
		return ContentProps{}, err
	}

	return p, nil
}

// parsePadding accepts a number or a side-keyed table. Sides missing from
// the table get no padding.
func parsePadding(v any) (Padding, error) {
	if n, ok := number(v); ok {
		return UniformPadding(n), nil
	}

	table, ok := v.(map[string]any)
	if !ok {
		return Padding{}, fmt.Errorf("expected number or table, got %T", v)
	}

	var ret Padding
	for key, raw := range table {
		side := Side(key)
		if !side.Valid() {
			return Padding{}, fmt.Errorf("unknown side '%s'", key)
		}

		n, ok := number(raw)
		if !ok {
			return Padding{}, fmt.Errorf("%s: expected number, got %T", key, raw)
		}
		ret.set(side, n)
	}

	return ret, nil
}

func parseBoundary(v any) ([]string, error) {
	switch b := v.(type) {
	case string:
		return []string{b}, nil
	case []any:
		ret := make([]string, 0, len(b))
		for _, item := range b {
			id, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected element id, got %T", item)
			}
			ret = append(ret, id)
		}
		return ret, nil
	default:
		return nil, fmt.Errorf("expected element id or list, got %T", v)
	}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
