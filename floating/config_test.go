package floating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alp4ka/pagebar"
)

func Test_DecodeTOML(t *testing.T) {
	cfg, err := DecodeTOML([]byte(`
side = "top"
align = "start"
side_offset = 4.0
avoid_collisions = false
collision_padding = 12
collision_boundary = ["main", "sidebar"]
dir = "rtl"

[style]
z-index = "50"
`))
	require.NoError(t, err)

	p, err := cfg.ContentProps("menu")
	require.NoError(t, err)

	assert.Equal(t, "top-start", p.Placement())
	assert.Equal(t, 4.0, p.SideOffset)
	assert.False(t, p.AvoidCollisions)
	assert.Equal(t, UniformPadding(12), p.CollisionPadding)
	assert.Equal(t, []string{"main", "sidebar"}, p.CollisionBoundary)
	assert.Equal(t, pagebar.DirectionRTL, p.Dir)
	assert.Equal(t, map[string]string{"z-index": "50"}, p.Style)
	assert.Equal(t, StrategyFixed, p.Strategy, "unset keys keep defaults")
}

func Test_DecodeTOML_PaddingTable(t *testing.T) {
	cfg, err := DecodeTOML([]byte(`
[collision_padding]
top = 10
left = 2.5
`))
	require.NoError(t, err)

	p, err := cfg.ContentProps("menu")
	require.NoError(t, err)
	assert.Equal(t, Padding{Top: 10, Left: 2.5}, p.CollisionPadding)
}

func Test_DecodeJSON(t *testing.T) {
	cfg, err := DecodeJSON([]byte(`{
		"side": "left",
		"collisionPadding": {"bottom": 6},
		"collisionBoundary": "viewport-frame",
		"sticky": "always",
		"hideWhenDetached": true,
		"wrapperId": "menu-wrapper"
	}`))
	require.NoError(t, err)

	p, err := cfg.ContentProps("menu")
	require.NoError(t, err)

	assert.Equal(t, SideLeft, p.Side)
	assert.Equal(t, Padding{Bottom: 6}, p.CollisionPadding)
	assert.Equal(t, []string{"viewport-frame"}, p.CollisionBoundary)
	assert.Equal(t, StickyAlways, p.Sticky)
	assert.True(t, p.HideWhenDetached)
	assert.Equal(t, "menu-wrapper", p.WrapperID)
}

func Test_Config_ContentProps_Errors(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		errSubstr string
	}{
		{"unknown padding side", `{"collisionPadding": {"middle": 1}}`, "unknown side 'middle'"},
		{"padding of wrong type", `{"collisionPadding": "wide"}`, "expected number or table"},
		{"padding side not a number", `{"collisionPadding": {"top": "1"}}`, "top: expected number"},
		{"negative padding", `{"collisionPadding": -3}`, "negative top padding"},
		{"boundary of wrong type", `{"collisionBoundary": 3}`, "collision_boundary"},
		{"boundary list of wrong type", `{"collisionBoundary": ["a", 1]}`, "expected element id"},
		{"invalid side", `{"side": "up"}`, "invalid side"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := DecodeJSON([]byte(tt.json))
			require.NoError(t, err)

			_, err = cfg.ContentProps("menu")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func Test_Decode_Malformed(t *testing.T) {
	_, err := DecodeTOML([]byte(`side = [[[`))
	require.Error(t, err)

	_, err = DecodeJSON([]byte(`{"side": 1}`))
	require.Error(t, err)
}
