package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/width"
)

func TestRootIcons(t *testing.T) {
	tests := []struct {
		root Root
		icon rune
	}{
		{Home, '🏠'},
		{Music, '🎵'},
		{AppData, '💾'},
		{Desktop, '🔝'},
		{Documents, '📄'},
		{Downloads, '⏬'},
		{Pictures, '🎨'},
		{Videos, '🎥'},
		{Drive, '🥞'},
	}
	seen := make(map[rune]bool)
	for _, tt := range tests {
		t.Run(tt.root.String(), func(t *testing.T) {
			assert.Equal(t, tt.icon, tt.root.Icon())
			assert.False(t, seen[tt.icon], "icon %q reused", tt.icon)
			seen[tt.icon] = true
		})
	}
}

func TestRootOrders(t *testing.T) {
	require.Equal(t,
		[]Root{Home, Music, AppData, Desktop, Documents, Downloads, Pictures, Videos, Drive},
		Roots())
	require.Equal(t,
		[]Root{Music, AppData, Desktop, Documents, Downloads, Pictures, Videos},
		Subdirs())
}

func TestRootString(t *testing.T) {
	assert.Equal(t, "home", Home.String())
	assert.Equal(t, "drive", Drive.String())
	assert.Equal(t, "unknown", Root(99).String())
}

// Marker and root icons end up in encoded filenames, so like the escape
// outputs they must have an explicit East Asian width.
func TestIconsHaveExplicitWidth(t *testing.T) {
	var icons []rune
	for _, p := range Platforms() {
		icons = append(icons, p.Marker())
	}
	for _, root := range Roots() {
		icons = append(icons, root.Icon())
	}

	for _, icon := range icons {
		switch kind := width.LookupRune(icon).Kind(); kind {
		case width.EastAsianWide, width.EastAsianNarrow, width.EastAsianFullwidth, width.EastAsianHalfwidth:
		default:
			t.Errorf("icon %q has ambiguous width %v", icon, kind)
		}
	}
}
