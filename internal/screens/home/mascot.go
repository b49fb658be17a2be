package home

import (
	"charm.land/lipgloss/v2"

	"github.com/yuiseki/sysquiz/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default
	MascotCelebrating                      // Gold — a long best streak on record
)

const penguinIdle = `  .--.
 |o_o |
 |:_/ |
//   \ \
(|     |)
'\_   _/'
  \===/`

const penguinCelebrating = `  .--.
 |★_★ |
 |:_/ |
//   \ \
(|     |)
'\_   _/'
  \===/`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	art := penguinIdle
	fg := theme.Primary
	if v == MascotCelebrating {
		art = penguinCelebrating
		fg = theme.ArcadeYellow
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
