package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tonequiz/internal/ui/theme"
)

const titleArt = `▀█▀ █▀█ █▄ █ █▀▀ █▀█ █ █ █ ▀▀█
 █  █▄█ █ ▀█ ██▄ ▀▀█ █▄█ █ █▄▄`

const titleCompact = "T O N E Q U I Z"

// RenderTitle returns the block-letter title, or a spaced-out fallback on
// narrow terminals.
func RenderTitle(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Highlight).
		Bold(true)
	if width < 40 {
		return style.Render(titleCompact)
	}
	return style.Render(titleArt)
}
