package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tonequiz/internal/tones"
	"github.com/abhisek/tonequiz/internal/ui/theme"
)

// DigitPad renders the ten number buttons. Each key shows its digit and the
// frequency of its tone.
type DigitPad struct {
	// Highlight marks one key, e.g. the learner's pick. Nil marks none.
	Highlight *tones.Digit

	// Disabled dims every key while the pad accepts no input.
	Disabled bool

	// Compact drops the frequency line.
	Compact bool
}

// View renders the pad as two rows of five keys.
func (p DigitPad) View() string {
	digits := tones.AllDigits()
	half := len(digits) / 2
	return lipgloss.JoinVertical(lipgloss.Center,
		p.row(digits[:half]),
		p.row(digits[half:]),
	)
}

func (p DigitPad) row(digits []tones.Digit) string {
	keys := make([]string, 0, len(digits))
	for _, d := range digits {
		keys = append(keys, p.key(d))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, keys...)
}

func (p DigitPad) key(d tones.Digit) string {
	label := d.String()
	if !p.Compact {
		label += "\n" + theme.PadFrequency.Render(fmt.Sprintf("%.0fHz", tones.FrequencyOf(d)))
	}

	switch {
	case p.Highlight != nil && *p.Highlight == d:
		return theme.PadKeyActive.Render(label)
	case p.Disabled:
		return theme.PadKeyDisabled.Render(label)
	default:
		return theme.PadKey.Render(label)
	}
}
