package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tonequiz/internal/ui/theme"
)

// StreakMeter shows progress of the current streak towards the next
// milestone. Milestones are Step apart.
type StreakMeter struct {
	Streak int
	Next   int
	Step   int
	Width  int
}

// NewStreakMeter creates a meter for streak heading to next.
func NewStreakMeter(streak, next, step, width int) StreakMeter {
	return StreakMeter{Streak: streak, Next: next, Step: step, Width: width}
}

// Fraction is the position of the streak between the previous and the next
// milestone, in [0, 1].
func (m StreakMeter) Fraction() float64 {
	if m.Step <= 0 || m.Next <= 0 {
		return 0
	}
	done := m.Streak - (m.Next - m.Step)
	return min(max(float64(done)/float64(m.Step), 0), 1)
}

// View renders the bar followed by a "streak/next" label.
func (m StreakMeter) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("%d/%d", m.Streak, m.Next))

	barWidth := max(m.Width-lipgloss.Width(label)-2, 4)
	filled := int(float64(barWidth) * m.Fraction())

	return theme.MeterFilled.Render(strings.Repeat(" ", filled)) +
		theme.MeterEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		"  " + label
}
