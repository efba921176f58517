package components

import (
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tonequiz/internal/ui/theme"
)

// Button is a labelled action bound to a key. Hidden buttons render empty.
type Button struct {
	Label   string
	Binding key.Binding
	Hidden  bool
}

// NewButton creates a visible button.
func NewButton(label string, binding key.Binding) Button {
	return Button{Label: label, Binding: binding}
}

// View renders the button with its key hint.
func (b Button) View() string {
	if b.Hidden {
		return ""
	}
	label := b.Label
	if h := b.Binding.Help().Key; h != "" {
		label += " (" + h + ")"
	}
	if b.Binding.Enabled() {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}

// ButtonRow renders the visible buttons side by side.
func ButtonRow(buttons ...Button) string {
	views := make([]string, 0, len(buttons))
	for _, b := range buttons {
		if b.Hidden {
			continue
		}
		if len(views) > 0 {
			views = append(views, "  ")
		}
		views = append(views, b.View())
	}
	if len(views) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
