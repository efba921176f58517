package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tonequiz/internal/keys"
	"github.com/abhisek/tonequiz/internal/ui/theme"
)

// MenuItem is one entry of a Menu.
type MenuItem struct {
	Label    string
	Hint     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of items navigated with the menu keys.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// Update moves the selection and runs the selected item's action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, keys.Menu.Up):
		m.Selected = m.next(-1)
	case key.Matches(kmsg, keys.Menu.Down):
		m.Selected = m.next(+1)
	case key.Matches(kmsg, keys.Menu.Select):
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}
	return m, nil
}

// next returns the nearest enabled index in direction dir, or the current
// selection if there is none.
func (m Menu) next(dir int) int {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return m.Selected
}

// View renders the items as fixed-width buttons, the selected one highlighted.
func (m Menu) View(width int) string {
	normal := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	selected := normal.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Highlight).
		BorderForeground(theme.Highlight)

	disabled := normal.Foreground(theme.TextDim)

	var rows []string
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			rows = append(rows, disabled.Render(item.Label))
		case i == m.Selected:
			rows = append(rows, selected.Render("▸ "+item.Label))
		default:
			rows = append(rows, normal.Render(item.Label))
		}
	}

	if m.Selected >= 0 && m.Selected < len(m.Items) && m.Items[m.Selected].Hint != "" {
		rows = append(rows, "", theme.Hint.Render(m.Items[m.Selected].Hint))
	}
	return strings.Join(rows, "\n")
}
