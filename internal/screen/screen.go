// Package screen defines the contract between the router and the screens.
package screen

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Screen is one page of the application.
type Screen interface {
	Init() tea.Cmd

	// Update handles a message and returns the screen to keep on the stack.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area, excluding header and footer.
	View(width, height int) string

	// Title is shown in the header. Empty hides it.
	Title() string
}

// KeyBindingProvider is implemented by screens that want their own footer
// hints instead of the application defaults.
type KeyBindingProvider interface {
	KeyBindings() []key.Binding
}
