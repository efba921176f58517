// Package keys defines the key bindings shared by the screens.
package keys

import (
	"fmt"

	"charm.land/bubbles/v2/key"

	"github.com/abhisek/tonequiz/internal/tones"
)

// GameKeys are the bindings of the quiz screen.
type GameKeys struct {
	Digit      key.Binding
	Submit     key.Binding
	Clear      key.Binding
	NewRound   key.Binding
	Replay     key.Binding
	Dismiss    key.Binding
	SwitchMode key.Binding
	Back       key.Binding
}

// MenuKeys are the bindings of list screens.
type MenuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

// GlobalKeys work on every screen.
type GlobalKeys struct {
	Quit key.Binding
	Back key.Binding
}

// Game holds the quiz bindings.
var Game = GameKeys{
	Digit: key.NewBinding(
		key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("0-9", "answer"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Clear: key.NewBinding(
		key.WithKeys("backspace", "c"),
		key.WithHelp("⌫/c", "clear"),
	),
	NewRound: key.NewBinding(
		key.WithKeys("space", "n"),
		key.WithHelp("space", "play"),
	),
	Replay: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "replay"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "try again"),
	),
	SwitchMode: key.NewBinding(
		key.WithKeys("tab", "m"),
		key.WithHelp("tab", "switch game"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "menu"),
	),
}

// Menu holds the list bindings.
var Menu = MenuKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
}

// Global holds the application-wide bindings.
var Global = GlobalKeys{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// DigitOf returns the digit a key press names, if any.
func DigitOf(msg fmt.Stringer) (tones.Digit, bool) {
	if !key.Matches(msg, Game.Digit) {
		return 0, false
	}
	d, err := tones.ParseDigit(msg.String())
	if err != nil {
		return 0, false
	}
	return d, true
}
