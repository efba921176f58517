package keys

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tonequiz/internal/tones"
)

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestGame_DigitBindingCoversAllDigits(t *testing.T) {
	keys := Game.Digit.Keys()
	require.Len(t, keys, 10)
	for _, d := range tones.AllDigits() {
		require.Contains(t, keys, d.String())
	}
}

func TestDigitOf(t *testing.T) {
	for _, d := range tones.AllDigits() {
		got, ok := DigitOf(press('0' + rune(d)))
		require.True(t, ok, "digit %d", d)
		require.Equal(t, d, got)
	}

	_, ok := DigitOf(press('x'))
	require.False(t, ok)
	_, ok = DigitOf(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.False(t, ok)
}

func TestGame_SubmitAndDismissShareEnter(t *testing.T) {
	enter := tea.KeyPressMsg{Code: tea.KeyEnter}
	require.True(t, key.Matches(enter, Game.Submit))
	require.True(t, key.Matches(enter, Game.Dismiss))
	require.Equal(t, "try again", Game.Dismiss.Help().Desc)
}

func TestGame_NewRoundKeys(t *testing.T) {
	require.Equal(t, []string{"space", "n"}, Game.NewRound.Keys())
	require.True(t, key.Matches(press('n'), Game.NewRound))
	require.True(t, key.Matches(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}, Game.NewRound))
}

func TestGame_ClearKeys(t *testing.T) {
	require.True(t, key.Matches(tea.KeyPressMsg{Code: tea.KeyBackspace}, Game.Clear))
	require.True(t, key.Matches(press('c'), Game.Clear))
}

func TestHelpTextNotEmpty(t *testing.T) {
	all := []key.Binding{
		Game.Digit, Game.Submit, Game.Clear, Game.NewRound, Game.Replay,
		Game.Dismiss, Game.SwitchMode, Game.Back,
		Menu.Up, Menu.Down, Menu.Select,
		Global.Quit, Global.Back,
	}
	for _, b := range all {
		require.NotEmpty(t, b.Help().Key)
		require.NotEmpty(t, b.Help().Desc)
	}
}
