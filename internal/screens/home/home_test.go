package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tonequiz/internal/rounds"
	"github.com/abhisek/tonequiz/internal/router"
	"github.com/abhisek/tonequiz/internal/screens/game"
	"github.com/abhisek/tonequiz/internal/session"
)

func TestHome_MenuItems(t *testing.T) {
	h := New(session.New())
	view := ansi.Strip(h.View(100, 30))
	require.Contains(t, view, "Number Game")
	require.Contains(t, view, "Math Game")
	require.Contains(t, view, "Quit")
	require.Contains(t, view, "How to play")
}

func TestHome_StartMathGame(t *testing.T) {
	s := session.New()
	h := New(s)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg, got %T", msg)
	require.IsType(t, &game.Screen{}, push.Screen)
	require.Equal(t, "Math Game", push.Screen.Title())
	require.Equal(t, rounds.ModeArithmetic, s.Snapshot().Mode)
}

func TestHome_Quit(t *testing.T) {
	h := New(session.New())
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRenderTitle_Compact(t *testing.T) {
	require.Contains(t, ansi.Strip(RenderTitle(30)), "T O N E Q U I Z")
}
