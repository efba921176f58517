package layout

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestIsTooSmall(t *testing.T) {
	require.True(t, IsTooSmall(MinWidth-1, MinHeight))
	require.True(t, IsTooSmall(MinWidth, MinHeight-1))
	require.False(t, IsTooSmall(MinWidth, MinHeight))
}

func TestIsCompact(t *testing.T) {
	require.True(t, IsCompact(CompactWidthThreshold-1, 40))
	require.False(t, IsCompact(CompactWidthThreshold, CompactHeightThreshold))
}

func TestRenderHeader_ShowsScoreAndStreak(t *testing.T) {
	h := ansi.Strip(RenderHeader("Math Game", 7, 3, 100))
	require.Contains(t, h, "tonequiz")
	require.Contains(t, h, "Math Game")
	require.Contains(t, h, "Score 7")
	require.Contains(t, h, "Streak 3")
}

func TestRenderFooter_SkipsDisabledBindings(t *testing.T) {
	submit := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit"))
	clear := key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear"))
	clear.SetEnabled(false)

	f := ansi.Strip(RenderFooter([]key.Binding{submit, clear}, 80))
	require.Contains(t, f, "submit")
	require.NotContains(t, f, "clear")
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("", 0, 0, 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)
	require.Equal(t, 30, lipgloss.Height(frame))
	require.Equal(t, 30-lipgloss.Height(header)-lipgloss.Height(footer), ContentHeight(header, footer, 30))
}

func TestSpread_KeepsGaps(t *testing.T) {
	line := spread("L", "C", "R", 2)
	require.True(t, strings.HasPrefix(line, "L "))
	require.True(t, strings.HasSuffix(line, " R"))
}
