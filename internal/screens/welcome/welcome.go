// Package welcome is the splash screen: the tone ladder builds up, the title
// appears, and any key moves on.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tonequiz/internal/router"
	"github.com/abhisek/tonequiz/internal/screen"
	"github.com/abhisek/tonequiz/internal/screens/home"
	"github.com/abhisek/tonequiz/internal/session"
	"github.com/abhisek/tonequiz/internal/tones"
	"github.com/abhisek/tonequiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond

	// One ladder bar appears per tick, then the title.
	ladderEnd = time.Duration(tones.MaxDigit+1) * tickInterval
	titleAt   = ladderEnd + 500*time.Millisecond
	totalDur  = titleAt + 2*time.Second

	ladderHeight = 8
)

type tickMsg time.Time

// WelcomeScreen animates the tone ladder before handing over to the next
// screen.
type WelcomeScreen struct {
	next         func() screen.Screen
	player       session.Player
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a splash that replaces itself with next() on the first key
// press. A non-nil player hears the success chime when the splash opens.
func New(next func() screen.Screen, player session.Player) *WelcomeScreen {
	return &WelcomeScreen{next: next, player: player}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	if w.player != nil {
		w.player.Play(tones.Success())
	}
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

// transition hands over to the next screen once; later presses are ignored.
func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	s := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: s}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{w.renderLadder()}

	if w.elapsed >= titleAt {
		sections = append(sections,
			"",
			home.RenderTitle(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Every number has its own sound."),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderLadder draws one bar per digit, taller for higher tones. Bars appear
// one per tick.
func (w *WelcomeScreen) renderLadder() string {
	shown := min(int(w.elapsed/tickInterval), int(tones.MaxDigit)+1)
	digits := tones.AllDigits()

	lo := tones.FrequencyOf(tones.MinDigit)
	hi := tones.FrequencyOf(tones.MaxDigit)

	cols := make([]string, len(digits))
	for i, d := range digits {
		if i >= shown {
			cols[i] = strings.Repeat(" \n", ladderHeight) + " "
			continue
		}
		h := 1 + int(float64(ladderHeight-1)*(tones.FrequencyOf(d)-lo)/(hi-lo))
		bar := strings.Repeat(" \n", ladderHeight-h) + strings.Repeat("█\n", h)
		color := theme.Secondary
		if i == shown-1 && w.elapsed <= ladderEnd {
			color = theme.Highlight
		}
		cols[i] = lipgloss.NewStyle().Foreground(color).Render(bar + d.String())
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, intersperse(cols, " ")...)
}

func intersperse(cols []string, sep string) []string {
	out := make([]string, 0, 2*len(cols))
	for i, c := range cols {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, c)
	}
	return out
}
