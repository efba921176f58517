// Package home is the main menu: pick a game or quit.
package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tonequiz/internal/log"
	"github.com/abhisek/tonequiz/internal/rounds"
	"github.com/abhisek/tonequiz/internal/router"
	"github.com/abhisek/tonequiz/internal/screen"
	"github.com/abhisek/tonequiz/internal/screens/game"
	"github.com/abhisek/tonequiz/internal/session"
	"github.com/abhisek/tonequiz/internal/ui/components"
	"github.com/abhisek/tonequiz/internal/ui/theme"
)

const menuWidth = 24

const howToPlay = `Number Game: play a sound, then press the matching number.
Math Game: listen to two numbers, add them, and type the sum.
Each number has its own tone. Learn to recognize them!`

// HomeScreen lists the games.
type HomeScreen struct {
	session *session.Session
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the menu. Both games share s, so score and streak carry over
// between them.
func New(s *session.Session) *HomeScreen {
	h := &HomeScreen{session: s}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "Number Game", Hint: "Hear a tone, name the number.", Action: h.start(rounds.ModeRecognition)},
		{Label: "Math Game", Hint: "Hear two tones, add them up.", Action: h.start(rounds.ModeArithmetic)},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

// start switches the session to m and opens the game screen.
func (h *HomeScreen) start(m rounds.Mode) func() tea.Cmd {
	return func() tea.Cmd {
		if _, err := h.session.SwitchMode(m); err != nil {
			log.ErrorErr(log.CatUI, "Failed to switch mode", err)
			return nil
		}
		return router.Push(game.New(h.session))
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	sections := []string{
		RenderTitle(width),
		h.menu.View(menuWidth),
	}
	if height >= 24 {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Render(theme.Body.Bold(true).Render("How to play")+"\n"+howToPlay))
	}
	spaced := make([]string, 0, 2*len(sections))
	for i, sec := range sections {
		if i > 0 {
			spaced = append(spaced, "")
		}
		spaced = append(spaced, sec)
	}
	content := lipgloss.JoinVertical(lipgloss.Center, spaced...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
