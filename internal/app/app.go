// Package app wires the router, the screens and the frame into the root
// Bubble Tea model.
package app

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tonequiz/internal/keys"
	"github.com/abhisek/tonequiz/internal/log"
	"github.com/abhisek/tonequiz/internal/router"
	"github.com/abhisek/tonequiz/internal/screen"
	"github.com/abhisek/tonequiz/internal/screens/game"
	"github.com/abhisek/tonequiz/internal/screens/home"
	"github.com/abhisek/tonequiz/internal/screens/welcome"
	"github.com/abhisek/tonequiz/internal/session"
	"github.com/abhisek/tonequiz/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	// Session is the quiz shared by every screen. Required.
	Session *session.Session

	// Player plays the splash chime. Nil keeps the splash silent.
	Player session.Player

	// SkipSplash opens the menu directly.
	SkipSplash bool

	// Direct opens the game screen on top of the menu, in the session's
	// current mode.
	Direct bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *session.Session
	width   int
	height  int
}

// newAppModel builds the screen stack described by opts.
func newAppModel(opts Options) AppModel {
	menu := func() screen.Screen { return home.New(opts.Session) }

	var r *router.Router
	switch {
	case opts.Direct:
		r = router.New(menu())
		r.Push(game.New(opts.Session))
	case opts.SkipSplash:
		r = router.New(menu())
	default:
		r = router.New(welcome.New(menu, opts.Player))
	}
	return AppModel{router: r, session: opts.Session}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Global.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Global.Back):
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.frame())
	v.AltScreen = true
	return v
}

// frame renders header, active screen and footer for the current size.
func (m AppModel) frame() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}
	snap := m.session.Snapshot()
	header := layout.RenderHeader(title, snap.Score, snap.Streak, m.width)
	footer := layout.RenderFooter(m.footerBindings(), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// footerBindings returns the active screen's bindings, or navigation
// defaults when it has none.
func (m AppModel) footerBindings() []key.Binding {
	if p, ok := m.router.Active().(screen.KeyBindingProvider); ok {
		return append(p.KeyBindings(), keys.Global.Quit)
	}
	if m.router.Depth() > 1 {
		return []key.Binding{keys.Global.Back, keys.Global.Quit}
	}
	return []key.Binding{keys.Menu.Up, keys.Menu.Down, keys.Menu.Select, keys.Global.Quit}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Session == nil {
		return fmt.Errorf("app: no session")
	}
	log.Info(log.CatUI, "Starting UI", "session", opts.Session.Snapshot().SessionID)

	if _, err := tea.NewProgram(newAppModel(opts)).Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
