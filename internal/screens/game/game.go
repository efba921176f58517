// Package game is the quiz screen: it maps key presses to session
// operations and renders the session snapshot.
package game

import (
	"errors"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tonequiz/internal/keys"
	"github.com/abhisek/tonequiz/internal/log"
	"github.com/abhisek/tonequiz/internal/rounds"
	"github.com/abhisek/tonequiz/internal/screen"
	"github.com/abhisek/tonequiz/internal/session"
)

// Screen drives one session.Session from the keyboard.
type Screen struct {
	session *session.Session
	snap    session.Snapshot

	// notice explains the last rejected key press; cleared on the next
	// accepted one.
	notice string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyBindingProvider = (*Screen)(nil)

// New creates a screen for s. The session is shared: score and streak
// survive leaving and re-entering the screen.
func New(s *session.Session) *Screen {
	return &Screen{session: s, snap: s.Snapshot()}
}

func (g *Screen) Init() tea.Cmd {
	g.snap = g.session.Snapshot()
	return nil
}

func (g *Screen) Title() string {
	return g.snap.Mode.DisplayName()
}

// Snapshot returns the state the screen last rendered from.
func (g *Screen) Snapshot() session.Snapshot {
	return g.snap
}

func (g *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return g, nil
	}

	if d, ok := keys.DigitOf(kmsg); ok {
		g.apply(g.session.PressDigit(d))
		return g, nil
	}

	switch {
	case key.Matches(kmsg, keys.Game.Dismiss) && g.snap.ResultVisible:
		g.apply(g.session.DismissResult())
	case key.Matches(kmsg, keys.Game.Submit, keys.Game.Clear) && g.snap.Answer.Empty():
		// Submit and Clear are only offered once something has been typed.
		g.notice = noticeFor(g.snap, session.ErrInvalidTransition)
	case key.Matches(kmsg, keys.Game.Submit):
		g.apply(g.session.SubmitAnswer())
	case key.Matches(kmsg, keys.Game.Clear):
		g.apply(g.session.ClearInput())
	case key.Matches(kmsg, keys.Game.NewRound):
		g.apply(g.session.RequestNewRound())
	case key.Matches(kmsg, keys.Game.Replay):
		g.apply(g.session.ReplayCues())
	case key.Matches(kmsg, keys.Game.SwitchMode):
		g.apply(g.session.SwitchMode(otherMode(g.snap.Mode)))
	}
	return g, nil
}

// apply stores the outcome of a session operation. Rejections keep the
// previous state and leave a notice for the learner.
func (g *Screen) apply(snap session.Snapshot, err error) {
	g.snap = snap
	if err == nil {
		g.notice = ""
		return
	}
	g.notice = noticeFor(snap, err)
	log.Debug(log.CatUI, "Key press rejected", "error", err)
}

// noticeFor turns a rejected operation into a hint for the current phase.
func noticeFor(snap session.Snapshot, err error) string {
	if !errors.Is(err, session.ErrInvalidTransition) {
		return err.Error()
	}
	switch snap.Phase {
	case session.PhaseIdle:
		return "Press space to hear a tone first."
	case session.PhaseRoundActive:
		if snap.Mode == rounds.ModeArithmetic && snap.Answer.Empty() {
			return "Type the sum with the number keys."
		}
		return "Answer this round first, or press r to hear it again."
	case session.PhaseResultShown:
		return "Press enter to try again or space for a new round."
	}
	return ""
}

func otherMode(m rounds.Mode) rounds.Mode {
	if m == rounds.ModeArithmetic {
		return rounds.ModeRecognition
	}
	return rounds.ModeArithmetic
}

// KeyBindings lists the keys that do something in the current phase.
func (g *Screen) KeyBindings() []key.Binding {
	s := g.snap
	bindings := []key.Binding{}
	switch s.Phase {
	case session.PhaseIdle:
		bindings = append(bindings, keys.Game.NewRound)
	case session.PhaseRoundActive:
		bindings = append(bindings, keys.Game.Digit, keys.Game.Replay)
		if s.Mode == rounds.ModeArithmetic && !s.Answer.Empty() {
			bindings = append(bindings, keys.Game.Submit, keys.Game.Clear)
		}
	case session.PhaseResultShown:
		bindings = append(bindings, keys.Game.Dismiss, keys.Game.NewRound)
	}
	return append(bindings, keys.Game.SwitchMode, keys.Game.Back)
}
