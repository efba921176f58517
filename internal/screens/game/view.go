package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tonequiz/internal/keys"
	"github.com/abhisek/tonequiz/internal/rounds"
	"github.com/abhisek/tonequiz/internal/scoring"
	"github.com/abhisek/tonequiz/internal/session"
	"github.com/abhisek/tonequiz/internal/tones"
	"github.com/abhisek/tonequiz/internal/ui/components"
	"github.com/abhisek/tonequiz/internal/ui/layout"
	"github.com/abhisek/tonequiz/internal/ui/theme"
)

func (g *Screen) View(width, height int) string {
	s := g.snap
	compact := layout.IsCompact(width, height+6)

	sections := []string{
		theme.Title.Render(heading(s.Mode)),
		renderStatus(s),
	}
	if buttons := renderButtons(s); buttons != "" {
		sections = append(sections, buttons)
	}
	sections = append(sections, renderPad(s, compact))

	if !compact {
		next := scoring.NextStreakMilestone(s.Streak)
		meter := components.NewStreakMeter(s.Streak, next, scoring.BaseStreakMilestone, 30)
		sections = append(sections, theme.Hint.Render("next streak milestone")+"\n"+meter.View())
	}
	if g.notice != "" {
		sections = append(sections, theme.Hint.Render(g.notice))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, intersperse(sections, "")...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func heading(m rounds.Mode) string {
	if m == rounds.ModeArithmetic {
		return "Listen and Add the Numbers!"
	}
	return "Listen and Click the Number!"
}

// renderStatus is the panel above the pad: the prompt, the pending answer
// or the judged result.
func renderStatus(s session.Snapshot) string {
	if s.ResultVisible {
		return renderResult(s)
	}

	switch s.Phase {
	case session.PhaseRoundActive:
		if s.Mode == rounds.ModeArithmetic {
			return theme.Body.Render("? + ? = ?") + "\n\n" +
				theme.Body.Render("Your answer: ") + lipgloss.NewStyle().Bold(true).Render(pending(s.Answer))
		}
		return theme.Body.Render("Which number was that?")
	default:
		if s.Revealed {
			return renderReveal(s)
		}
		return theme.Subtitle.Render("Press space to play a tone.")
	}
}

// renderResult shows what was played, what was answered and whether it was
// right. A streak milestone adds a celebration line.
func renderResult(s session.Snapshot) string {
	verdict := theme.Incorrect.Render("✗ Not quite")
	answerStyle := theme.Incorrect
	if s.LastCorrect {
		verdict = theme.Correct.Render("✓ Correct!")
		answerStyle = theme.Correct
	}

	lines := []string{verdict, renderReveal(s)}
	if s.Mode == rounds.ModeArithmetic {
		answer := s.Answer.String()
		if s.Answer.Empty() {
			answer = "None"
		}
		lines = append(lines, theme.Body.Render("Your answer: ")+answerStyle.Render(answer))
	}
	if s.Milestone {
		lines = append(lines, theme.Milestone.Render(fmt.Sprintf("★ %d in a row! ★", s.Streak)))
	}
	return strings.Join(lines, "\n")
}

// renderReveal states the round's digits once they may be shown.
func renderReveal(s session.Snapshot) string {
	if s.Mode == rounds.ModeArithmetic {
		return theme.Body.Render(fmt.Sprintf("%d + %d = ", s.First, s.Second)) +
			lipgloss.NewStyle().Bold(true).Foreground(theme.Highlight).Render(fmt.Sprint(s.Sum))
	}
	return theme.Body.Render("The number was: ") +
		lipgloss.NewStyle().Bold(true).Foreground(theme.Highlight).Render(s.Target.String())
}

func pending(a rounds.Answer) string {
	if a.Empty() {
		return "_"
	}
	return a.String()
}

// renderButtons shows the actions available in the current phase.
func renderButtons(s session.Snapshot) string {
	play := "♪ Play Sound"
	if s.Mode == rounds.ModeArithmetic {
		play = "♪ New Problem"
	}
	hasInput := s.Mode == rounds.ModeArithmetic && !s.Answer.Empty() && !s.ResultVisible

	return components.ButtonRow(
		components.Button{Label: play, Binding: keys.Game.NewRound, Hidden: s.Phase == session.PhaseRoundActive},
		components.Button{Label: "↻ Replay", Binding: keys.Game.Replay, Hidden: s.Phase != session.PhaseRoundActive},
		components.Button{Label: "✓ Submit", Binding: keys.Game.Submit, Hidden: !hasInput},
		components.Button{Label: "Clear", Binding: keys.Game.Clear, Hidden: !hasInput},
		components.Button{Label: "↻ Try Again", Binding: keys.Game.Dismiss, Hidden: !s.ResultVisible},
	)
}

// renderPad draws the number pad, highlighting the recognition pick once
// the result is shown.
func renderPad(s session.Snapshot, compact bool) string {
	pad := components.DigitPad{
		Disabled: s.Phase != session.PhaseRoundActive,
		Compact:  compact,
	}
	if s.ResultVisible && s.Mode == rounds.ModeRecognition {
		if d, err := tones.ParseDigit(s.Answer.String()); err == nil {
			pad.Highlight = &d
		}
	}
	return pad.View()
}

func intersperse(items []string, sep string) []string {
	out := make([]string, 0, 2*len(items))
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}
