// Package scoring judges submitted answers and evolves score and streak.
package scoring

import (
	"github.com/abhisek/tonequiz/internal/rounds"
	"github.com/abhisek/tonequiz/internal/tones"
)

// Tally is the running score and streak of a session.
type Tally struct {
	Score  int
	Streak int
}

// Outcome is the result of judging one submission.
type Outcome struct {
	Correct  bool
	Tally    Tally
	Feedback []tones.Instruction

	// Milestone is set when the new streak lands on a streak milestone.
	Milestone bool
}

// Evaluate compares submitted against expected. A correct answer adds one
// to score and streak; a wrong one keeps the score and resets the streak.
func Evaluate(submitted, expected int, t Tally) Outcome {
	if submitted != expected {
		return Outcome{
			Correct:  false,
			Tally:    Tally{Score: t.Score, Streak: 0},
			Feedback: tones.Failure(),
		}
	}

	next := Tally{Score: t.Score + 1, Streak: t.Streak + 1}
	return Outcome{
		Correct:   true,
		Tally:     next,
		Feedback:  tones.Success(),
		Milestone: IsMilestone(next.Streak),
	}
}

// EvaluateAnswer judges a pending answer. Empty or malformed input is
// submitted as rounds.NoAnswer and therefore scores as wrong.
func EvaluateAnswer(a rounds.Answer, expected int, t Tally) Outcome {
	return Evaluate(a.Submitted(), expected, t)
}
