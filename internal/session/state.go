package session

import (
	"fmt"

	"github.com/abhisek/tonequiz/internal/rounds"
	"github.com/abhisek/tonequiz/internal/scoring"
	"github.com/abhisek/tonequiz/internal/tones"
)

// Phase is where the session sits in the round lifecycle.
// Mode is an orthogonal axis and is not part of the phase.
type Phase int

const (
	PhaseIdle        Phase = iota // no round in play
	PhaseRoundActive              // cues played, waiting for an answer
	PhaseResultShown              // answer judged, result on screen
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRoundActive:
		return "round-active"
	case PhaseResultShown:
		return "result-shown"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// SessionState is the mutable state of one quiz session.
// Only Session mutates it.
type SessionState struct {
	// ID identifies the session in logs.
	ID string

	// Mode is the active game mode.
	Mode rounds.Mode

	// Phase is the current lifecycle phase.
	Phase Phase

	// Round is the current or most recent round (nil until the first request
	// and after a mode switch). After DismissResult it stays as history.
	Round rounds.Round

	// Answer is the pending input. In recognition mode it holds the digit
	// the learner picked once the result is shown.
	Answer rounds.Answer

	// ResultVisible is true only after a submission or recognition pick.
	ResultVisible bool

	// Tally holds score and streak.
	Tally scoring.Tally

	// LastCorrect records whether the most recent submission was correct.
	LastCorrect bool

	// LastMilestone is set when the most recent submission hit a streak milestone.
	LastMilestone bool

	// Attempts counts judged rounds in this session.
	Attempts int
}

// NewSessionState creates the initial state: idle, given mode, zero tally.
func NewSessionState(id string, mode rounds.Mode) *SessionState {
	return &SessionState{
		ID:    id,
		Mode:  mode,
		Phase: PhaseIdle,
	}
}

// Snapshot is the read-only view the presentation layer renders.
type Snapshot struct {
	SessionID     string
	Mode          rounds.Mode
	Phase         Phase
	ResultVisible bool

	// HasRound is false before the first round of the current mode.
	HasRound bool

	// Revealed is true once the round's digits may be shown. While a round
	// is active the target (and the arithmetic operands) stay hidden.
	Revealed bool
	Target   tones.Digit
	First    tones.Digit
	Second   tones.Digit
	Sum      int

	Answer      rounds.Answer
	LastCorrect bool
	Milestone   bool
	Score       int
	Streak      int
	Attempts    int
}

// snapshot builds the view of s.
func (s *SessionState) snapshot() Snapshot {
	snap := Snapshot{
		SessionID:     s.ID,
		Mode:          s.Mode,
		Phase:         s.Phase,
		ResultVisible: s.ResultVisible,
		HasRound:      s.Round != nil,
		Answer:        s.Answer,
		LastCorrect:   s.LastCorrect,
		Milestone:     s.LastMilestone,
		Score:         s.Tally.Score,
		Streak:        s.Tally.Streak,
		Attempts:      s.Attempts,
	}
	if s.Round == nil || s.Phase == PhaseRoundActive {
		return snap
	}

	snap.Revealed = true
	switch r := s.Round.(type) {
	case rounds.RecognitionRound:
		snap.Target = r.Target
	case rounds.ArithmeticRound:
		snap.First = r.First
		snap.Second = r.Second
		snap.Sum = r.Sum
	}
	return snap
}
