// Package session implements the quiz state machine: it generates rounds,
// schedules their tone cues, accumulates input and keeps score.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/tonequiz/internal/log"
	"github.com/abhisek/tonequiz/internal/rounds"
	"github.com/abhisek/tonequiz/internal/scoring"
	"github.com/abhisek/tonequiz/internal/tones"
)

var (
	// ErrInvalidTransition is returned when an operation is not valid in the
	// current mode or phase, e.g. InputDigit during a recognition round.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrInvalidMode is returned by SwitchMode for an unknown mode.
	ErrInvalidMode = errors.New("invalid mode")
)

// Player realizes tone schedules. Play must not block: the instruction
// offsets are relative to the call and are honoured by the player.
type Player interface {
	Play(seq []tones.Instruction)
}

// PlayerFunc adapts a function to Player.
type PlayerFunc func(seq []tones.Instruction)

// Play calls f(seq).
func (f PlayerFunc) Play(seq []tones.Instruction) { f(seq) }

type nopPlayer struct{}

func (nopPlayer) Play([]tones.Instruction) {}

// Session is the quiz state machine. It is not safe for concurrent use;
// the host drives it from a single goroutine.
type Session struct {
	state     *SessionState
	generator *rounds.Generator
	sequencer tones.Sequencer
	player    Player
}

// Option configures a Session.
type Option func(*Session)

// WithSource injects the random digit source.
func WithSource(src rounds.Source) Option {
	return func(s *Session) {
		s.generator = rounds.NewGenerator(src)
	}
}

// WithSequencer sets tone duration and arithmetic gap.
func WithSequencer(seq tones.Sequencer) Option {
	return func(s *Session) {
		s.sequencer = seq
	}
}

// WithPlayer sets the tone player. Nil keeps the silent default.
func WithPlayer(p Player) Option {
	return func(s *Session) {
		if p != nil {
			s.player = p
		}
	}
}

// WithMode sets the starting mode. Unknown modes are ignored.
func WithMode(m rounds.Mode) Option {
	return func(s *Session) {
		if m.Valid() {
			s.state.Mode = m
		}
	}
}

// New creates a session in recognition mode, idle, with a zero tally.
func New(opts ...Option) *Session {
	s := &Session{
		state:     NewSessionState(uuid.New().String(), rounds.ModeRecognition),
		generator: rounds.NewGenerator(nil),
		sequencer: tones.Default,
		player:    nopPlayer{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	log.Info(log.CatSession, "Session started", "session", s.state.ID, "mode", s.state.Mode)
	return s
}

// Snapshot returns the current view of the session.
func (s *Session) Snapshot() Snapshot {
	return s.state.snapshot()
}

// reject builds an ErrInvalidTransition for op and logs it.
func (s *Session) reject(op string) (Snapshot, error) {
	err := fmt.Errorf("%w: %s in %s mode during %s", ErrInvalidTransition, op, s.state.Mode, s.state.Phase)
	log.Warn(log.CatSession, "Rejected operation", "session", s.state.ID, "op", op, "error", err)
	return s.Snapshot(), err
}

// SwitchMode moves to mode m and returns to idle. The round, pending answer
// and result are cleared; score and streak are kept.
func (s *Session) SwitchMode(m rounds.Mode) (Snapshot, error) {
	if !m.Valid() {
		return s.Snapshot(), fmt.Errorf("%w: %v", ErrInvalidMode, m)
	}
	s.state.Mode = m
	s.state.Phase = PhaseIdle
	s.state.Round = nil
	s.state.Answer = rounds.ClearAnswer()
	s.state.ResultVisible = false
	s.state.LastMilestone = false
	log.Debug(log.CatSession, "Mode switched", "session", s.state.ID, "mode", m)
	return s.Snapshot(), nil
}

// RequestNewRound generates a round for the current mode and plays its cues.
// Valid from idle or while a result is shown.
func (s *Session) RequestNewRound() (Snapshot, error) {
	if s.state.Phase == PhaseRoundActive {
		return s.reject("RequestNewRound")
	}

	r, err := s.generator.Next(s.state.Mode)
	if err != nil {
		return s.Snapshot(), fmt.Errorf("new round: %w", err)
	}

	s.state.Round = r
	s.state.Phase = PhaseRoundActive
	s.state.Answer = rounds.ClearAnswer()
	s.state.ResultVisible = false
	s.state.LastMilestone = false

	cues := rounds.Cues(r, s.sequencer)
	log.Debug(log.CatSession, "Round started", "session", s.state.ID, "mode", s.state.Mode, "cues", len(cues))
	s.player.Play(cues)
	return s.Snapshot(), nil
}

// ReplayCues plays the active round's cues again without changing state.
func (s *Session) ReplayCues() (Snapshot, error) {
	if s.state.Phase != PhaseRoundActive {
		return s.reject("ReplayCues")
	}
	s.player.Play(rounds.Cues(s.state.Round, s.sequencer))
	return s.Snapshot(), nil
}

// SelectDigit answers a recognition round with d and shows the result.
func (s *Session) SelectDigit(d tones.Digit) (Snapshot, error) {
	if err := d.Validate(); err != nil {
		return s.Snapshot(), fmt.Errorf("select digit: %w", err)
	}
	r, ok := s.state.Round.(rounds.RecognitionRound)
	if !ok || s.state.Mode != rounds.ModeRecognition || s.state.Phase != PhaseRoundActive {
		return s.reject("SelectDigit")
	}

	s.state.Answer = rounds.Append(rounds.ClearAnswer(), d)
	s.settle(scoring.Evaluate(int(d), r.Expected(), s.state.Tally))
	return s.Snapshot(), nil
}

// InputDigit appends d to the pending arithmetic answer and plays d's tone.
func (s *Session) InputDigit(d tones.Digit) (Snapshot, error) {
	if err := d.Validate(); err != nil {
		return s.Snapshot(), fmt.Errorf("input digit: %w", err)
	}
	if !s.acceptingArithmeticInput() {
		return s.reject("InputDigit")
	}

	s.state.Answer = rounds.Append(s.state.Answer, d)
	s.player.Play(s.sequencer.Cue(d))
	return s.Snapshot(), nil
}

// ClearInput empties the pending arithmetic answer.
func (s *Session) ClearInput() (Snapshot, error) {
	if !s.acceptingArithmeticInput() {
		return s.reject("ClearInput")
	}
	s.state.Answer = rounds.ClearAnswer()
	return s.Snapshot(), nil
}

// SubmitAnswer judges the pending answer against the round's sum.
// An empty or malformed answer is judged wrong rather than rejected.
func (s *Session) SubmitAnswer() (Snapshot, error) {
	if !s.acceptingArithmeticInput() {
		return s.reject("SubmitAnswer")
	}
	if _, err := s.state.Answer.Int(); err != nil {
		log.Debug(log.CatSession, "Submitting unparseable answer", "session", s.state.ID, "answer", s.state.Answer, "error", err)
	}
	s.settle(scoring.EvaluateAnswer(s.state.Answer, s.state.Round.Expected(), s.state.Tally))
	return s.Snapshot(), nil
}

// PressDigit routes a number-pad press: in recognition mode it answers the
// round, in arithmetic mode it extends the pending answer.
func (s *Session) PressDigit(d tones.Digit) (Snapshot, error) {
	if s.state.Mode == rounds.ModeArithmetic {
		return s.InputDigit(d)
	}
	return s.SelectDigit(d)
}

// DismissResult hides the result and returns to idle. The finished round is
// kept so its digits stay visible until the next request.
func (s *Session) DismissResult() (Snapshot, error) {
	if s.state.Phase != PhaseResultShown {
		return s.reject("DismissResult")
	}
	s.state.Phase = PhaseIdle
	s.state.ResultVisible = false
	return s.Snapshot(), nil
}

func (s *Session) acceptingArithmeticInput() bool {
	_, ok := s.state.Round.(rounds.ArithmeticRound)
	return ok && s.state.Mode == rounds.ModeArithmetic && s.state.Phase == PhaseRoundActive
}

// settle records a judged outcome, shows the result and plays feedback.
func (s *Session) settle(out scoring.Outcome) {
	s.state.Tally = out.Tally
	s.state.LastCorrect = out.Correct
	s.state.LastMilestone = out.Milestone
	s.state.Attempts++
	s.state.Phase = PhaseResultShown
	s.state.ResultVisible = true

	log.Debug(log.CatSession, "Round judged",
		"session", s.state.ID,
		"mode", s.state.Mode,
		"correct", out.Correct,
		"score", out.Tally.Score,
		"streak", out.Tally.Streak,
	)
	s.player.Play(out.Feedback)
}
