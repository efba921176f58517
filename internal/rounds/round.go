package rounds

import (
	"fmt"
	"strings"

	"github.com/abhisek/tonequiz/internal/tones"
)

// Mode selects which kind of round the quiz serves.
type Mode int

const (
	ModeRecognition Mode = iota // identify a single tone
	ModeArithmetic              // add the digits of two tones
)

// AllModes returns the modes in menu order.
func AllModes() []Mode {
	return []Mode{ModeRecognition, ModeArithmetic}
}

func (m Mode) String() string {
	switch m {
	case ModeRecognition:
		return "recognition"
	case ModeArithmetic:
		return "arithmetic"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// DisplayName returns a human-readable label for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeRecognition:
		return "Number Game"
	case ModeArithmetic:
		return "Math Game"
	default:
		return m.String()
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeRecognition || m == ModeArithmetic
}

// ParseMode accepts "recognition" or "arithmetic" (and the older
// "number" / "math" names), case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recognition", "number":
		return ModeRecognition, nil
	case "arithmetic", "math":
		return ModeArithmetic, nil
	default:
		return 0, fmt.Errorf("unknown mode %q: must be recognition or arithmetic", s)
	}
}

// Round is one trial of the quiz. Rounds are values: the next request
// replaces the current round instead of mutating it.
type Round interface {
	// Kind reports which mode produced the round.
	Kind() Mode

	// Digits returns the digits whose tones make up the round's cue.
	Digits() []tones.Digit

	// Expected is the answer that scores the round as correct.
	Expected() int
}

// RecognitionRound asks the learner to name the digit behind one tone.
type RecognitionRound struct {
	Target tones.Digit
}

func (RecognitionRound) Kind() Mode               { return ModeRecognition }
func (r RecognitionRound) Digits() []tones.Digit { return []tones.Digit{r.Target} }
func (r RecognitionRound) Expected() int          { return int(r.Target) }

// ArithmeticRound asks for the sum of the digits behind two tones.
type ArithmeticRound struct {
	First  tones.Digit
	Second tones.Digit
	Sum    int // First + Second, 0-18
}

// NewArithmeticRound builds a round from two validated digits.
func NewArithmeticRound(first, second tones.Digit) (ArithmeticRound, error) {
	if err := first.Validate(); err != nil {
		return ArithmeticRound{}, err
	}
	if err := second.Validate(); err != nil {
		return ArithmeticRound{}, err
	}
	return ArithmeticRound{First: first, Second: second, Sum: int(first) + int(second)}, nil
}

func (ArithmeticRound) Kind() Mode               { return ModeArithmetic }
func (r ArithmeticRound) Digits() []tones.Digit { return []tones.Digit{r.First, r.Second} }
func (r ArithmeticRound) Expected() int          { return r.Sum }

var (
	_ Round = RecognitionRound{}
	_ Round = ArithmeticRound{}
)
