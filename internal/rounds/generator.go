package rounds

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/tonequiz/internal/tones"
)

// Source returns a uniformly distributed integer in [0,9].
type Source func() int

// SystemSource draws digits from math/rand/v2's auto-seeded generator.
func SystemSource() int {
	return rand.IntN(int(tones.MaxDigit) + 1) //nolint:gosec // quiz digits, not security-critical
}

// SequenceSource replays the given values in order, wrapping around.
// Useful for deterministic rounds in tests and demos.
func SequenceSource(values ...int) Source {
	i := 0
	return func() int {
		if len(values) == 0 {
			return 0
		}
		v := values[i%len(values)]
		i++
		return v
	}
}

// Generator produces new rounds from an injected random source.
type Generator struct {
	src Source
}

// NewGenerator creates a generator. A nil source falls back to SystemSource.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = SystemSource
	}
	return &Generator{src: src}
}

// draw pulls one digit from the source, failing on out-of-range values.
func (g *Generator) draw() (tones.Digit, error) {
	d := tones.Digit(g.src())
	if err := d.Validate(); err != nil {
		return 0, fmt.Errorf("random source: %w", err)
	}
	return d, nil
}

// NewRecognition draws a single target digit.
func (g *Generator) NewRecognition() (RecognitionRound, error) {
	d, err := g.draw()
	if err != nil {
		return RecognitionRound{}, err
	}
	return RecognitionRound{Target: d}, nil
}

// NewArithmetic draws two independent digits and their sum.
func (g *Generator) NewArithmetic() (ArithmeticRound, error) {
	first, err := g.draw()
	if err != nil {
		return ArithmeticRound{}, err
	}
	second, err := g.draw()
	if err != nil {
		return ArithmeticRound{}, err
	}
	return NewArithmeticRound(first, second)
}

// Next produces a round of the given mode.
func (g *Generator) Next(mode Mode) (Round, error) {
	switch mode {
	case ModeRecognition:
		return g.NewRecognition()
	case ModeArithmetic:
		return g.NewArithmetic()
	default:
		return nil, fmt.Errorf("generate round: unknown mode %v", mode)
	}
}

// Cues schedules the tones announcing r. Arithmetic operands are separated
// by the sequencer's gap.
func Cues(r Round, seq tones.Sequencer) []tones.Instruction {
	if r == nil {
		return nil
	}
	return seq.Cue(r.Digits()...)
}
