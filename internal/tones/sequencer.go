package tones

import (
	"iter"
	"slices"
	"time"
)

const (
	// DefaultToneDuration is how long each cue or feedback tone sounds.
	DefaultToneDuration = 300 * time.Millisecond

	// DefaultArithmeticGap separates the two operand cues of an arithmetic round.
	DefaultArithmeticGap = 800 * time.Millisecond
)

// Instruction schedules one tone relative to the start of its sequence.
type Instruction struct {
	Frequency float64       // Hz
	Start     time.Duration // offset from sequence start, >= 0
	Duration  time.Duration // > 0
}

// End returns the offset at which the instruction stops sounding.
func (in Instruction) End() time.Duration {
	return in.Start + in.Duration
}

// Sequencer turns digit lists into tone schedules.
// It owns no timers; realizing the offsets is the player's job.
type Sequencer struct {
	ToneDuration time.Duration
	Gap          time.Duration // gap between consecutive cues
}

// Default is the sequencer used when nothing is configured.
var Default = Sequencer{
	ToneDuration: DefaultToneDuration,
	Gap:          DefaultArithmeticGap,
}

// All lazily yields one instruction per digit, the i-th starting at i*gap.
func (s Sequencer) All(digits []Digit, gap time.Duration) iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for i, d := range digits {
			in := Instruction{
				Frequency: FrequencyOf(d),
				Start:     time.Duration(i) * gap,
				Duration:  s.ToneDuration,
			}
			if !yield(in) {
				return
			}
		}
	}
}

// Sequence collects All into a slice.
func (s Sequencer) Sequence(digits []Digit, gap time.Duration) []Instruction {
	return slices.Collect(s.All(digits, gap))
}

// Cue schedules digits using the sequencer's own gap.
func (s Sequencer) Cue(digits ...Digit) []Instruction {
	return s.Sequence(digits, s.Gap)
}

// All yields the default schedule for digits.
func All(digits []Digit, gap time.Duration) iter.Seq[Instruction] {
	return Default.All(digits, gap)
}

// Sequence returns the default schedule for digits.
func Sequence(digits []Digit, gap time.Duration) []Instruction {
	return Default.Sequence(digits, gap)
}

// Success is the ascending C major triad played after a correct answer.
func Success() []Instruction {
	return []Instruction{
		{Frequency: 523, Start: 0, Duration: DefaultToneDuration},
		{Frequency: 659, Start: 100 * time.Millisecond, Duration: DefaultToneDuration},
		{Frequency: 784, Start: 200 * time.Millisecond, Duration: DefaultToneDuration},
	}
}

// Failure is the two-step descent played after a wrong answer.
func Failure() []Instruction {
	return []Instruction{
		{Frequency: 300, Start: 0, Duration: DefaultToneDuration},
		{Frequency: 200, Start: 200 * time.Millisecond, Duration: DefaultToneDuration},
	}
}

// End returns the span of seq: the latest end offset of any instruction.
func End(seq []Instruction) time.Duration {
	var end time.Duration
	for _, in := range seq {
		if e := in.End(); e > end {
			end = e
		}
	}
	return end
}
