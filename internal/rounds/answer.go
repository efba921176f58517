package rounds

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/abhisek/tonequiz/internal/tones"
)

var (
	// ErrEmptyAnswer is returned when no digits have been entered.
	ErrEmptyAnswer = errors.New("empty answer")

	// ErrMalformedAnswer is returned when the pending answer is not a
	// representable integer.
	ErrMalformedAnswer = errors.New("malformed answer")
)

// NoAnswer is the submitted value for an empty or malformed answer.
// Expected answers are never negative, so it always scores as wrong.
const NoAnswer = -1

// Answer is the learner's pending input, kept as typed ("09" stays "09").
type Answer string

// Append returns a with d added at the end. Concatenation, not addition.
func Append(a Answer, d tones.Digit) Answer {
	return a + Answer(d.String())
}

// ClearAnswer returns the empty answer.
func ClearAnswer() Answer {
	return ""
}

// Empty reports whether no digits have been entered.
func (a Answer) Empty() bool {
	return a == ""
}

// Int parses the answer as a base-10 integer.
func (a Answer) Int() (int, error) {
	if a.Empty() {
		return 0, ErrEmptyAnswer
	}
	n, err := strconv.Atoi(string(a))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAnswer, string(a))
	}
	return n, nil
}

// Submitted returns the parsed answer, or NoAnswer if it cannot be parsed.
func (a Answer) Submitted() int {
	n, err := a.Int()
	if err != nil {
		return NoAnswer
	}
	return n
}

func (a Answer) String() string {
	return string(a)
}
