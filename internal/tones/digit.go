package tones

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidDigit is returned when a digit falls outside 0-9.
var ErrInvalidDigit = errors.New("invalid digit")

// Digit is a single decimal digit in the range 0-9.
type Digit int

// MinDigit and MaxDigit bound the valid digit range.
const (
	MinDigit Digit = 0
	MaxDigit Digit = 9
)

// Valid reports whether d is within 0-9.
func (d Digit) Valid() bool {
	return d >= MinDigit && d <= MaxDigit
}

// Validate returns ErrInvalidDigit (wrapped) if d is out of range.
func (d Digit) Validate() error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDigit, int(d))
	}
	return nil
}

func (d Digit) String() string {
	return strconv.Itoa(int(d))
}

// ParseDigit converts a single character such as "7" into a Digit.
func ParseDigit(s string) (Digit, error) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDigit, s)
	}
	return Digit(s[0] - '0'), nil
}

// AllDigits returns 0 through 9 in order.
func AllDigits() []Digit {
	out := make([]Digit, 0, int(MaxDigit)+1)
	for d := MinDigit; d <= MaxDigit; d++ {
		out = append(out, d)
	}
	return out
}
