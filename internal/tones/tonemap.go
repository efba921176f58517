package tones

// frequencies maps each digit to its cue frequency in Hz.
// Linearly spaced 50 Hz apart so neighbouring digits stay distinguishable.
var frequencies = [...]float64{200, 250, 300, 350, 400, 450, 500, 550, 600, 650}

// FrequencyOf returns the cue frequency for d.
// Callers validate d first; an out-of-range digit panics like any bad index.
func FrequencyOf(d Digit) float64 {
	return frequencies[d]
}

// DigitOf returns the digit whose cue frequency is exactly hz.
func DigitOf(hz float64) (Digit, bool) {
	for i, f := range frequencies {
		if f == hz {
			return Digit(i), true
		}
	}
	return 0, false
}
