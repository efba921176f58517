//go:build linux

package synth

import "errors"

// The in-process backend needs cgo and ALSA headers on Linux; the command
// backend (paplay/aplay) covers it instead.
func newOtoPlayer(*Renderer, int) (Player, error) {
	return nil, errors.New("in-process audio is not supported on linux")
}
