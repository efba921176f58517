package synth

import (
	"fmt"

	"github.com/abhisek/tonequiz/internal/log"
)

// Backend names accepted by Options.Backend.
const (
	BackendAuto    = "auto"
	BackendCommand = "command"
	BackendOto     = "oto"
	BackendNone    = "none"
)

// Options selects and tunes the audio backend.
type Options struct {
	Enabled       bool
	Backend       string
	SampleRate    int
	Volume        float64
	MaxConcurrent int
}

// New builds the player described by opts. It never fails: when the chosen
// backend is unavailable it logs why and falls back to silence, so the quiz
// stays playable without audio.
func New(opts Options) Player {
	if !opts.Enabled || opts.Backend == BackendNone {
		log.Info(log.CatSound, "Sound disabled")
		return NoopPlayer{}
	}

	r := NewRenderer(opts.SampleRate, opts.Volume)
	switch opts.Backend {
	case BackendOto:
		p, err := newOtoPlayer(r, opts.MaxConcurrent)
		if err != nil {
			log.ErrorErr(log.CatSound, "In-process audio unavailable", err)
			return NoopPlayer{}
		}
		return p
	case BackendCommand:
		return commandOrNoop(r, opts.MaxConcurrent)
	case BackendAuto, "":
		if p, err := newOtoPlayer(r, opts.MaxConcurrent); err == nil {
			return p
		}
		return commandOrNoop(r, opts.MaxConcurrent)
	default:
		log.Warn(log.CatSound, "Unknown sound backend", "backend", opts.Backend)
		return NoopPlayer{}
	}
}

func commandOrNoop(r *Renderer, maxConcurrent int) Player {
	p := NewCommandPlayer(r, maxConcurrent)
	if !p.Available() {
		log.Warn(log.CatSound, "No audio player command found")
		return NoopPlayer{}
	}
	return p
}

// ValidBackend reports an error for unknown backend names.
func ValidBackend(name string) error {
	switch name {
	case BackendAuto, BackendCommand, BackendOto, BackendNone:
		return nil
	default:
		return fmt.Errorf("unknown sound backend %q: must be auto, command, oto or none", name)
	}
}
