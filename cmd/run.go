package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/tonequiz/internal/app"
	"github.com/abhisek/tonequiz/internal/rounds"
	"github.com/abhisek/tonequiz/internal/session"
	"github.com/abhisek/tonequiz/internal/synth"
)

// runOptions selects how the TUI starts.
type runOptions struct {
	// Mode overrides the configured mode when set.
	Mode *rounds.Mode

	// Direct skips the splash and menu.
	Direct bool
}

// runApp builds the audio player and the session, then launches the TUI.
func runApp(cmd *cobra.Command, opts runOptions) error {
	mode := cfg.Mode()
	if opts.Mode != nil {
		mode = *opts.Mode
	}

	player := synth.New(cfg.SynthOptions())
	s := session.New(
		session.WithPlayer(player),
		session.WithSequencer(cfg.Sequencer()),
		session.WithMode(mode),
	)

	return app.Run(app.Options{
		Session:    s,
		Player:     player,
		SkipSplash: opts.Direct,
		Direct:     opts.Direct,
	})
}
