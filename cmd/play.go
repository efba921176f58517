package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/tonequiz/internal/rounds"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into a game",
	Long: `Start a game without the splash screen and menu.

Modes: recognition (alias: number) or arithmetic (alias: math).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions{Direct: true}
		if cmd.Flags().Changed("mode") {
			name, _ := cmd.Flags().GetString("mode")
			m, err := rounds.ParseMode(name)
			if err != nil {
				return err
			}
			opts.Mode = &m
		}
		return runApp(cmd, opts)
	},
}

func init() {
	playCmd.Flags().StringP("mode", "m", "", "Game mode: recognition|number or arithmetic|math")
}
