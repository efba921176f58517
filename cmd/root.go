package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/tonequiz/internal/config"
	"github.com/abhisek/tonequiz/internal/log"
)

// cfg is the configuration resolved by the root command's pre-run.
var cfg = config.Defaults()

// closeLog releases the log file opened by setup, if any.
var closeLog = func() error { return nil }

var rootCmd = &cobra.Command{
	Use:   "tonequiz",
	Short: "Ear-training quiz where every digit has its own tone",
	Long: `tonequiz plays the tone of a digit (Number Game) or of two digits to add
up (Math Game) and asks you to answer from the number pad.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, runOptions{})
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/tonequiz/config.yaml)")
	flags.Bool("debug", false, "Log at debug level (to $XDG_CACHE_HOME/tonequiz/tonequiz.log unless --log-file is set)")
	flags.String("log-file", "", "Write logs to this file")
	flags.Bool("mute", false, "Disable sound")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tonesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, applies flag overrides and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	v := config.NewViper()
	if err := v.BindPFlag("log.debug", flags.Lookup("debug")); err != nil {
		return fmt.Errorf("binding --debug: %w", err)
	}
	if err := v.BindPFlag("log.file", flags.Lookup("log-file")); err != nil {
		return fmt.Errorf("binding --log-file: %w", err)
	}

	path, _ := flags.GetString("config")
	loaded, err := config.Load(v, path)
	if err != nil {
		return err
	}
	if mute, _ := flags.GetBool("mute"); mute {
		loaded.Sound.Enabled = false
	}
	cfg = loaded

	if path := cfg.Log.Path(); path != "" {
		closer, err := log.Init(path, cfg.Log.Debug)
		if err != nil {
			return err
		}
		closeLog = closer
	}
	log.Debug(log.CatConfig, "Configuration loaded",
		"sound", cfg.Sound.Enabled,
		"backend", cfg.Sound.Backend,
		"mode", cfg.Game.Mode,
	)
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	err := closeLog()
	closeLog = func() error { return nil }
	log.SetOutput(io.Discard, false)
	return err
}
