package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/tonequiz/internal/log"
	"github.com/abhisek/tonequiz/internal/synth"
	"github.com/abhisek/tonequiz/internal/tones"
)

var tonesCmd = &cobra.Command{
	Use:   "tones [digit...]",
	Short: "Show, export or play digit tones",
	Long: `Without arguments, print the digit-to-frequency table.

With digits, print the schedule that plays them one after another, the way a
Math Game round plays its two operands. --out writes the schedule as a WAV
file and --play plays it.

The special arguments "success" and "failure" select the feedback jingles.`,
	Example: `  tonequiz tones
  tonequiz tones 4 5 --play
  tonequiz tones success --out success.wav`,
	RunE: runTones,
}

func init() {
	f := tonesCmd.Flags()
	f.Duration("gap", 0, "Offset between consecutive digits (default from config)")
	f.String("out", "", "Write the schedule to this WAV file")
	f.Bool("play", false, "Play the schedule and wait for it to finish")
}

func runTones(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		return printToneTable(out)
	}

	seq, err := scheduleFor(cmd, args)
	if err != nil {
		return err
	}
	printSchedule(out, seq)

	if path, _ := cmd.Flags().GetString("out"); path != "" {
		if err := writeWAV(path, seq); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s (%s)\n", path, tones.End(seq))
	}

	if play, _ := cmd.Flags().GetBool("play"); play {
		p := synth.New(cfg.SynthOptions())
		p.Play(seq)
		p.Wait()
	}
	return nil
}

// scheduleFor turns the arguments into a tone schedule: a feedback jingle or
// a sequence of digit cues.
func scheduleFor(cmd *cobra.Command, args []string) ([]tones.Instruction, error) {
	if len(args) == 1 {
		switch args[0] {
		case "success":
			return tones.Success(), nil
		case "failure":
			return tones.Failure(), nil
		}
	}

	digits := make([]tones.Digit, 0, len(args))
	for _, a := range args {
		d, err := tones.ParseDigit(a)
		if err != nil {
			return nil, err
		}
		digits = append(digits, d)
	}

	seq := cfg.Sequencer()
	gap := seq.Gap
	if cmd.Flags().Changed("gap") {
		gap, _ = cmd.Flags().GetDuration("gap")
		if gap < 0 {
			return nil, fmt.Errorf("--gap must not be negative")
		}
	}
	return seq.Sequence(digits, gap), nil
}

func printToneTable(w io.Writer) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("DIGIT", "FREQUENCY")
	for _, d := range tones.AllDigits() {
		t.Row(d.String(), fmt.Sprintf("%.0f Hz", tones.FrequencyOf(d)))
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func printSchedule(w io.Writer, seq []tones.Instruction) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("START", "FREQUENCY", "DIGIT", "DURATION")
	for _, in := range seq {
		digit := "-"
		if d, ok := tones.DigitOf(in.Frequency); ok {
			digit = d.String()
		}
		t.Row(
			in.Start.String(),
			strconv.FormatFloat(in.Frequency, 'f', 0, 64)+" Hz",
			digit,
			in.Duration.Round(time.Millisecond).String(),
		)
	}
	fmt.Fprintln(w, t.String())
}

func writeWAV(path string, seq []tones.Instruction) error {
	r := synth.NewRenderer(cfg.Sound.SampleRate, cfg.Sound.Volume)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := synth.WriteWAV(f, r.Render(seq), r.SampleRate); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	log.Info(log.CatSound, "Wrote WAV", "path", path, "tones", len(seq))
	return nil
}
