package synth

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/abhisek/tonequiz/internal/log"
	"github.com/abhisek/tonequiz/internal/tones"
)

// Player plays tone schedules. Play is fire-and-forget: it returns at once
// and handles every error internally. Wait blocks until in-flight playback
// has finished.
type Player interface {
	Play(seq []tones.Instruction)
	Wait()
}

// NoopPlayer is a Player that does nothing.
// Use it when sound is disabled or no audio output is available.
type NoopPlayer struct{}

func (NoopPlayer) Play([]tones.Instruction) {}
func (NoopPlayer) Wait()                    {}

// DefaultMaxConcurrent limits simultaneous playbacks. Feedback tones of one
// round may still be sounding when the next round's cues start.
const DefaultMaxConcurrent = 3

// limiter caps concurrent playbacks and tracks them for Wait.
type limiter struct {
	max     int32
	current atomic.Int32
	wg      sync.WaitGroup
}

// acquire reserves a playback slot, reporting false when all are busy.
func (l *limiter) acquire() bool {
	if l.current.Add(1) > l.max {
		l.current.Add(-1)
		return false
	}
	l.wg.Add(1)
	return true
}

func (l *limiter) release() {
	l.current.Add(-1)
	l.wg.Done()
}

// CommandPlayer plays schedules through an OS audio command
// (afplay, paplay, aplay or PowerShell's SoundPlayer).
type CommandPlayer struct {
	renderer *Renderer
	command  string
	args     []string
	limit    limiter

	// run executes the audio command; replaced in tests.
	run func(name string, args ...string) error
}

// NewCommandPlayer detects the platform audio command.
// Check Available before relying on it.
func NewCommandPlayer(r *Renderer, maxConcurrent int) *CommandPlayer {
	cmd, args := detectAudioCommand()
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	log.Debug(log.CatSound, "Command player initialized",
		"audioAvailable", cmd != "",
		"audioCommand", cmd,
		"platform", runtime.GOOS,
	)
	return &CommandPlayer{
		renderer: r,
		command:  cmd,
		args:     args,
		limit:    limiter{max: int32(maxConcurrent)},
		run:      runCommand,
	}
}

// Available reports whether an audio command was found.
func (p *CommandPlayer) Available() bool {
	return p.command != ""
}

// Play renders seq and plays it asynchronously. Does nothing if no audio
// command is available, seq is empty, or the concurrency limit is reached.
func (p *CommandPlayer) Play(seq []tones.Instruction) {
	if !p.Available() || len(seq) == 0 {
		return
	}
	if !p.limit.acquire() {
		log.Debug(log.CatSound, "Concurrent playback limit reached", "tones", len(seq))
		return
	}
	go p.playAsync(seq)
}

// Wait blocks until all started playbacks have finished.
func (p *CommandPlayer) Wait() {
	p.limit.wg.Wait()
}

func (p *CommandPlayer) playAsync(seq []tones.Instruction) {
	defer p.limit.release()

	tmp, err := os.CreateTemp("", "tonequiz-*.wav")
	if err != nil {
		log.ErrorErr(log.CatSound, "Failed to create temp file", err)
		return
	}
	tmpPath := tmp.Name()
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			log.Debug(log.CatSound, "Failed to remove temp file", "path", tmpPath, "error", err)
		}
	}()

	if err := WriteWAV(tmp, p.renderer.Render(seq), p.renderer.SampleRate); err != nil {
		_ = tmp.Close()
		log.ErrorErr(log.CatSound, "Failed to write temp file", err, "path", tmpPath)
		return
	}
	if err := tmp.Close(); err != nil {
		log.ErrorErr(log.CatSound, "Failed to close temp file", err, "path", tmpPath)
		return
	}

	if err := p.run(p.command, p.buildArgs(tmpPath)...); err != nil {
		log.Debug(log.CatSound, "Audio playback failed", "command", p.command, "error", err)
	}
}

// buildArgs returns a fresh argument slice ending in path.
func (p *CommandPlayer) buildArgs(path string) []string {
	if runtime.GOOS == "windows" {
		return []string{"-c", fmt.Sprintf("(New-Object System.Media.SoundPlayer '%s').PlaySync()", path)}
	}
	args := make([]string, len(p.args)+1)
	copy(args, p.args)
	args[len(args)-1] = path
	return args
}

func runCommand(name string, args ...string) error {
	return exec.Command(name, args...).Run() //nolint:gosec // name comes from detectAudioCommand
}

// detectAudioCommand returns the audio command and base arguments for the
// current platform, or "" if none is installed.
func detectAudioCommand() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		if path, err := exec.LookPath("afplay"); err == nil {
			return path, nil
		}
	case "linux":
		// Prefer PulseAudio, fall back to ALSA.
		if path, err := exec.LookPath("paplay"); err == nil {
			return path, nil
		}
		if path, err := exec.LookPath("aplay"); err == nil {
			return path, []string{"-q"}
		}
	case "windows":
		if path, err := exec.LookPath("powershell.exe"); err == nil {
			return path, nil
		}
	}
	return "", nil
}
