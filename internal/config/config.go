// Package config provides configuration types, defaults and loading for tonequiz.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/tonequiz/internal/rounds"
	"github.com/abhisek/tonequiz/internal/synth"
	"github.com/abhisek/tonequiz/internal/tones"
)

// EnvPrefix prefixes environment overrides, e.g. TONEQUIZ_SOUND_ENABLED.
const EnvPrefix = "TONEQUIZ"

// Config holds all configuration options for tonequiz.
type Config struct {
	Sound SoundConfig `mapstructure:"sound" yaml:"sound"`
	Tones ToneConfig  `mapstructure:"tones" yaml:"tones"`
	Game  GameConfig  `mapstructure:"game" yaml:"game"`
	Log   LogConfig   `mapstructure:"log" yaml:"log"`
}

// SoundConfig selects and tunes audio output.
type SoundConfig struct {
	Enabled       bool    `mapstructure:"enabled" yaml:"enabled"`
	Backend       string  `mapstructure:"backend" yaml:"backend"` // auto, command, oto or none
	Volume        float64 `mapstructure:"volume" yaml:"volume"`
	SampleRate    int     `mapstructure:"sample_rate" yaml:"sample_rate"`
	MaxConcurrent int     `mapstructure:"max_concurrent" yaml:"max_concurrent"`
}

// ToneConfig controls cue timing.
type ToneConfig struct {
	Duration      time.Duration `mapstructure:"duration" yaml:"duration"`
	ArithmeticGap time.Duration `mapstructure:"arithmetic_gap" yaml:"arithmetic_gap"`
}

// GameConfig holds quiz settings.
type GameConfig struct {
	Mode string `mapstructure:"mode" yaml:"mode"` // recognition or arithmetic
}

// LogConfig holds logging settings. Logging is off unless File is set or
// Debug is on.
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Debug bool   `mapstructure:"debug" yaml:"debug"`
}

// Path returns the file to log to: File if set, DefaultLogPath in debug
// mode, or "" when logging is off.
func (l LogConfig) Path() string {
	if l.File != "" {
		return l.File
	}
	if l.Debug {
		return DefaultLogPath()
	}
	return ""
}

// Defaults returns a Config with the stock settings.
func Defaults() Config {
	return Config{
		Sound: SoundConfig{
			Enabled:       true,
			Backend:       synth.BackendAuto,
			Volume:        synth.DefaultVolume,
			SampleRate:    synth.DefaultSampleRate,
			MaxConcurrent: synth.DefaultMaxConcurrent,
		},
		Tones: ToneConfig{
			Duration:      tones.DefaultToneDuration,
			ArithmeticGap: tones.DefaultArithmeticGap,
		},
		Game: GameConfig{
			Mode: rounds.ModeRecognition.String(),
		},
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	var errs []error
	if err := synth.ValidBackend(c.Sound.Backend); err != nil {
		errs = append(errs, fmt.Errorf("sound.backend: %w", err))
	}
	if c.Sound.Volume <= 0 || c.Sound.Volume > 1 {
		errs = append(errs, fmt.Errorf("sound.volume: %v not in (0, 1]", c.Sound.Volume))
	}
	if c.Sound.SampleRate < 8000 {
		errs = append(errs, fmt.Errorf("sound.sample_rate: %d below 8000", c.Sound.SampleRate))
	}
	if c.Sound.MaxConcurrent < 1 {
		errs = append(errs, fmt.Errorf("sound.max_concurrent: must be at least 1"))
	}
	if c.Tones.Duration <= 0 {
		errs = append(errs, fmt.Errorf("tones.duration: must be positive"))
	}
	if c.Tones.ArithmeticGap < 0 {
		errs = append(errs, fmt.Errorf("tones.arithmetic_gap: must not be negative"))
	}
	if _, err := rounds.ParseMode(c.Game.Mode); err != nil {
		errs = append(errs, fmt.Errorf("game.mode: %w", err))
	}
	return errors.Join(errs...)
}

// Sequencer returns the cue timing described by c.
func (c Config) Sequencer() tones.Sequencer {
	return tones.Sequencer{ToneDuration: c.Tones.Duration, Gap: c.Tones.ArithmeticGap}
}

// SynthOptions returns the audio options described by c.
func (c Config) SynthOptions() synth.Options {
	return synth.Options{
		Enabled:       c.Sound.Enabled,
		Backend:       c.Sound.Backend,
		SampleRate:    c.Sound.SampleRate,
		Volume:        c.Sound.Volume,
		MaxConcurrent: c.Sound.MaxConcurrent,
	}
}

// Mode returns the configured starting mode.
func (c Config) Mode() rounds.Mode {
	m, err := rounds.ParseMode(c.Game.Mode)
	if err != nil {
		return rounds.ModeRecognition
	}
	return m
}

// DefaultPath returns $XDG_CONFIG_HOME/tonequiz/config.yaml, falling back to
// ~/.config/tonequiz/config.yaml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tonequiz", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tonequiz", "config.yaml")
}

// DefaultLogPath returns $XDG_CACHE_HOME/tonequiz/tonequiz.log, falling back
// to the user cache directory and then the temp directory.
func DefaultLogPath() string {
	dir := os.Getenv("XDG_CACHE_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserCacheDir(); err != nil {
			dir = os.TempDir()
		}
	}
	return filepath.Join(dir, "tonequiz", "tonequiz.log")
}

// NewViper returns a viper instance seeded with Defaults and TONEQUIZ_*
// environment overrides.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault("sound.enabled", d.Sound.Enabled)
	v.SetDefault("sound.backend", d.Sound.Backend)
	v.SetDefault("sound.volume", d.Sound.Volume)
	v.SetDefault("sound.sample_rate", d.Sound.SampleRate)
	v.SetDefault("sound.max_concurrent", d.Sound.MaxConcurrent)
	v.SetDefault("tones.duration", d.Tones.Duration)
	v.SetDefault("tones.arithmetic_gap", d.Tones.ArithmeticGap)
	v.SetDefault("game.mode", d.Game.Mode)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.debug", d.Log.Debug)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from path. An empty path uses DefaultPath; a
// missing file at the default path is not an error, a missing explicit
// path is.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = NewViper()
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# tonequiz configuration

sound:
  enabled: true
  # auto tries in-process audio first, then an OS player command.
  # One of: auto, command, oto, none
  backend: auto
  volume: 0.3
  sample_rate: 44100
  max_concurrent: 3

tones:
  duration: 300ms
  # Offset between the two operand cues of a Math Game round.
  arithmetic_gap: 800ms

game:
  # recognition (Number Game) or arithmetic (Math Game)
  mode: recognition

log:
  # file: /tmp/tonequiz.log
  debug: false
`
}

// WriteDefaultConfig creates a config file at path with default settings and
// comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
