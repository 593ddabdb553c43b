// Package cli holds the flags and wiring shared by the asteroids binaries.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/audio"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Options are the global flags of every command.
type Options struct {
	FPS        int
	Seed       int64
	ConfigPath string
	Difficulty string
	LogLevel   string
	LogFile    string
}

// Bind registers the options as persistent flags on cmd.
func (o *Options) Bind(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.IntVar(&o.FPS, "fps", 60, "Tick rate (frames per second)")
	fs.Int64Var(&o.Seed, "seed", 0, "RNG seed (0 = random based on time)")
	fs.StringVar(&o.ConfigPath, "config", "", "Path to custom game config YAML")
	fs.StringVar(&o.Difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	fs.StringVar(&o.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&o.LogFile, "log-file", "", "Append logs to this file")
}

// LoadConfig loads the game tunables and applies the difficulty preset,
// if one was given.
func (o *Options) LoadConfig() (config.AsteroidsConfig, error) {
	cfg, err := config.LoadAsteroids(o.ConfigPath)
	if err != nil {
		return config.AsteroidsConfig{}, err
	}
	if o.Difficulty != "" {
		preset, err := config.ParseDifficulty(o.Difficulty)
		if err != nil {
			return config.AsteroidsConfig{}, err
		}
		config.ApplyAsteroidsPreset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		return config.AsteroidsConfig{}, err
	}
	return cfg, nil
}

// Logger builds the command logger. Records go to --log-file when set and
// to fallback otherwise. The returned close func is never nil.
func (o *Options) Logger(fallback io.Writer, prefix string) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("cli: %w", err)
	}

	out, closeFn := fallback, func() error { return nil }
	if o.LogFile != "" {
		f, err := os.OpenFile(o.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cli: open log file: %w", err)
		}
		out, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// Runtime returns the runtime config for a screen of the given size.
// A zero seed is replaced by the current time.
func (o *Options) Runtime(width, height int) core.RuntimeConfig {
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: o.FPS,
		Seed:     seed,
	}
}

// StartSound opens the audio device. It returns nil when muted or when no
// device is available; the game then runs silently.
func StartSound(mute bool, logger *log.Logger) *audio.SoundManager {
	if mute {
		return nil
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing without sound", "err", err)
		return nil
	}
	return sm
}
