package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/cli"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  W/Up         - Thrust
  A/Left       - Turn left
  D/Right      - Turn right
  Space        - Fire
  Enter        - Start
  P/Esc        - Pause
  R            - Restart (after game over)
  M            - Toggle sound
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Logs are discarded unless --log-file is set, so they never draw over the game.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := opts.LoadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := opts.Logger(io.Discard, "asteroids")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rc := opts.Runtime(width, height)

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tuiOpts := tui.Options{Logger: logger}
	if sm := cli.StartSound(flagMute, logger); sm != nil {
		defer sm.Cleanup()
		tuiOpts.Sound = sm
	}

	logger.Info("starting game", "cols", width, "rows", height, "seed", rc.Seed, "fps", rc.TickRate)
	if err := tui.Run(ctx, asteroids.NewGame(cfg, logger), rc, tuiOpts); err != nil {
		logger.Error("game ended with error", "err", err)
		return err
	}
	return nil
}

// cmdContext returns the command context, or Background when run outside Execute.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
