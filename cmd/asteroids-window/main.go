// asteroids-window plays the asteroids game in a desktop window.
//
// It takes the same global flags as the terminal binary, plus the
// initial window size and --mute.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/cli"
	"github.com/vovakirdan/tui-asteroids/internal/platform/window"
)

var (
	opts       cli.Options
	flagWidth  int
	flagHeight int
	flagMute   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids-window",
	Short: "Asteroids in a desktop window",
	Long: `Play asteroids in a resizable window. One pixel is one world unit, so a
larger window gives the ship more room.

Controls:
  W/Up, A/Left, D/Right  - Thrust and turn
  Space                  - Fire
  Enter                  - Start
  P/Esc                  - Pause
  R                      - Restart (after game over)
  Q                      - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	opts.Bind(rootCmd)
	rootCmd.Flags().IntVar(&flagWidth, "width", 960, "Initial window width in pixels")
	rootCmd.Flags().IntVar(&flagHeight, "height", 720, "Initial window height in pixels")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func run(_ *cobra.Command, _ []string) error {
	cfg, err := opts.LoadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := opts.Logger(os.Stderr, "asteroids-window")
	if err != nil {
		return err
	}
	defer closeLog()

	rc := opts.Runtime(flagWidth, flagHeight)
	winOpts := window.Options{Logger: logger}
	if sm := cli.StartSound(flagMute, logger); sm != nil {
		defer sm.Cleanup()
		winOpts.Sound = sm
	}

	logger.Info("opening window", "width", flagWidth, "height", flagHeight, "seed", rc.Seed, "tps", rc.TickRate)
	return window.Run(window.New(cfg, rc, winOpts), rc.TickRate)
}
