// asteroids is a terminal asteroids shooter.
//
// Usage:
//
//	asteroids play           - Play in this terminal
//	asteroids serve          - Start SSH server for remote play
//	asteroids simulate       - Run a headless game with an autopilot
//	asteroids config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load tunables from a YAML file
//	--difficulty <name>   - Spawn curve preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/cli"
)

var opts cli.Options

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - shoot rocks in your terminal",
	Long: `Asteroids is a terminal take on the classic shooter: rocks drift in from
the edges, split when shot and get faster the longer you survive.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  simulate  - Run a headless game with an autopilot
  config    - Print the effective configuration

Examples:
  asteroids play
  asteroids play --difficulty hard --mute
  asteroids serve --ssh :2222
  asteroids simulate --seconds 120 --seed 7
  asteroids config > my-asteroids.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	opts.Bind(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
