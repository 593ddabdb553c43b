package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var (
	flagSeconds float64
	flagWidth   float64
	flagHeight  float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with an autopilot",
	Long: `Run the simulation without a screen. The autopilot spins, fires four
times a second and thrusts in two-second bursts. The run ends after --seconds
of game time and reports what was destroyed.

Examples:
  asteroids simulate
  asteroids simulate --seconds 300 --seed 42 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagSeconds, "seconds", 60, "Game time to simulate")
	simulateCmd.Flags().Float64Var(&flagWidth, "width", 800, "Viewport width in world units")
	simulateCmd.Flags().Float64Var(&flagHeight, "height", 600, "Viewport height in world units")
}

// summary is the outcome of a headless run.
type summary struct {
	Steps     int
	Elapsed   float32
	Score     int
	Fired     int
	ShipHits  int
	Destroyed map[asteroids.SizeClass]int
	DiedAt    float32 // negative while the ship survives
	Asteroids int
	Health    int
}

// autopilot spins and fires, thrusting in bursts.
func autopilot(step int, fps int, dt float32) asteroids.Input {
	return asteroids.Input{
		Dt:     dt,
		Left:   true,
		Thrust: (step/(2*fps))%2 == 0,
		Fire:   step%max(fps/4, 1) == 0,
	}
}

func simulate(cfg config.AsteroidsConfig, seed int64, fps int, seconds, width, height float32, logger *log.Logger) (summary, error) {
	if fps <= 0 {
		fps = 60
	}
	dt := 1 / float32(fps)
	sim := asteroids.New(cfg, seed, asteroids.WithLogger(logger))
	sim.SetViewport(width, height)

	// elapsed time stops growing in float32 long before a huge duration is
	// reached, so the run length is fixed up front.
	steps := int(math.Ceil(float64(seconds) * float64(fps)))

	sum := summary{Destroyed: make(map[asteroids.SizeClass]int), DiedAt: -1}
	for step := 0; step < steps; step++ {
		res, err := sim.Step(autopilot(step, fps, dt))
		if err != nil {
			return sum, err
		}
		for _, e := range res.Events {
			switch ev := e.(type) {
			case asteroids.AsteroidDestroyedEvent:
				sum.Destroyed[ev.Size]++
			case asteroids.BulletFiredEvent:
				sum.Fired++
			case asteroids.ShipHitEvent:
				sum.ShipHits++
			case asteroids.ShipDestroyedEvent:
				sum.ShipHits++
				sum.DiedAt = sim.Elapsed()
				logger.Info("ship destroyed", "elapsed", sim.Elapsed(), "score", res.Score)
			}
		}
		sum.Steps++
		sum.Score = res.Score
		sum.Asteroids = res.Asteroids
		sum.Health = res.Health
	}
	sum.Elapsed = sim.Elapsed()
	return sum, nil
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := opts.LoadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := opts.Logger(os.Stderr, "asteroids-sim")
	if err != nil {
		return err
	}
	defer closeLog()

	rc := opts.Runtime(0, 0)
	logger.Info("simulating", "seconds", flagSeconds, "seed", rc.Seed, "fps", rc.TickRate)

	sum, err := simulate(cfg, rc.Seed, rc.TickRate, float32(flagSeconds), float32(flagWidth), float32(flagHeight), logger)
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), sum, rc.Seed)
	return nil
}

func printSummary(w io.Writer, sum summary, seed int64) {
	title := lipgloss.NewStyle().Bold(true)
	fmt.Fprintln(w, title.Render(fmt.Sprintf("Simulated %.1fs in %d steps (seed %d)", sum.Elapsed, sum.Steps, seed)))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SIZE", "DESTROYED")
	total := 0
	for _, size := range []asteroids.SizeClass{asteroids.Small, asteroids.Medium, asteroids.Large} {
		total += sum.Destroyed[size]
		t.Row(size.String(), strconv.Itoa(sum.Destroyed[size]))
	}
	t.Row("total", strconv.Itoa(total))
	fmt.Fprintln(w, t.String())

	fmt.Fprintf(w, "Score:      %d\n", sum.Score)
	fmt.Fprintf(w, "Shots:      %d\n", sum.Fired)
	fmt.Fprintf(w, "Ship hits:  %d\n", sum.ShipHits)
	if sum.DiedAt >= 0 {
		fmt.Fprintf(w, "Ship:       destroyed at %.1fs\n", sum.DiedAt)
	} else {
		fmt.Fprintf(w, "Ship:       alive, health %d\n", sum.Health)
	}
	fmt.Fprintf(w, "Asteroids:  %d on screen\n", sum.Asteroids)
}
