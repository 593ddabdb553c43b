// Package asteroids implements the asteroids simulation: procedural rocks,
// polygon collision, splitting, a time-driven spawn curve and the player ship.
// Game wraps the Simulation for character-cell hosts.
package asteroids

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Phase is the host-level game phase.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Game drives a Simulation from fixed-rate terminal ticks.
type Game struct {
	cfg     config.AsteroidsConfig
	logger  *log.Logger
	runtime core.RuntimeConfig

	sim    *Simulation
	phase  Phase
	paused bool
	best   int
	final  int // score at the moment the ship was lost
}

// NewGame creates a game on the title screen. A nil logger discards output.
func NewGame(cfg config.AsteroidsConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, logger: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset starts a fresh simulation sized to the screen. The phase is kept,
// except that a finished game returns to play.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.sim = New(g.cfg, rc.Seed, WithLogger(g.logger))
	g.Resize(rc.ScreenW, rc.ScreenH)
	g.paused = false
	g.final = 0
	if g.phase == PhaseGameOver {
		g.phase = PhasePlaying
	}
	g.logger.Info("game reset", "seed", rc.Seed, "cols", rc.ScreenW, "rows", rc.ScreenH)
}

// Resize maps a new terminal size onto the viewport without restarting.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW, g.runtime.ScreenH = cols, rows
	if g.sim != nil {
		g.sim.SetViewport(float32(cols)*g.cfg.Terminal.CellWidth, float32(rows)*g.cfg.Terminal.CellHeight)
	}
}

// Simulation returns the running simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Step advances the game by one fixed tick.
// The title screen waits for Confirm or Fire; game over waits for Restart
// while asteroids keep drifting.
func (g *Game) Step(in core.InputFrame) (StepResult, error) {
	if g.sim == nil {
		return StepResult{}, errors.New("asteroids: step before reset")
	}

	switch g.phase {
	case PhaseMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.phase = PhasePlaying
			g.logger.Info("game started")
		}
		return StepResult{}, nil
	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			rc := g.runtime
			rc.Seed++
			g.Reset(rc)
			return StepResult{}, nil
		}
	}

	if in.Has(core.ActionPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return StepResult{}, nil
	}

	playing := g.phase == PhasePlaying
	res, err := g.sim.Step(Input{
		Dt:     g.runtime.DeltaTime(),
		Thrust: playing && in.Has(core.ActionThrust),
		Left:   playing && in.Has(core.ActionRotateLeft),
		Right:  playing && in.Has(core.ActionRotateRight),
		Fire:   playing && in.Has(core.ActionFire),
	})
	if err != nil {
		return StepResult{}, err
	}

	if !playing {
		return res, nil
	}
	g.best = max(g.best, res.Score)
	if !res.ShipAlive {
		g.phase = PhaseGameOver
		g.final = res.Score
		g.logger.Info("game over", "score", res.Score, "elapsed", g.sim.Elapsed())
	}
	return res, nil
}

// Best returns the highest score reached since the game was created.
func (g *Game) Best() int {
	return g.best
}

// Score returns the score shown to the player. It stops changing once the
// game is over, even though bullets still in flight keep hitting asteroids.
func (g *Game) Score() int {
	if g.phase == PhaseGameOver {
		return g.final
	}
	if g.sim == nil {
		return 0
	}
	return g.sim.Score()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
	st.Score = g.Score()
	if g.sim != nil {
		if ship, ok := g.sim.Ship(); ok {
			st.Health = ship.Health
		}
	}
	return st
}
