package asteroids

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func newTestGame(t *testing.T) (*Game, *core.Screen) {
	t.Helper()
	g := NewGame(config.DefaultAsteroidsConfig(), nil)
	rc := core.DefaultConfig()
	rc.Seed = 3
	g.Reset(rc)
	return g, core.NewScreen(rc.ScreenW, rc.ScreenH)
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func stepGame(t *testing.T, g *Game, in core.InputFrame) StepResult {
	t.Helper()
	res, err := g.Step(in)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	return res
}

func TestGameViewportFromScreen(t *testing.T) {
	g, _ := newTestGame(t)
	vp := g.Simulation().Viewport()
	if vp.Width != 400 || vp.Height != 240 {
		t.Errorf("viewport = %vx%v, expected 400x240 for 80x24 cells", vp.Width, vp.Height)
	}

	g.Resize(100, 30)
	vp = g.Simulation().Viewport()
	if vp.Width != 500 || vp.Height != 300 {
		t.Errorf("viewport after resize = %vx%v, expected 500x300", vp.Width, vp.Height)
	}
}

// Bullets still in flight after the ship is lost keep clearing asteroids,
// but the score shown on the game over screen stays where it was.
func TestGameOverFreezesScore(t *testing.T) {
	g, screen := newTestGame(t)
	stepGame(t, g, frame(core.ActionConfirm))

	setShipHealth(g.sim, 10)
	placeAsteroid(g.sim, Large, core.Point{0, 10}, square(6))
	stepGame(t, g, frame())
	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase after fatal hit = %s, expected game over", g.Phase())
	}
	final := g.Score()

	placeAsteroid(g.sim, Small, core.Point{200, 200}, square(4))
	placeBullet(g.sim, core.Point{200, 194})
	res := stepGame(t, g, frame())
	if got := countEvents[AsteroidDestroyedEvent](res.Events); got != 1 {
		t.Fatalf("AsteroidDestroyedEvent count = %d, expected 1", got)
	}
	if g.sim.Score() <= final {
		t.Fatalf("simulation score = %d, expected it to pass %d", g.sim.Score(), final)
	}

	if got := g.State().Score; got != final {
		t.Errorf("State().Score = %d, expected %d", got, final)
	}
	if g.Best() != final {
		t.Errorf("Best() = %d, expected %d", g.Best(), final)
	}
	g.Render(screen)
	want := fmt.Sprintf("Score: %d  |  Best: %d", final, final)
	if !strings.Contains(screen.String(), want) {
		t.Errorf("game over box missing %q", want)
	}
}

func TestGamePhases(t *testing.T) {
	g, screen := newTestGame(t)

	if g.Phase() != PhaseMenu {
		t.Fatalf("initial phase = %s, expected menu", g.Phase())
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "A S T E R O I D S") {
		t.Error("title screen not rendered")
	}

	stepGame(t, g, frame())
	if g.Phase() != PhaseMenu {
		t.Fatal("title screen should wait for input")
	}

	stepGame(t, g, frame(core.ActionConfirm))
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase after confirm = %s, expected playing", g.Phase())
	}

	setShipHealth(g.sim, 10)
	placeAsteroid(g.sim, Large, core.Point{0, 10}, square(6))
	stepGame(t, g, frame())
	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase after fatal hit = %s, expected game over", g.Phase())
	}
	if st := g.State(); !st.GameOver || st.Health != 0 {
		t.Errorf("State() = %+v, expected game over with 0 health", st)
	}

	// the field keeps drifting while the player reads the score
	before := g.sim.Elapsed()
	stepGame(t, g, frame(core.ActionFire))
	if g.sim.Elapsed() <= before {
		t.Error("simulation should keep stepping after game over")
	}

	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over box not rendered")
	}

	stepGame(t, g, frame(core.ActionRestart))
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase after restart = %s, expected playing", g.Phase())
	}
	if st := g.State(); st.GameOver || st.Health != 100 || st.Score != 0 {
		t.Errorf("State() after restart = %+v, expected a fresh game", st)
	}
}

func TestGamePause(t *testing.T) {
	g, screen := newTestGame(t)
	stepGame(t, g, frame(core.ActionConfirm))

	stepGame(t, g, frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	before := g.sim.Elapsed()
	stepGame(t, g, frame(core.ActionThrust))
	if g.sim.Elapsed() != before {
		t.Error("paused game should not advance")
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause box not rendered")
	}

	stepGame(t, g, frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameInputMapping(t *testing.T) {
	g, _ := newTestGame(t)
	stepGame(t, g, frame(core.ActionConfirm))

	res := stepGame(t, g, frame(core.ActionFire, core.ActionThrust, core.ActionRotateLeft))
	if got := countEvents[BulletFiredEvent](res.Events); got != 1 {
		t.Errorf("BulletFiredEvent count = %d, expected 1", got)
	}
	ship, _ := g.sim.Ship()
	if ship.Speed <= 0 {
		t.Error("thrust should accelerate the ship")
	}
	if ship.Transform.Rotation <= 0 {
		t.Error("rotate left should turn counter-clockwise")
	}
}

func TestGameRenderShipAndHUD(t *testing.T) {
	g, screen := newTestGame(t)
	stepGame(t, g, frame(core.ActionConfirm))

	g.Render(screen)
	if got := screen.Get(40, 12); got != ShipChar {
		t.Errorf("cell (40,12) = %q, expected the ship at the origin", got)
	}
	if cell := screen.GetCell(40, 12); cell.Color != core.ColorBrightGreen {
		t.Errorf("ship color = %v, expected bright green at full health", cell.Color)
	}
	if row := screen.Row(0); !strings.Contains(row, "Score: 0") || !strings.Contains(row, "100") {
		t.Errorf("HUD row = %q, expected score and health", row)
	}
}

func TestProjection(t *testing.T) {
	p := projection{halfW: 200, halfH: 120, cellW: 5, cellH: 10}

	tests := []struct {
		pt       core.Point
		col, row int
	}{
		{core.Point{0, 0}, 40, 12},
		{core.Point{-200, 120}, 0, 0},
		{core.Point{199, -119}, 79, 23},
		{core.Point{-201, 0}, -1, 12},
	}
	for _, tc := range tests {
		col, row := p.cell(tc.pt)
		if col != tc.col || row != tc.row {
			t.Errorf("cell(%v) = (%d, %d), expected (%d, %d)", tc.pt, col, row, tc.col, tc.row)
		}
	}
}
