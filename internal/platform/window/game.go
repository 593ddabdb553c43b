// Package window runs the asteroids game in a desktop window on ebiten,
// drawing the simulation as vector outlines.
package window

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

const (
	lineWidth  = 1.5
	ringRadius = 8
)

var (
	background    = color.RGBA{R: 6, G: 8, B: 14, A: 255}
	asteroidColor = color.RGBA{R: 170, G: 170, B: 170, A: 255}
	bulletColor   = color.RGBA{R: 250, G: 220, B: 90, A: 255}
	blastColor    = color.RGBA{R: 245, G: 140, B: 60, A: 255}
	playerBlast   = color.RGBA{R: 255, G: 70, B: 60, A: 255}
)

// SoundPlayer consumes simulation events.
type SoundPlayer interface {
	Handle(events []asteroids.Event)
}

// Options holds the optional collaborators of a Game.
type Options struct {
	Logger *log.Logger
	Sound  SoundPlayer
}

// Game adapts asteroids.Game to ebiten.Game. One world unit is one pixel.
type Game struct {
	game   *asteroids.Game
	cfg    config.AsteroidsConfig
	sound  SoundPlayer
	logger *log.Logger
	width  int
	height int
}

// New creates a window game. rc's screen size is the initial window size
// in pixels.
func New(cfg config.AsteroidsConfig, rc core.RuntimeConfig, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// the window has no character grid
	cfg.Terminal = config.TerminalConfig{CellWidth: 1, CellHeight: 1}

	g := &Game{
		game:   asteroids.NewGame(cfg, logger),
		cfg:    cfg,
		sound:  opts.Sound,
		logger: logger,
		width:  rc.ScreenW,
		height: rc.ScreenH,
	}
	g.game.Reset(rc)
	return g
}

// Update advances the simulation one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	res, err := g.game.Step(readInput())
	if err != nil {
		g.logger.Error("simulation failed", "err", err)
		return err
	}
	if g.sound != nil && len(res.Events) > 0 {
		g.sound.Handle(res.Events)
	}
	return nil
}

// Layout tracks the window size; the viewport follows it without a restart.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.game.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// readInput maps the keyboard onto one input frame. Movement keys are
// level-triggered, the rest fire once per press.
func readInput() core.InputFrame {
	f := core.NewInputFrame()
	held := map[core.Action][]ebiten.Key{
		core.ActionThrust:      {ebiten.KeyW, ebiten.KeyArrowUp},
		core.ActionRotateLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
		core.ActionRotateRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	}
	for action, keys := range held {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				f.Set(action)
			}
		}
	}

	pressed := map[core.Action][]ebiten.Key{
		core.ActionFire:    {ebiten.KeySpace},
		core.ActionConfirm: {ebiten.KeyEnter},
		core.ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
		core.ActionRestart: {ebiten.KeyR},
	}
	for action, keys := range pressed {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				f.Set(action)
			}
		}
	}
	return f
}

// Draw renders the world with y up and the origin at the window center.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	if g.game.Phase() == asteroids.PhaseMenu {
		g.drawMessage(screen, "A S T E R O I D S", "Enter/Space to start  |  Q to quit")
		return
	}

	sim := g.game.Simulation()
	store := sim.Store()
	for _, a := range store.Asteroids() {
		g.polyline(screen, core.PolygonPoints(a.Polygon, a.Transform), asteroidColor)
	}
	for _, b := range store.Bullets() {
		g.polyline(screen, core.PolygonPoints(sim.BulletShape(), b.Transform), bulletColor)
	}
	for _, e := range store.Explosions() {
		clr := blastColor
		if e.Player {
			clr = playerBlast
		}
		x, y := g.toScreen(e.Transform.Position)
		vector.StrokeCircle(screen, x, y, ringRadius*e.Scale, lineWidth, clr, true)
	}

	ship, alive := sim.Ship()
	if alive {
		g.polyline(screen, core.PolygonPoints(sim.ShipShape(), ship.Transform), shipColor(ship.Health, g.cfg.Ship.MaxHealth))
	}

	n, _ := store.Counts()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Score: %d  Asteroids: %d  Health: %d", g.game.Score(), n, ship.Health))

	st := g.game.State()
	if st.Paused {
		g.drawMessage(screen, "PAUSED", "Press P to resume")
	}
	if st.GameOver {
		g.drawMessage(screen, "GAME OVER", fmt.Sprintf("Score: %d  |  Best: %d  |  Press R to restart", st.Score, g.game.Best()))
	}
}

func (g *Game) toScreen(p core.Point) (float32, float32) {
	return p.X() + float32(g.width)/2, float32(g.height)/2 - p.Y()
}

func (g *Game) polyline(dst *ebiten.Image, pts []core.Point, clr color.Color) {
	for i := 0; i+1 < len(pts); i++ {
		x0, y0 := g.toScreen(pts[i])
		x1, y1 := g.toScreen(pts[i+1])
		vector.StrokeLine(dst, x0, y0, x1, y1, lineWidth, clr, true)
	}
}

// drawMessage prints two centered lines using the debug font (6x16 cells).
func (g *Game) drawMessage(dst *ebiten.Image, title, subtitle string) {
	const charW, lineH = 6, 16
	y := g.height/2 - lineH
	ebitenutil.DebugPrintAt(dst, title, (g.width-len(title)*charW)/2, y)
	ebitenutil.DebugPrintAt(dst, subtitle, (g.width-len(subtitle)*charW)/2, y+lineH)
}

// shipColor tints the ship from green at full health to red at zero.
func shipColor(health, maxHealth int) color.RGBA {
	r, gr, b := core.HealthRGB(float32(health) / float32(maxHealth))
	return color.RGBA{R: uint8(r * 255), G: uint8(gr * 255), B: uint8(b * 255), A: 255}
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(g *Game, tps int) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(g.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if tps > 0 {
		ebiten.SetTPS(tps)
	}
	return ebiten.RunGame(g)
}
