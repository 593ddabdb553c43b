package asteroids

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Visual characters for rendering
const (
	AsteroidChar  = '#'
	ShipChar      = '@'
	BulletChar    = '|'
	ExplosionChar = '*'
)

// explosionRadius is the ring radius in world units at scale 1.
const explosionRadius = 4

// projection maps world coordinates (origin centered, y up) onto cells.
type projection struct {
	halfW, halfH float32
	cellW, cellH float32
}

func (g *Game) projection() projection {
	hw, hh := g.sim.Viewport().Half()
	return projection{halfW: hw, halfH: hh, cellW: g.cfg.Terminal.CellWidth, cellH: g.cfg.Terminal.CellHeight}
}

// cell returns the column and row covering a world point.
func (p projection) cell(pt core.Point) (col, row int) {
	col = int(math32.Floor((pt.X() + p.halfW) / p.cellW))
	row = int(math32.Floor((p.halfH - pt.Y()) / p.cellH))
	return col, row
}

// polyline draws consecutive points as connected cell lines.
func (p projection) polyline(dst *core.Screen, pts []core.Point, r rune, c core.Color) {
	for i := 0; i+1 < len(pts); i++ {
		x0, y0 := p.cell(pts[i])
		x1, y1 := p.cell(pts[i+1])
		dst.DrawLine(x0, y0, x1, y1, r, c)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	if g.phase == PhaseMenu {
		g.drawCenteredMessage(dst, "A S T E R O I D S", "Enter/Space to start  |  Q to quit")
		return
	}

	proj := g.projection()
	store := g.sim.Store()

	for _, a := range store.Asteroids() {
		proj.polyline(dst, core.PolygonPoints(a.Polygon, a.Transform), AsteroidChar, core.ColorGray)
	}
	for _, b := range store.Bullets() {
		proj.polyline(dst, core.PolygonPoints(g.sim.BulletShape(), b.Transform), BulletChar, core.ColorYellow)
	}
	for _, e := range store.Explosions() {
		g.drawExplosion(dst, proj, e)
	}

	ship, alive := g.sim.Ship()
	if alive {
		color := core.HealthColor(float32(ship.Health) / float32(g.cfg.Ship.MaxHealth))
		proj.polyline(dst, core.PolygonPoints(g.sim.ShipShape(), ship.Transform), ShipChar, color)
	}

	g.drawHUD(dst, ship.Health, alive)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.phase == PhaseGameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Best: %d  |  Press R to restart", g.Score(), g.best))
	}
}

// drawExplosion plots a ring of points that widens with the explosion's scale.
func (g *Game) drawExplosion(dst *core.Screen, proj projection, e ExplosionView) {
	color := core.ColorOrange
	if e.Player {
		color = core.ColorBrightRed
	}
	const points = 12
	radius := explosionRadius * e.Scale
	for i := 0; i < points; i++ {
		angle := float32(i) * 2 * math32.Pi / points
		col, row := proj.cell(e.Transform.Position.Add(core.FromPolar(angle, radius)))
		dst.SetColored(col, row, ExplosionChar, color)
	}
}

// drawHUD writes score, health and population on the top row.
func (g *Game) drawHUD(dst *core.Screen, health int, alive bool) {
	asteroids, _ := g.sim.Store().Counts()
	text := fmt.Sprintf(" Score: %d  Asteroids: %d  Health: ", g.Score(), asteroids)
	dst.DrawText(1, 0, text)

	const barWidth = 10
	filled := 0
	if alive {
		filled = (health*barWidth + g.cfg.Ship.MaxHealth - 1) / g.cfg.Ship.MaxHealth
	}
	color := core.HealthColor(float32(health) / float32(g.cfg.Ship.MaxHealth))
	x := 1 + len([]rune(text))
	for i := 0; i < barWidth; i++ {
		if i < filled {
			dst.SetColored(x+i, 0, '█', color)
		} else {
			dst.SetColored(x+i, 0, '░', core.ColorGray)
		}
	}
	dst.DrawText(x+barWidth, 0, fmt.Sprintf(" %3d ", health))
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
