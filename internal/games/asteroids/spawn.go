package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Edge identifies the viewport side an asteroid enters from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// pickSize maps a draw in [0, timeFactor) onto a size class.
func (s *Simulation) pickSize(roll float32) SizeClass {
	switch {
	case roll < s.cfg.Spawn.MediumThreshold:
		return Small
	case roll < s.cfg.Spawn.LargeThreshold:
		return Medium
	default:
		return Large
	}
}

// entry returns a spawn position just outside an edge and a unit direction
// pointing into the viewport.
func (s *Simulation) entry(edge Edge, radius float32) (pos, dir core.Point) {
	hw, hh := s.viewport.Half()
	switch edge {
	case EdgeTop:
		pos = core.Point{randRange(s.rng, -hw, hw), hh + radius}
		dir = randDirection(s.rng, -1, 1, -1, -0.1)
	case EdgeRight:
		pos = core.Point{hw + radius, randRange(s.rng, -hh, hh)}
		dir = randDirection(s.rng, -1, -0.1, -1, 1)
	case EdgeBottom:
		pos = core.Point{randRange(s.rng, -hw, hw), -hh - radius}
		dir = randDirection(s.rng, -1, 1, 0.1, 1)
	default:
		pos = core.Point{-hw - radius, randRange(s.rng, -hh, hh)}
		dir = randDirection(s.rng, 0.1, 1, -1, 1)
	}
	return pos, dir
}

// spawnWave runs once per fixed tick. While a draw in [0, timeFactor)
// exceeds 1 it introduces another asteroid, so both the arrival rate and the
// entry speed grow with elapsed time.
func (s *Simulation) spawnWave() {
	tf := s.cfg.Spawn.TimeFactor(s.elapsed)
	n := 0
	for s.rng.Float32()*tf > 1 {
		size := s.pickSize(s.rng.Float32() * tf)
		edge := Edge(s.rng.Intn(4))
		params := size.Params(s.cfg.Sizes)

		pos, dir := s.entry(edge, params.MaxRadius)
		s.SpawnAsteroid(size, pos, dir.Mul(params.Speed*tf))
		n++
	}
	if n > 0 {
		s.logger.Debug("spawned asteroids", "count", n, "time_factor", tf, "elapsed", s.elapsed)
	}
}
