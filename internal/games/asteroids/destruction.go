package asteroids

import (
	"github.com/chewxy/math32"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// childrenPerSplit is how many smaller asteroids a split produces.
const childrenPerSplit = 2

// SpawnAsteroid creates an asteroid of the given class with a freshly
// generated outline and returns its id.
func (s *Simulation) SpawnAsteroid(size SizeClass, pos, vel core.Point) EntityID {
	shape := GeneratePolygon(size.Params(s.cfg.Sizes), s.rng)
	id := s.store.AddAsteroid(core.Transform{Position: pos}, Velocity{V: vel}, Asteroid{Size: size, Polygon: shape})
	s.spawned(id)
	return id
}

// applyBulletHits destroys each bullet and its asteroid, scores, and splits
// non-minimal asteroids. Pairs whose asteroid is already gone are skipped.
func (s *Simulation) applyBulletHits(hits []contact) {
	for _, h := range hits {
		ast, ok := s.store.Asteroid(h.target)
		if !ok {
			continue
		}
		s.despawn(h.target)
		s.despawn(h.mover)

		s.addExplosion(h.point, false)
		s.emit(AsteroidDestroyedEvent{Size: ast.Size, Position: h.point})
		s.score += s.cfg.Score.PerAsteroid
		s.emit(ScoreEvent{Amount: s.cfg.Score.PerAsteroid})

		s.split(ast)
	}
}

// split replaces a destroyed asteroid with two of the next smaller class.
// Each child is placed uniformly inside the parent's nominal disk and moves
// along a random unit vector plus the parent's velocity.
func (s *Simulation) split(parent AsteroidView) {
	child, ok := parent.Size.Smaller()
	if !ok {
		return
	}
	radius := parent.Size.Radius(s.cfg.Sizes)
	for i := 0; i < childrenPerSplit; i++ {
		r := radius * math32.Sqrt(s.rng.Float32())
		theta := s.rng.Float32() * 2 * math32.Pi
		pos := parent.Transform.Position.Add(core.FromPolar(theta, r))

		vel := randDirection(s.rng, -1, 1, -1, 1).Add(parent.Velocity)
		s.SpawnAsteroid(child, pos, vel)
	}
	s.logger.Debug("asteroid split", "parent", parent.Size, "child", child)
}
