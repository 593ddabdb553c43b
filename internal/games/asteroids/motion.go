package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func (s *Simulation) moveBullets(dt float32) {
	q := s.store.bullets.Query()
	for q.Next() {
		t, b := q.Get()
		t.Position = t.Position.Add(t.Heading().Mul(b.Speed * dt))
	}
}

func (s *Simulation) moveAsteroids(dt float32) {
	q := s.store.asteroids.Query()
	for q.Next() {
		t, v, _ := q.Get()
		t.Position = t.Position.Add(v.V.Mul(dt))
	}
}

// ageExplosions grows every explosion and removes the ones past their lifetime.
func (s *Simulation) ageExplosions(dt float32) {
	var expired []EntityID
	q := s.store.explosions.Query()
	for q.Next() {
		_, e := q.Get()
		e.Scale *= 1 + dt
		if s.elapsed >= e.Start+s.cfg.Explosion.Lifetime {
			expired = append(expired, q.Entity())
		}
	}
	for _, id := range expired {
		s.despawn(id)
	}
}

func (s *Simulation) addExplosion(at core.Point, player bool) {
	id := s.store.AddExplosion(core.Transform{Position: at}, Explosion{Start: s.elapsed, Scale: 1, Player: player})
	s.spawned(id)
	s.emit(ExplosionEvent{Position: at, IsPlayer: player})
}

// outside reports whether a circle lies entirely beyond the viewport on
// either axis.
func outside(p core.Point, r, hw, hh float32) bool {
	return p.X()+r < -hw || p.X()-r > hw || p.Y()+r < -hh || p.Y()-r > hh
}

// cullOffscreen removes asteroids and bullets that have left the viewport.
// Removed entities are never recycled.
func (s *Simulation) cullOffscreen() {
	hw, hh := s.viewport.Half()
	var gone []EntityID

	qa := s.store.asteroids.Query()
	for qa.Next() {
		t, _, a := qa.Get()
		if outside(t.Position, a.Size.Radius(s.cfg.Sizes), hw, hh) {
			gone = append(gone, qa.Entity())
		}
	}

	qb := s.store.bullets.Query()
	for qb.Next() {
		t, _ := qb.Get()
		if outside(t.Position, s.cfg.Bullet.CullRadius, hw, hh) {
			gone = append(gone, qb.Entity())
		}
	}

	for _, id := range gone {
		s.despawn(id)
	}
}
