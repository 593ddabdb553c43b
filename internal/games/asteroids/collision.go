package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// contact is a resolved mover/target pair and where their outlines crossed.
type contact struct {
	mover, target EntityID
	point         core.Point
}

// target is an asteroid snapshot taken before a scan. Its world outline is
// built on first use.
type target struct {
	id     EntityID
	t      core.Transform
	radius float32
	shape  []core.Point
	world  []core.Point
}

func (tg *target) points() []core.Point {
	if tg.world == nil {
		tg.world = core.PolygonPoints(tg.shape, tg.t)
	}
	return tg.world
}

func (s *Simulation) snapshotTargets() []target {
	q := s.store.asteroids.Query()
	out := make([]target, 0, q.Count())
	for q.Next() {
		t, _, a := q.Get()
		out = append(out, target{id: q.Entity(), t: *t, radius: a.Size.Radius(s.cfg.Sizes), shape: a.Polygon})
	}
	return out
}

// firstHit tests every mover edge (outer) against every target edge (inner)
// in vertex order and returns the first crossing.
func firstHit(mover, tgt []core.Point) (core.Point, bool, error) {
	ms, err := core.Segments(mover)
	if err != nil {
		return core.Point{}, false, err
	}
	ts, err := core.Segments(tgt)
	if err != nil {
		return core.Point{}, false, err
	}
	for _, m := range ms {
		for _, tseg := range ts {
			if p, ok := core.SegmentIntersect(m.A, m.B, tseg.A, tseg.B); ok {
				return p, true, nil
			}
		}
	}
	return core.Point{}, false, nil
}

// nearby is the broad phase: centers closer than the target's nominal
// radius plus the mover's margin.
func nearby(mover core.Point, tg *target, margin float32) bool {
	return core.Distance(mover, tg.t.Position) <= tg.radius+margin
}

// scanBulletHits pairs bullets with asteroids. A bullet stops at its first
// hit and an asteroid can be claimed by one bullet only.
func (s *Simulation) scanBulletHits() ([]contact, error) {
	targets := s.snapshotTargets()
	if len(targets) == 0 {
		return nil, nil
	}
	claimed := make(map[EntityID]bool)
	var hits []contact

	q := s.store.bullets.Query()
	for q.Next() {
		bt, _ := q.Get()
		var bulletPts []core.Point

		for i := range targets {
			tg := &targets[i]
			if claimed[tg.id] || !nearby(bt.Position, tg, s.cfg.Bullet.Margin) {
				continue
			}
			if bulletPts == nil {
				bulletPts = core.PolygonPoints(s.bulletShape, *bt)
			}
			p, ok, err := firstHit(bulletPts, tg.points())
			if err != nil {
				q.Close()
				return nil, err
			}
			if ok {
				claimed[tg.id] = true
				hits = append(hits, contact{mover: q.Entity(), target: tg.id, point: p})
				break
			}
		}
	}
	return hits, nil
}

// scanShipHit returns the first asteroid touching the ship. At most one ship
// collision is resolved per step. Asteroids in claimed already belong to a
// bullet this step and are skipped.
func (s *Simulation) scanShipHit(claimed map[EntityID]bool) (contact, bool, error) {
	ship, ok := s.Ship()
	if !ok {
		return contact{}, false, nil
	}
	targets := s.snapshotTargets()
	var shipPts []core.Point

	for i := range targets {
		tg := &targets[i]
		if claimed[tg.id] || !nearby(ship.Transform.Position, tg, s.cfg.Ship.HalfWidth) {
			continue
		}
		if shipPts == nil {
			shipPts = core.PolygonPoints(s.shipShape, ship.Transform)
		}
		p, hit, err := firstHit(shipPts, tg.points())
		if err != nil {
			return contact{}, false, err
		}
		if hit {
			return contact{mover: ship.ID, target: tg.id, point: p}, true, nil
		}
	}
	return contact{}, false, nil
}
