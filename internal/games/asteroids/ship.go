package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// driveShip eases the ship's speed toward its target, moves it along the
// current heading, then applies rotation.
func (s *Simulation) driveShip(in Input, dt float32) {
	if !s.store.Alive(s.ship) {
		return
	}
	t, sh := s.store.shipMap.Get(s.ship)

	target := float32(0)
	if in.Thrust {
		target = s.cfg.Ship.MaxSpeed
	}
	sh.Speed += (target - sh.Speed) * min(dt, 1)

	if sh.Speed > 0 {
		t.Position = t.Position.Add(t.Heading().Mul(sh.Speed * dt))
	}

	if in.Left {
		t.Rotation += s.cfg.Ship.TurnRate * dt
	}
	if in.Right {
		t.Rotation -= s.cfg.Ship.TurnRate * dt
	}
}

// fire spawns a bullet ahead of the ship, travelling along its heading.
func (s *Simulation) fire() {
	if !s.store.Alive(s.ship) {
		return
	}
	t, sh := s.store.shipMap.Get(s.ship)

	bt := *t
	bt.Position = bt.Position.Add(bt.Heading().Mul(s.cfg.Ship.MuzzleOffset))
	id := s.store.AddBullet(bt, Bullet{Speed: s.cfg.Bullet.BaseSpeed + sh.Speed})
	s.spawned(id)
	s.emit(BulletFiredEvent{Position: bt.Position})
}

// clampShip pins the ship inside the viewport, each axis independently.
// Speed and heading are untouched, so the ship slides along the wall.
func (s *Simulation) clampShip() {
	if !s.store.Alive(s.ship) {
		return
	}
	t, _ := s.store.shipMap.Get(s.ship)
	hw, hh := s.viewport.Half()
	r := s.cfg.Ship.HalfWidth
	t.Position = core.Point{clampAxis(t.Position.X(), hw-r), clampAxis(t.Position.Y(), hh-r)}
}

// clampAxis clamps v to [-limit, limit]; a negative limit pins to the center.
func clampAxis(v, limit float32) float32 {
	if limit < 0 {
		return 0
	}
	return core.ClampF(v, -limit, limit)
}

// regenerate heals the ship by one fixed tick's worth.
func (s *Simulation) regenerate() {
	if !s.store.Alive(s.ship) {
		return
	}
	_, sh := s.store.shipMap.Get(s.ship)
	sh.Health = min(sh.Health+s.cfg.Ship.RegenPerTick, s.cfg.Ship.MaxHealth)
}

// applyShipHit consumes the asteroid and damages the ship. Health is floored
// at zero; reaching zero removes the ship.
func (s *Simulation) applyShipHit(h contact) {
	ast, ok := s.store.Asteroid(h.target)
	if !ok || !s.store.Alive(h.mover) {
		return
	}
	_, sh := s.store.shipMap.Get(h.mover)

	damage := ast.Size.Damage(s.cfg.Sizes)
	health := max(sh.Health-damage, 0)
	sh.Health = health
	s.despawn(h.target)

	if health == 0 {
		s.despawn(h.mover)
		s.addExplosion(h.point, false)
		s.emit(ShipDestroyedEvent{Position: h.point})
		s.logger.Debug("ship destroyed", "size", ast.Size, "damage", damage, "elapsed", s.elapsed)
	} else {
		s.emit(ShipHitEvent{Damage: damage, Health: health})
		s.logger.Debug("ship hit", "size", ast.Size, "damage", damage, "health", health)
	}
	s.addExplosion(h.point, true)
}
