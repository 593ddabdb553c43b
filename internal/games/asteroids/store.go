package asteroids

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// EntityID is a stable handle to a live entity. Handles of removed entities
// never alias new ones.
type EntityID = ecs.Entity

// Velocity is a world-space displacement per second.
type Velocity struct {
	V core.Point
}

// Asteroid holds the size class and the local outline owned by one asteroid.
type Asteroid struct {
	Size    SizeClass
	Polygon []core.Point
}

// Bullet travels along its transform's heading at Speed.
type Bullet struct {
	Speed float32
}

// Ship is the player-controlled singleton.
type Ship struct {
	Health int
	Speed  float32
}

// Explosion is a growing ring effect.
type Explosion struct {
	Start  float32
	Scale  float32
	Player bool
}

// Store owns every live entity in one ECS world.
//
// Queries lock the world, so entities are never removed while one is open:
// systems collect ids during a scan and remove them afterwards.
type Store struct {
	world ecs.World

	asteroidMap  *ecs.Map3[core.Transform, Velocity, Asteroid]
	bulletMap    *ecs.Map2[core.Transform, Bullet]
	shipMap      *ecs.Map2[core.Transform, Ship]
	explosionMap *ecs.Map2[core.Transform, Explosion]

	asteroids  *ecs.Filter3[core.Transform, Velocity, Asteroid]
	bullets    *ecs.Filter2[core.Transform, Bullet]
	ships      *ecs.Filter2[core.Transform, Ship]
	explosions *ecs.Filter2[core.Transform, Explosion]
}

// NewStore creates an empty store.
func NewStore() *Store {
	s := &Store{world: ecs.NewWorld()}
	w := &s.world

	s.asteroidMap = ecs.NewMap3[core.Transform, Velocity, Asteroid](w)
	s.bulletMap = ecs.NewMap2[core.Transform, Bullet](w)
	s.shipMap = ecs.NewMap2[core.Transform, Ship](w)
	s.explosionMap = ecs.NewMap2[core.Transform, Explosion](w)

	s.asteroids = ecs.NewFilter3[core.Transform, Velocity, Asteroid](w)
	s.bullets = ecs.NewFilter2[core.Transform, Bullet](w)
	s.ships = ecs.NewFilter2[core.Transform, Ship](w)
	s.explosions = ecs.NewFilter2[core.Transform, Explosion](w)
	return s
}

// AddAsteroid inserts an asteroid and returns its id.
func (s *Store) AddAsteroid(t core.Transform, v Velocity, a Asteroid) EntityID {
	return s.asteroidMap.NewEntity(&t, &v, &a)
}

// AddBullet inserts a bullet and returns its id.
func (s *Store) AddBullet(t core.Transform, b Bullet) EntityID {
	return s.bulletMap.NewEntity(&t, &b)
}

// AddShip inserts a ship and returns its id.
func (s *Store) AddShip(t core.Transform, sh Ship) EntityID {
	return s.shipMap.NewEntity(&t, &sh)
}

// AddExplosion inserts an explosion and returns its id.
func (s *Store) AddExplosion(t core.Transform, e Explosion) EntityID {
	return s.explosionMap.NewEntity(&t, &e)
}

// Alive reports whether id refers to a live entity.
func (s *Store) Alive(id EntityID) bool {
	return !id.IsZero() && s.world.Alive(id)
}

// Remove deletes an entity. Removing a dead or unknown id is a no-op that
// returns false.
func (s *Store) Remove(id EntityID) bool {
	if !s.Alive(id) {
		return false
	}
	s.world.RemoveEntity(id)
	return true
}

// AsteroidView is a read-only copy of an asteroid.
type AsteroidView struct {
	ID        EntityID
	Transform core.Transform
	Velocity  core.Point
	Size      SizeClass
	Polygon   []core.Point
}

// BulletView is a read-only copy of a bullet.
type BulletView struct {
	ID        EntityID
	Transform core.Transform
	Speed     float32
}

// ShipView is a read-only copy of the ship.
type ShipView struct {
	ID        EntityID
	Transform core.Transform
	Health    int
	Speed     float32
}

// ExplosionView is a read-only copy of an explosion.
type ExplosionView struct {
	ID        EntityID
	Transform core.Transform
	Explosion
}

// Asteroid returns a copy of one asteroid, or false if it is gone or is not
// an asteroid.
func (s *Store) Asteroid(id EntityID) (AsteroidView, bool) {
	if !s.Alive(id) || !s.asteroidMap.HasAll(id) {
		return AsteroidView{}, false
	}
	t, v, a := s.asteroidMap.Get(id)
	return AsteroidView{ID: id, Transform: *t, Velocity: v.V, Size: a.Size, Polygon: a.Polygon}, true
}

// Ship returns a copy of the ship with the given id.
func (s *Store) Ship(id EntityID) (ShipView, bool) {
	if !s.Alive(id) || !s.shipMap.HasAll(id) {
		return ShipView{}, false
	}
	t, sh := s.shipMap.Get(id)
	return ShipView{ID: id, Transform: *t, Health: sh.Health, Speed: sh.Speed}, true
}

// Asteroids returns copies of all live asteroids in storage order.
func (s *Store) Asteroids() []AsteroidView {
	q := s.asteroids.Query()
	out := make([]AsteroidView, 0, q.Count())
	for q.Next() {
		t, v, a := q.Get()
		out = append(out, AsteroidView{ID: q.Entity(), Transform: *t, Velocity: v.V, Size: a.Size, Polygon: a.Polygon})
	}
	return out
}

// Bullets returns copies of all live bullets.
func (s *Store) Bullets() []BulletView {
	q := s.bullets.Query()
	out := make([]BulletView, 0, q.Count())
	for q.Next() {
		t, b := q.Get()
		out = append(out, BulletView{ID: q.Entity(), Transform: *t, Speed: b.Speed})
	}
	return out
}

// Explosions returns copies of all live explosions.
func (s *Store) Explosions() []ExplosionView {
	q := s.explosions.Query()
	out := make([]ExplosionView, 0, q.Count())
	for q.Next() {
		t, e := q.Get()
		out = append(out, ExplosionView{ID: q.Entity(), Transform: *t, Explosion: *e})
	}
	return out
}

// Counts returns the number of live asteroids and bullets.
func (s *Store) Counts() (asteroids, bullets int) {
	qa := s.asteroids.Query()
	asteroids = qa.Count()
	qa.Close()
	qb := s.bullets.Query()
	bullets = qb.Count()
	qb.Close()
	return asteroids, bullets
}
