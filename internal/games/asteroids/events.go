package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Event is something the simulation reports to its host during a step.
type Event interface {
	simEvent()
}

// ScoreEvent is emitted once per asteroid destroyed by a bullet.
type ScoreEvent struct {
	Amount int
}

func (ScoreEvent) simEvent() {}

// ExplosionEvent marks where an explosion effect starts.
// IsPlayer is set for blasts caused by the ship touching an asteroid.
type ExplosionEvent struct {
	Position core.Point
	IsPlayer bool
}

func (ExplosionEvent) simEvent() {}

// AsteroidDestroyedEvent is emitted when a bullet destroys an asteroid.
type AsteroidDestroyedEvent struct {
	Size     SizeClass
	Position core.Point // contact point
}

func (AsteroidDestroyedEvent) simEvent() {}

// ShipHitEvent is emitted when the ship survives a collision.
type ShipHitEvent struct {
	Damage int
	Health int
}

func (ShipHitEvent) simEvent() {}

// ShipDestroyedEvent is emitted instead of ShipHitEvent when a collision
// takes the ship's health to zero.
type ShipDestroyedEvent struct {
	Position core.Point
}

func (ShipDestroyedEvent) simEvent() {}

// BulletFiredEvent is emitted when the ship fires.
type BulletFiredEvent struct {
	Position core.Point
}

func (BulletFiredEvent) simEvent() {}
