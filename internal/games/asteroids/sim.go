package asteroids

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// ErrNoViewport is returned by Step when no usable viewport has been set.
var ErrNoViewport = errors.New("asteroids: no viewport")

// Viewport is the visible world rectangle, centered on the origin.
type Viewport struct {
	Width, Height float32
}

// Valid reports whether both extents are positive.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Half returns the half extents.
func (v Viewport) Half() (hw, hh float32) {
	return v.Width / 2, v.Height / 2
}

// Input is the host's per-step input. Fire is edge-triggered: the host sets
// it only on the step a press began.
type Input struct {
	Dt     float32 // seconds since the previous step
	Thrust bool
	Left   bool
	Right  bool
	Fire   bool
}

// StepResult reports what one Step did.
type StepResult struct {
	Events     []Event    // in emission order
	Spawned    []EntityID // asteroids, bullets and explosions created this step
	Despawned  []EntityID // entities removed this step
	FixedTicks int
	Score      int
	Health     int
	ShipAlive  bool
	Asteroids  int
}

// Simulation is the per-session context. It owns the entity store, the
// random source, the clocks and the score.
type Simulation struct {
	cfg    config.AsteroidsConfig
	store  *Store
	rng    Rand
	logger *log.Logger

	viewport Viewport
	elapsed  float32
	fixedAcc float32
	score    int

	ship        EntityID
	shipShape   []core.Point
	bulletShape []core.Point

	result *StepResult
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger sets the logger used for debug records.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRand replaces the seeded default random source.
func WithRand(r Rand) Option {
	return func(s *Simulation) {
		if r != nil {
			s.rng = r
		}
	}
}

// New creates a simulation with the ship at the origin at full health.
func New(cfg config.AsteroidsConfig, seed int64, opts ...Option) *Simulation {
	s := &Simulation{
		cfg:    cfg,
		store:  NewStore(),
		rng:    NewRand(seed),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.shipShape = make([]core.Point, len(cfg.Ship.Outline))
	for i, p := range cfg.Ship.Outline {
		s.shipShape[i] = core.Point{p[0], p[1]}
	}
	s.bulletShape = []core.Point{{0, 0}, {0, cfg.Bullet.Length}}

	s.ship = s.store.AddShip(core.Transform{}, Ship{Health: cfg.Ship.MaxHealth})
	return s
}

// SetViewport updates the visible rectangle. Step fails until both extents
// are positive.
func (s *Simulation) SetViewport(width, height float32) {
	s.viewport = Viewport{Width: width, Height: height}
}

// Viewport returns the current viewport.
func (s *Simulation) Viewport() Viewport { return s.viewport }

// Store exposes the entities for rendering. Hosts must not mutate it.
func (s *Simulation) Store() *Store { return s.store }

// Config returns the configuration the simulation runs with.
func (s *Simulation) Config() config.AsteroidsConfig { return s.cfg }

// Score returns the accumulated score.
func (s *Simulation) Score() int { return s.score }

// Elapsed returns simulated seconds since the start.
func (s *Simulation) Elapsed() float32 { return s.elapsed }

// Ship returns the ship, or false after it was destroyed.
func (s *Simulation) Ship() (ShipView, bool) {
	return s.store.Ship(s.ship)
}

// ShipShape returns the local ship outline.
func (s *Simulation) ShipShape() []core.Point { return s.shipShape }

// BulletShape returns the local bullet segment.
func (s *Simulation) BulletShape() []core.Point { return s.bulletShape }

// Step advances the simulation by in.Dt seconds:
// input, motion, bounds, collisions, then any fixed ticks (regeneration
// followed by spawning) that came due. Both collision scans see the same
// field before either is applied, so fragments never touch the ship on the
// step they appear.
func (s *Simulation) Step(in Input) (StepResult, error) {
	if !s.viewport.Valid() {
		return StepResult{}, fmt.Errorf("asteroids: step: %w (%gx%g)", ErrNoViewport, s.viewport.Width, s.viewport.Height)
	}

	res := StepResult{}
	s.result = &res
	defer func() { s.result = nil }()

	dt := max(in.Dt, 0)
	s.elapsed += dt

	s.driveShip(in, dt)
	if in.Fire {
		s.fire()
	}

	s.moveBullets(dt)
	s.moveAsteroids(dt)
	s.ageExplosions(dt)

	s.cullOffscreen()
	s.clampShip()

	hits, err := s.scanBulletHits()
	if err != nil {
		return StepResult{}, fmt.Errorf("asteroids: step: %w", err)
	}
	claimed := make(map[EntityID]bool, len(hits))
	for _, h := range hits {
		claimed[h.target] = true
	}
	hit, ok, err := s.scanShipHit(claimed)
	if err != nil {
		return StepResult{}, fmt.Errorf("asteroids: step: %w", err)
	}

	s.applyBulletHits(hits)
	if ok {
		s.applyShipHit(hit)
	}

	ticks, rest := s.cfg.Spawn.FixedTicks(s.fixedAcc, dt)
	s.fixedAcc = rest
	for i := 0; i < ticks; i++ {
		s.regenerate()
		s.spawnWave()
	}

	res.FixedTicks = ticks
	res.Score = s.score
	if ship, ok := s.Ship(); ok {
		res.ShipAlive = true
		res.Health = ship.Health
	}
	res.Asteroids, _ = s.store.Counts()
	return res, nil
}

func (s *Simulation) emit(e Event) {
	if s.result != nil {
		s.result.Events = append(s.result.Events, e)
	}
}

func (s *Simulation) spawned(id EntityID) {
	if s.result != nil {
		s.result.Spawned = append(s.result.Spawned, id)
	}
}

// despawn removes id and records it. Unknown ids are ignored.
func (s *Simulation) despawn(id EntityID) bool {
	if !s.store.Remove(id) {
		return false
	}
	if s.result != nil {
		s.result.Despawned = append(s.result.Despawned, id)
	}
	return true
}
