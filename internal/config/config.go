// Package config provides YAML-based configuration loading and difficulty
// presets for the asteroids simulation.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned by Validate when a value would break the
// simulation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// AsteroidsConfig contains every tunable of the asteroids simulation.
type AsteroidsConfig struct {
	Sizes     SizeTable       `yaml:"sizes"`
	Ship      ShipConfig      `yaml:"ship"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Score     ScoreConfig     `yaml:"score"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Terminal  TerminalConfig  `yaml:"terminal"`
}

// SizeTable binds each asteroid size class to its parameters.
type SizeTable struct {
	Small  SizeParams `yaml:"small"`
	Medium SizeParams `yaml:"medium"`
	Large  SizeParams `yaml:"large"`
}

// SizeParams defines one asteroid size class.
// MaxRadius doubles as the class's nominal radius for broad phase and culling.
type SizeParams struct {
	MinRadius float32 `yaml:"min_radius"`
	MaxRadius float32 `yaml:"max_radius"`
	Vertices  int     `yaml:"vertices"`
	Speed     float32 `yaml:"speed"`  // spawn speed multiplier
	Damage    int     `yaml:"damage"` // health removed from the ship on contact
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	MaxSpeed     float32      `yaml:"max_speed"`
	TurnRate     float32      `yaml:"turn_rate"` // radians per second
	HalfWidth    float32      `yaml:"half_width"`
	MaxHealth    int          `yaml:"max_health"`
	RegenPerTick int          `yaml:"regen_per_tick"`
	MuzzleOffset float32      `yaml:"muzzle_offset"`
	Outline      [][2]float32 `yaml:"outline"`
}

// BulletConfig defines fired bullets.
type BulletConfig struct {
	BaseSpeed  float32 `yaml:"base_speed"` // ship speed is added on top
	Length     float32 `yaml:"length"`
	Margin     float32 `yaml:"margin"` // broad-phase allowance
	CullRadius float32 `yaml:"cull_radius"`
}

// SpawnConfig defines the fixed-tick clock and the spawn curve.
type SpawnConfig struct {
	Period          float32 `yaml:"period"` // seconds per fixed tick
	LogBase         float32 `yaml:"log_base"`
	Offset          float32 `yaml:"offset"`
	TimeDivisor     float32 `yaml:"time_divisor"`
	MediumThreshold float32 `yaml:"medium_threshold"`
	LargeThreshold  float32 `yaml:"large_threshold"`
}

// ScoreConfig defines scoring.
type ScoreConfig struct {
	PerAsteroid int `yaml:"per_asteroid"`
}

// ExplosionConfig defines explosion effects.
type ExplosionConfig struct {
	Lifetime float32 `yaml:"lifetime"` // seconds
}

// TerminalConfig defines how world units map onto terminal cells.
type TerminalConfig struct {
	CellWidth  float32 `yaml:"cell_width"`
	CellHeight float32 `yaml:"cell_height"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value into a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Validate reports the first setting the simulation cannot run with.
func (c AsteroidsConfig) Validate() error {
	sizes := []struct {
		name string
		p    SizeParams
	}{
		{"small", c.Sizes.Small},
		{"medium", c.Sizes.Medium},
		{"large", c.Sizes.Large},
	}
	for _, s := range sizes {
		switch {
		case s.p.MinRadius <= 0:
			return fmt.Errorf("%w: sizes.%s.min_radius must be positive", ErrInvalidConfig, s.name)
		case s.p.MinRadius > s.p.MaxRadius:
			return fmt.Errorf("%w: sizes.%s.min_radius exceeds max_radius", ErrInvalidConfig, s.name)
		case s.p.Vertices < 3:
			return fmt.Errorf("%w: sizes.%s.vertices must be at least 3", ErrInvalidConfig, s.name)
		case s.p.Damage < 0:
			return fmt.Errorf("%w: sizes.%s.damage must not be negative", ErrInvalidConfig, s.name)
		}
	}

	switch {
	case c.Ship.MaxHealth <= 0:
		return fmt.Errorf("%w: ship.max_health must be positive", ErrInvalidConfig)
	case len(c.Ship.Outline) < 2:
		return fmt.Errorf("%w: ship.outline needs at least 2 points", ErrInvalidConfig)
	case c.Ship.HalfWidth < 0:
		return fmt.Errorf("%w: ship.half_width must not be negative", ErrInvalidConfig)
	case c.Bullet.Length <= 0:
		return fmt.Errorf("%w: bullet.length must be positive", ErrInvalidConfig)
	case c.Spawn.Period <= 0:
		return fmt.Errorf("%w: spawn.period must be positive", ErrInvalidConfig)
	case c.Spawn.LogBase <= 1:
		return fmt.Errorf("%w: spawn.log_base must be greater than 1", ErrInvalidConfig)
	case c.Spawn.Offset <= 0:
		return fmt.Errorf("%w: spawn.offset must be positive", ErrInvalidConfig)
	case c.Spawn.TimeDivisor <= 0:
		return fmt.Errorf("%w: spawn.time_divisor must be positive", ErrInvalidConfig)
	case c.Spawn.MediumThreshold > c.Spawn.LargeThreshold:
		return fmt.Errorf("%w: spawn.medium_threshold exceeds large_threshold", ErrInvalidConfig)
	case c.Score.PerAsteroid < 0:
		return fmt.Errorf("%w: score.per_asteroid must not be negative", ErrInvalidConfig)
	case c.Explosion.Lifetime <= 0:
		return fmt.Errorf("%w: explosion.lifetime must be positive", ErrInvalidConfig)
	case c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0:
		return fmt.Errorf("%w: terminal cell size must be positive", ErrInvalidConfig)
	}
	return nil
}
