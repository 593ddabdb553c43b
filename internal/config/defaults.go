package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the built-in configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Sizes: SizeTable{
			Small:  SizeParams{MinRadius: 8, MaxRadius: 15, Vertices: 10, Speed: 10, Damage: 15},
			Medium: SizeParams{MinRadius: 20, MaxRadius: 30, Vertices: 20, Speed: 5, Damage: 30},
			Large:  SizeParams{MinRadius: 40, MaxRadius: 60, Vertices: 30, Speed: 2.5, Damage: 50},
		},
		Ship: ShipConfig{
			MaxSpeed:     50,
			TurnRate:     6,
			HalfWidth:    5,
			MaxHealth:    100,
			RegenPerTick: 1,
			MuzzleOffset: 5,
			Outline: [][2]float32{
				{-5, -5},
				{0, 5},
				{5, -5},
				{0, -2.5},
				{-5, -5},
			},
		},
		Bullet: BulletConfig{
			BaseSpeed:  55,
			Length:     5,
			Margin:     3.5,
			CullRadius: 1.75,
		},
		Spawn: SpawnConfig{
			Period:          0.5,
			LogBase:         5,
			Offset:          5,
			TimeDivisor:     2,
			MediumThreshold: 1.5,
			LargeThreshold:  2.5,
		},
		Score: ScoreConfig{
			PerAsteroid: 1,
		},
		Explosion: ExplosionConfig{
			Lifetime: 1,
		},
		Terminal: TerminalConfig{
			CellWidth:  5,
			CellHeight: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultAsteroidsYAML
}
