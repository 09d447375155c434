package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default arkanoid configuration.
// Kept in sync with defaults/arkanoid.yaml, which is the preferred source.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			Radius: 10,
			Speed:  150,
		},
		Paddle: PaddleConfig{
			Width: 100,
			Speed: 500,
		},
		Bricks: BricksConfig{
			Columns:  15,
			Rows:     7,
			PaddingX: 4,
			PaddingY: 4,
		},
		Gameplay: GameplayConfig{
			Lives:          3,
			SpeedupEveryN:  10,
			SpeedupFactor:  1.10,
			ScorePerDollar: 100,
		},
		Shop: ShopConfig{
			FreezeCost:     10,
			MagnetCost:     10,
			MultiplierCost: 15,
			LifeCost:       20,
			InvincibleCost: 60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
