// Package config provides YAML-based game configuration loading
// for the arkanoid simulation and its platform layer.
package config

// Clamp limits for user-tunable settings. Out-of-range values are clamped,
// never rejected, so a degenerate config can not reach the simulation.
const (
	WorldWidthMin  = 320.0
	WorldWidthMax  = 4096.0
	WorldHeightMin = 240.0
	WorldHeightMax = 4096.0

	BallRadiusMin = 4.0
	BallRadiusMax = 48.0
	BallSpeedMin  = 60.0
	BallSpeedMax  = 5000.0

	PaddleWidthMin = 40.0
	// Paddle width max is 95% of world width, enforced at clamp time.
	PaddleWorldFraction = 0.95

	BrickColumnsMin = 1
	BrickColumnsMax = 30
	BrickRowsMin    = 1
	BrickRowsMax    = 15
	BrickPaddingMin = 0.0
	BrickPaddingMax = 20.0
)

// GameConfig contains all configuration for the arkanoid game.
type GameConfig struct {
	World    WorldConfig    `yaml:"world"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Shop     ShopConfig     `yaml:"shop"`
}

// WorldConfig defines the fixed play-area dimensions in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines ball parameters.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Initial target speed, world units/sec
}

// PaddleConfig defines paddle parameters.
type PaddleConfig struct {
	Width float64 `yaml:"width"`
	Speed float64 `yaml:"speed"` // Horizontal speed, world units/sec
}

// BricksConfig defines the level grid dimensions.
type BricksConfig struct {
	Columns  int     `yaml:"columns"`
	Rows     int     `yaml:"rows"`
	PaddingX float64 `yaml:"padding_x"`
	PaddingY float64 `yaml:"padding_y"`
}

// GameplayConfig defines rule-engine parameters.
type GameplayConfig struct {
	Lives          int     `yaml:"lives"`
	SpeedupEveryN  int     `yaml:"speedup_every_n"` // Destroyed bricks per speedup
	SpeedupFactor  float64 `yaml:"speedup_factor"`
	ScorePerDollar int     `yaml:"score_per_dollar"`
}

// ShopConfig defines purchase prices in dollars.
type ShopConfig struct {
	FreezeCost     int `yaml:"freeze_cost"`
	MagnetCost     int `yaml:"magnet_cost"`
	MultiplierCost int `yaml:"multiplier_cost"`
	LifeCost       int `yaml:"life_cost"`
	InvincibleCost int `yaml:"invincible_cost"`
}

// Clamped returns a copy of the config with every tunable forced into its
// documented range. Divisor-like values (columns, rows, paddle width) are
// floored to minimums so layout math never divides by zero.
func (c GameConfig) Clamped() GameConfig {
	out := c

	out.World.Width = clampF(c.World.Width, WorldWidthMin, WorldWidthMax)
	out.World.Height = clampF(c.World.Height, WorldHeightMin, WorldHeightMax)

	out.Ball.Radius = clampF(c.Ball.Radius, BallRadiusMin, BallRadiusMax)
	out.Ball.Speed = clampF(c.Ball.Speed, BallSpeedMin, BallSpeedMax)

	maxPaddle := out.World.Width * PaddleWorldFraction
	out.Paddle.Width = clampF(c.Paddle.Width, PaddleWidthMin, maxPaddle)
	if out.Paddle.Speed <= 0 {
		out.Paddle.Speed = DefaultGameConfig().Paddle.Speed
	}

	out.Bricks.Columns = clampI(c.Bricks.Columns, BrickColumnsMin, BrickColumnsMax)
	out.Bricks.Rows = clampI(c.Bricks.Rows, BrickRowsMin, BrickRowsMax)
	out.Bricks.PaddingX = clampF(c.Bricks.PaddingX, BrickPaddingMin, BrickPaddingMax)
	out.Bricks.PaddingY = clampF(c.Bricks.PaddingY, BrickPaddingMin, BrickPaddingMax)

	if out.Gameplay.Lives <= 0 {
		out.Gameplay.Lives = DefaultGameConfig().Gameplay.Lives
	}
	if out.Gameplay.SpeedupEveryN <= 0 {
		out.Gameplay.SpeedupEveryN = DefaultGameConfig().Gameplay.SpeedupEveryN
	}
	if out.Gameplay.SpeedupFactor <= 1.0 {
		out.Gameplay.SpeedupFactor = DefaultGameConfig().Gameplay.SpeedupFactor
	}
	if out.Gameplay.ScorePerDollar <= 0 {
		out.Gameplay.ScorePerDollar = DefaultGameConfig().Gameplay.ScorePerDollar
	}

	def := DefaultGameConfig().Shop
	if out.Shop.FreezeCost <= 0 {
		out.Shop.FreezeCost = def.FreezeCost
	}
	if out.Shop.MagnetCost <= 0 {
		out.Shop.MagnetCost = def.MagnetCost
	}
	if out.Shop.MultiplierCost <= 0 {
		out.Shop.MultiplierCost = def.MultiplierCost
	}
	if out.Shop.LifeCost <= 0 {
		out.Shop.LifeCost = def.LifeCost
	}
	if out.Shop.InvincibleCost <= 0 {
		out.Shop.InvincibleCost = def.InvincibleCost
	}

	return out
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
