package game

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// BonusType identifies a falling power-up.
type BonusType uint8

const (
	BonusSpeedUp BonusType = iota
	BonusEnlargePaddle
	BonusExtraLife
	BonusPierce
	BonusSlowMo
	BonusPoints
	BonusMagnet
	BonusScoreMult
	// BonusNukeRow exists for the cheat path only and is never part of
	// the random draw on brick destruction.
	BonusNukeRow
)

func (t BonusType) String() string {
	switch t {
	case BonusSpeedUp:
		return "speedup"
	case BonusEnlargePaddle:
		return "enlarge"
	case BonusExtraLife:
		return "life"
	case BonusPierce:
		return "pierce"
	case BonusSlowMo:
		return "slowmo"
	case BonusPoints:
		return "points"
	case BonusMagnet:
		return "magnet"
	case BonusScoreMult:
		return "multiplier"
	case BonusNukeRow:
		return "nuke"
	default:
		return "unknown"
	}
}

const (
	bonusFallSpeed   = 80.0
	bonusSizeFactor  = 0.7
	bonusPulseSpeed  = 6.0
	bonusExitMargin  = 20.0
	bonusPointsValue = 50

	magnetStrength = 600.0

	pierceDuration    = 2.0
	slowmoDuration    = 5.0
	slowmoFactor      = 0.45
	slowmoSpeedFactor = 0.4
	magnetDuration    = 6.0
	scoreMultDuration = 8.0

	speedUpFactor  = 1.15
	speedUpFlat    = 10.0
	enlargeFactor  = 1.3
	paddleMaxWorld = config.PaddleWorldFraction
)

// Bonus is a falling power-up dropped by a bonus-flagged brick.
type Bonus struct {
	Rect   core.Rect
	Type   BonusType
	Vel    core.Vec
	Alive  bool
	Points int
	Pulse  float64
	Color  core.Color
}

// buff is a uniform timed effect. Re-arming resets the remaining time,
// effects never stack.
type buff struct {
	Active    bool
	Remaining float64
}

func (b *buff) arm(duration float64) {
	b.Active = true
	b.Remaining = duration
}

// tick counts the buff down and reports true on the frame it expires.
func (b *buff) tick(dt float64) bool {
	if !b.Active {
		return false
	}
	b.Remaining -= dt
	if b.Remaining <= 0 {
		b.Active = false
		b.Remaining = 0
		return true
	}
	return false
}

// spawnBonusAt drops a bonus of the given type centered at pos, sized
// relative to the current brick dimensions.
func (g *Game) spawnBonusAt(pos core.Vec, t BonusType) {
	w := g.brickSize.X * bonusSizeFactor
	h := g.brickSize.Y * bonusSizeFactor
	b := Bonus{
		Rect:  core.NewRect(pos.X-w*0.5, pos.Y-h*0.5, w, h),
		Type:  t,
		Vel:   core.Vec{Y: bonusFallSpeed},
		Alive: true,
		Color: bonusColor(t),
	}
	if t == BonusPoints {
		b.Points = bonusPointsValue
	}
	g.bonuses = append(g.bonuses, b)
}

// drawBonusType picks the bonus dropped by a destroyed brick. The stream
// is seeded by the spawn position so layouts replay identically.
func drawBonusType(pos core.Vec) BonusType {
	rng := core.NewRand(int64(pos.X*1000 + pos.Y))
	types := [7]BonusType{
		BonusSpeedUp, BonusEnlargePaddle, BonusExtraLife,
		BonusPierce, BonusPoints, BonusMagnet, BonusScoreMult,
	}
	return types[rng.Intn(len(types))]
}

func bonusColor(t BonusType) core.Color {
	switch t {
	case BonusSpeedUp:
		return core.ColorOrange
	case BonusEnlargePaddle:
		return core.ColorBrightCyan
	case BonusExtraLife:
		return core.ColorBrightGreen
	case BonusPierce:
		return core.ColorBrightRed
	case BonusSlowMo:
		return core.ColorBrightMagenta
	case BonusPoints:
		return core.ColorBrightYellow
	case BonusMagnet:
		return core.ColorGreen
	case BonusScoreMult:
		return core.ColorMagenta
	default:
		return core.ColorWhite
	}
}

func (g *Game) integrateBonuses(dt float64) {
	paddleCenter := g.paddle.Rect.Center()

	for i := range g.bonuses {
		b := &g.bonuses[i]
		if !b.Alive {
			continue
		}

		b.Pulse += dt * bonusPulseSpeed
		if b.Pulse > 2*math.Pi {
			b.Pulse -= 2 * math.Pi
		}

		if g.magnet.Active {
			dir := paddleCenter.Sub(b.Rect.Center())
			dist := dir.Len()
			if dist > 1e-4 {
				pull := magnetStrength / (0.5 + dist*0.02)
				b.Vel = b.Vel.Add(dir.Normalized().Scale(pull * dt))
			}
		} else {
			b.Vel.Y = bonusFallSpeed
		}

		b.Rect.Pos = b.Rect.Pos.Add(b.Vel.Scale(dt))

		if b.Rect.Overlaps(g.paddle.Rect) {
			g.applyBonus(b)
			b.Alive = false
		}

		if b.Rect.Pos.Y > g.cfg.World.Height+bonusExitMargin {
			b.Alive = false
		}
	}

	g.bonuses = compactBonuses(g.bonuses)
}

func compactBonuses(bonuses []Bonus) []Bonus {
	kept := bonuses[:0]
	for _, b := range bonuses {
		if b.Alive {
			kept = append(kept, b)
		}
	}
	return kept
}

func (g *Game) applyBonus(b *Bonus) {
	switch b.Type {
	case BonusSpeedUp:
		g.ball.TargetSpeed = math.Min(g.ball.TargetSpeed*speedUpFactor+speedUpFlat, config.BallSpeedMax)
	case BonusEnlargePaddle:
		width := g.paddle.Rect.Size.X * enlargeFactor
		g.paddle.Rect.Size.X = core.Clamp(width, config.PaddleWidthMin, g.cfg.World.Width*paddleMaxWorld)
		g.clampPaddle()
	case BonusExtraLife:
		g.lives++
	case BonusPierce:
		g.pierce.arm(pierceDuration)
	case BonusSlowMo:
		g.slowmo.arm(slowmoDuration)
		g.ball.TargetSpeed = math.Max(g.ball.TargetSpeed*slowmoSpeedFactor, config.BallSpeedMin)
	case BonusPoints:
		g.score += b.Points * g.scoreMultValue
	case BonusMagnet:
		g.magnet.arm(magnetDuration)
	case BonusScoreMult:
		g.scoreMult.arm(scoreMultDuration)
		if g.rng.Intn(2) == 1 {
			g.scoreMultValue = 2
		} else {
			g.scoreMultValue = 3
		}
	case BonusNukeRow:
		g.nukeRow()
	}
}
