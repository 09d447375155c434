package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func TestDrawBonusTypeDeterministic(t *testing.T) {
	pos := core.Vec{X: 123.5, Y: 77.25}
	first := drawBonusType(pos)
	for i := 0; i < 10; i++ {
		if got := drawBonusType(pos); got != first {
			t.Fatalf("draw at same position changed: %v vs %v", got, first)
		}
	}
}

func TestDrawBonusTypeExcludesUnreachable(t *testing.T) {
	// Slow-mo and nuke-row never come from the brick-destruction draw.
	for x := 0.0; x < 500; x += 7.3 {
		got := drawBonusType(core.Vec{X: x, Y: x * 0.4})
		if got == BonusSlowMo || got == BonusNukeRow {
			t.Fatalf("draw produced excluded type %v", got)
		}
	}
}

func TestBuffArmTick(t *testing.T) {
	var b buff
	if b.tick(1) {
		t.Error("inactive buff must not expire")
	}

	b.arm(2)
	if b.tick(1) {
		t.Error("buff should survive with time remaining")
	}
	if !b.Active || math.Abs(b.Remaining-1) > 1e-9 {
		t.Errorf("after tick: active=%v remaining=%v", b.Active, b.Remaining)
	}

	if !b.tick(1.5) {
		t.Error("tick should report expiry")
	}
	if b.Active || b.Remaining != 0 {
		t.Errorf("expired buff should be cleared, active=%v remaining=%v", b.Active, b.Remaining)
	}

	// Re-arming starts over.
	b.arm(2)
	if !b.Active || b.Remaining != 2 {
		t.Errorf("re-arm should restore full duration, got %v", b.Remaining)
	}
}

func TestSpawnBonusAt(t *testing.T) {
	g := newTestGame(t, nil)
	pos := core.Vec{X: 200, Y: 100}

	g.spawnBonusAt(pos, BonusPoints)

	if len(g.bonuses) != 1 {
		t.Fatalf("want one bonus, got %d", len(g.bonuses))
	}
	b := g.bonuses[0]
	if !b.Alive {
		t.Error("spawned bonus should be alive")
	}
	if b.Points != bonusPointsValue {
		t.Errorf("points bonus value %d, want %d", b.Points, bonusPointsValue)
	}
	if b.Vel.Y != bonusFallSpeed {
		t.Errorf("bonus should fall at %v, got %v", bonusFallSpeed, b.Vel.Y)
	}
	center := b.Rect.Center()
	if math.Abs(center.X-pos.X) > 1e-9 || math.Abs(center.Y-pos.Y) > 1e-9 {
		t.Errorf("bonus should center on the spawn point, got %+v", center)
	}
}

func TestBonusFallsAndExpires(t *testing.T) {
	g := newTestGame(t, nil)
	g.spawnBonusAt(core.Vec{X: 200, Y: g.cfg.World.Height + bonusExitMargin - 1}, BonusMagnet)

	y := g.bonuses[0].Rect.Pos.Y
	g.integrateBonuses(testDt)
	if len(g.bonuses) == 1 && g.bonuses[0].Rect.Pos.Y <= y {
		t.Error("bonus should fall")
	}

	// Push it past the exit margin; the pass compacts it away.
	for i := 0; i < 60 && len(g.bonuses) > 0; i++ {
		g.integrateBonuses(testDt)
	}
	if len(g.bonuses) != 0 {
		t.Errorf("bonus past the bottom margin should be discarded, %d left", len(g.bonuses))
	}
}

func TestBonusConsumedByPaddle(t *testing.T) {
	g := newTestGame(t, nil)
	livesBefore := g.lives

	center := g.paddle.Rect.Center()
	g.spawnBonusAt(core.Vec{X: center.X, Y: g.paddle.Rect.Pos.Y - 1}, BonusExtraLife)
	g.integrateBonuses(testDt)

	if g.lives != livesBefore+1 {
		t.Errorf("extra-life bonus should grant a life, lives=%d", g.lives)
	}
	if len(g.bonuses) != 0 {
		t.Error("consumed bonus should be compacted away")
	}
}

func TestMagnetSteersBonuses(t *testing.T) {
	g := newTestGame(t, nil)
	g.magnet.arm(magnetDuration)

	// Spawn well to the side of the paddle.
	g.spawnBonusAt(core.Vec{X: 50, Y: 200}, BonusPoints)
	g.integrateBonuses(testDt)

	if len(g.bonuses) != 1 {
		t.Fatalf("bonus should still be falling, got %d", len(g.bonuses))
	}
	if g.bonuses[0].Vel.X <= 0 {
		t.Errorf("magnet should pull the bonus toward the paddle, VX=%v", g.bonuses[0].Vel.X)
	}
}

func TestApplyBonusEffects(t *testing.T) {
	t.Run("speed up", func(t *testing.T) {
		g := newTestGame(t, nil)
		before := g.ball.TargetSpeed
		g.applyBonus(&Bonus{Type: BonusSpeedUp})
		want := math.Min(before*speedUpFactor+speedUpFlat, config.BallSpeedMax)
		if g.ball.TargetSpeed != want {
			t.Errorf("target %v, want %v", g.ball.TargetSpeed, want)
		}
	})

	t.Run("enlarge paddle", func(t *testing.T) {
		g := newTestGame(t, nil)
		before := g.paddle.Rect.Size.X
		g.applyBonus(&Bonus{Type: BonusEnlargePaddle})
		if g.paddle.Rect.Size.X <= before {
			t.Errorf("paddle should widen, %v -> %v", before, g.paddle.Rect.Size.X)
		}
		if max := g.cfg.World.Width * paddleMaxWorld; g.paddle.Rect.Size.X > max {
			t.Errorf("paddle width %v exceeds cap %v", g.paddle.Rect.Size.X, max)
		}
	})

	t.Run("pierce", func(t *testing.T) {
		g := newTestGame(t, nil)
		g.applyBonus(&Bonus{Type: BonusPierce})
		if !g.pierce.Active || g.pierce.Remaining != pierceDuration {
			t.Errorf("pierce buff not armed: %+v", g.pierce)
		}
	})

	t.Run("slow mo drops target speed", func(t *testing.T) {
		g := newTestGame(t, nil)
		before := g.ball.TargetSpeed
		g.applyBonus(&Bonus{Type: BonusSlowMo})
		if !g.slowmo.Active {
			t.Error("slow-mo buff not armed")
		}
		want := math.Max(before*slowmoSpeedFactor, config.BallSpeedMin)
		if g.ball.TargetSpeed != want {
			t.Errorf("target %v, want %v", g.ball.TargetSpeed, want)
		}
	})

	t.Run("points scale with multiplier", func(t *testing.T) {
		g := newTestGame(t, nil)
		g.scoreMultValue = 2
		g.applyBonus(&Bonus{Type: BonusPoints, Points: 50})
		if g.score != 100 {
			t.Errorf("score %d, want 100", g.score)
		}
	})

	t.Run("score multiplier value", func(t *testing.T) {
		g := newTestGame(t, nil)
		g.applyBonus(&Bonus{Type: BonusScoreMult})
		if !g.scoreMult.Active {
			t.Error("multiplier buff not armed")
		}
		if g.scoreMultValue != 2 && g.scoreMultValue != 3 {
			t.Errorf("multiplier value %d, want 2 or 3", g.scoreMultValue)
		}
	})
}

func TestSlowMoScalesFrameTime(t *testing.T) {
	g := newTestGame(t, nil)
	g.slowmo.arm(slowmoDuration)
	before := g.ball.Pos

	g.Step(frame(), testDt)

	moved := g.ball.Pos.Sub(before).Len()
	want := g.ball.Speed * testDt * slowmoFactor
	if math.Abs(moved-want) > 1e-6 {
		t.Errorf("slow-mo frame moved %v, want %v", moved, want)
	}

	// The countdown itself runs on unscaled time.
	if want := slowmoDuration - testDt; math.Abs(g.slowmo.Remaining-want) > 1e-9 {
		t.Errorf("slow-mo remaining %v, want %v", g.slowmo.Remaining, want)
	}
}
