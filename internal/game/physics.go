package game

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

const (
	paddleHeight       = 18.0
	paddleBottomOffset = 40.0

	// How fast the current ball speed chases the target, world units/sec^2.
	ballAccel = 800.0

	// Floor for each velocity component after a reflection, as a
	// fraction of current speed. Keeps the ball off flat trajectories.
	minBounceFrac = 0.15

	// Paddle bounce angle range, roughly +-34 degrees.
	paddleBounceSpread = 1.2

	freezeDuration = 5.0
	freezeFactor   = 0.2

	launchDiag = 0.7071067
)

// Ball is the single ball in play. Speed chases TargetSpeed with bounded
// acceleration; Vel is renormalized to Speed every integration step.
type Ball struct {
	Pos         core.Vec
	Vel         core.Vec
	Radius      float64
	Speed       float64
	TargetSpeed float64
}

// Paddle is the player carriage. Height is fixed, width varies with the
// enlarge bonus.
type Paddle struct {
	Rect  core.Rect
	Speed float64
}

func (g *Game) clampPaddle() {
	g.paddle.Rect.Pos.X = core.Clamp(g.paddle.Rect.Pos.X, 0, g.cfg.World.Width-g.paddle.Rect.Size.X)
}

// updateSpeed moves the current ball speed toward the target by at most
// ballAccel*dt.
func (g *Game) updateSpeed(dt float64) {
	if g.ball.Speed < g.ball.TargetSpeed {
		g.ball.Speed = math.Min(g.ball.TargetSpeed, g.ball.Speed+ballAccel*dt)
	} else if g.ball.Speed > g.ball.TargetSpeed {
		g.ball.Speed = math.Max(g.ball.TargetSpeed, g.ball.Speed-ballAccel*dt)
	}
}

func (g *Game) integrateBall(dt float64) {
	if g.freezeTimer > 0 {
		g.freezeTimer -= dt
		g.ball.Speed = math.Max(config.BallSpeedMin, g.ball.TargetSpeed*freezeFactor)
	}

	if l := g.ball.Vel.Len(); l > 1e-9 {
		g.ball.Vel = g.ball.Vel.Scale(g.ball.Speed / l)
	}
	g.ball.Pos = g.ball.Pos.Add(g.ball.Vel.Scale(dt))

	r := g.ball.Radius
	w := g.cfg.World.Width

	if g.ball.Pos.X < r {
		overshoot := r - g.ball.Pos.X
		g.ball.Pos.X += overshoot * 2
		g.reflectBall(core.Vec{X: 1, Y: 0})
	} else if g.ball.Pos.X > w-r {
		overshoot := g.ball.Pos.X - (w - r)
		g.ball.Pos.X -= overshoot * 2
		g.reflectBall(core.Vec{X: -1, Y: 0})
	}

	if g.ball.Pos.Y < r {
		overshoot := r - g.ball.Pos.Y
		g.ball.Pos.Y += overshoot * 2
		g.reflectBall(core.Vec{X: 0, Y: 1})
	}

	if g.ball.Pos.Y > g.cfg.World.Height+r {
		g.loseLife()
	}
}

// loseLife handles the ball falling out the bottom. Combo and pierce drop
// unconditionally, even when invincible.
func (g *Game) loseLife() {
	if !g.invincible {
		g.lives--
	}
	g.combo = 1
	g.comboTimer = 0
	g.pierce = buff{}

	if g.lives <= 0 {
		g.state = StateLose
		return
	}
	g.resetBall()
}

// resetBall places the ball just above the paddle center, launched on the
// fixed diagonal at target speed.
func (g *Game) resetBall() {
	center := g.paddle.Rect.Center()
	g.ball.Pos = core.Vec{X: center.X, Y: g.paddle.Rect.Pos.Y - g.ball.Radius - 1}
	g.ball.Speed = g.ball.TargetSpeed
	g.ball.Vel = core.Vec{X: launchDiag, Y: -launchDiag}.Scale(g.ball.TargetSpeed)
}

// reflectBall mirrors velocity across the normal and enforces the minimum
// component floor. A zero X component gets a random sign so the ball never
// locks onto an axis.
func (g *Game) reflectBall(n core.Vec) {
	v := g.ball.Vel.Reflect(n)

	minComp := minBounceFrac * g.ball.Speed
	if math.Abs(v.X) < minComp {
		sign := core.Sign(v.X)
		if v.X == 0 {
			sign = float64(g.rng.Intn(2)*2 - 1)
		}
		v.X = sign * minComp
	}
	if math.Abs(v.Y) < minComp {
		sign := core.Sign(v.Y)
		if v.Y == 0 {
			sign = -1
		}
		v.Y = sign * minComp
	}

	g.ball.Vel = v
}

// bounceFromPaddle redirects the ball depending on where it struck the
// paddle, edges giving the steepest angles.
func (g *Game) bounceFromPaddle(hitX float64) {
	r := g.paddle.Rect
	t := (hitX - r.Pos.X) / math.Max(1, r.Size.X)
	angle := (t - 0.5) * paddleBounceSpread
	dir := core.Vec{X: math.Sin(angle), Y: -math.Cos(angle)}
	g.ball.Vel = dir.Scale(g.ball.Speed)
}
