package game

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// State is the coarse session state. Win and Lose are terminal until a
// restart.
type State uint8

const (
	StatePlaying State = iota
	StateWin
	StateLose
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWin:
		return "win"
	case StateLose:
		return "lose"
	default:
		return "unknown"
	}
}

const (
	comboWindow = 1.2
	comboMax    = 9

	speedPresetDown = 0.5
	speedPresetUp   = 1.5

	damageParticles  = 6
	destroyParticles = 14
)

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Hit records one collision resolved this frame, for external
// diagnostics.
type Hit struct {
	Pos    core.Vec
	Normal core.Vec
}

// Game owns the whole simulation: ball, paddle, brick grid, falling
// bonuses, particles, the economy and the timed buffs. All mutation goes
// through Step.
type Game struct {
	cfg     config.GameConfig
	runtime core.RuntimeConfig
	rng     *core.Rand

	state  State
	paused bool

	ball      Ball
	paddle    Paddle
	bricks    []Brick
	brickSize core.Vec
	bonuses   []Bonus
	particles []Particle

	score      int
	lives      int
	combo      int
	comboTimer float64
	destroyed  int

	balance    int
	totalMoney int
	moneyMark  int

	pierce         buff
	slowmo         buff
	magnet         buff
	scoreMult      buff
	scoreMultValue int
	freezeTimer    float64
	invincible     bool

	shopMessage      string
	shopMessageTimer float64

	hits []Hit
}

// New creates an unconfigured game. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// Configure replaces the game settings, clamping every field to its
// documented range, and rebuilds the session.
func (g *Game) Configure(cfg config.GameConfig) {
	g.cfg = cfg.Clamped()
	g.resetSession()
}

// Reset initializes or restarts the game. Settings come from the config
// loader; the runtime seed drives the in-game random stream.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultGameConfig()
	}
	g.cfg = cfg.Clamped()
	g.resetSession()
}

func (g *Game) resetSession() {
	g.rng = core.NewRand(g.runtime.Seed)

	g.ball.Radius = g.cfg.Ball.Radius
	g.ball.TargetSpeed = g.cfg.Ball.Speed
	g.ball.Speed = g.ball.TargetSpeed

	pw := g.cfg.Paddle.Width
	g.paddle = Paddle{
		Rect: core.NewRect(
			(g.cfg.World.Width-pw)*0.5,
			g.cfg.World.Height-paddleBottomOffset,
			pw,
			paddleHeight,
		),
		Speed: g.cfg.Paddle.Speed,
	}
	g.resetBall()

	g.state = StatePlaying
	g.paused = false
	g.score = 0
	g.moneyMark = 0
	g.balance = 0
	g.lives = g.cfg.Gameplay.Lives
	g.combo = 1
	g.comboTimer = 0
	g.destroyed = 0

	g.pierce = buff{}
	g.slowmo = buff{}
	g.magnet = buff{}
	g.scoreMult = buff{}
	g.scoreMultValue = 1
	g.freezeTimer = 0
	g.invincible = false

	g.bonuses = g.bonuses[:0]
	g.particles = g.particles[:0]
	g.shopMessage = ""
	g.shopMessageTimer = 0

	g.buildLevel()
}

// Step advances the simulation by dt seconds under the given input and
// returns the collisions resolved this frame. Slow motion scales dt for
// every subsystem except its own countdown.
func (g *Game) Step(in core.InputFrame, dt float64) []Hit {
	g.hits = g.hits[:0]

	frameDt := dt
	if g.slowmo.Active {
		frameDt = dt * slowmoFactor
		g.slowmo.tick(dt)
	}

	if g.state != StatePlaying {
		if in.Has(core.ActionRestart) {
			g.resetSession()
		}
		return g.hits
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	g.grantMoneyFromScore()
	g.handleControls(in, frameDt)

	if g.paused {
		return g.hits
	}

	g.integrateBall(frameDt)
	g.integrateBonuses(frameDt)
	g.integrateParticles(frameDt)
	g.handleCollisions()

	if g.aliveBricks() == 0 {
		g.state = StateWin
	}
	return g.hits
}

func (g *Game) handleControls(in core.InputFrame, dt float64) {
	dx := 0.0
	if in.Has(core.ActionRight) {
		dx += 1
	}
	if in.Has(core.ActionLeft) {
		dx -= 1
	}
	g.paddle.Rect.Pos.X += dx * g.paddle.Speed * dt
	g.paddle.Rect.Size.Y = paddleHeight
	g.clampPaddle()

	if in.Has(core.ActionSpeedDown) {
		g.ball.TargetSpeed = math.Max(speedPresetDown*g.ball.TargetSpeed, config.BallSpeedMin)
	}
	if in.Has(core.ActionSpeedReset) {
		g.ball.TargetSpeed = core.Clamp(g.cfg.Ball.Speed, config.BallSpeedMin, config.BallSpeedMax)
	}
	if in.Has(core.ActionSpeedUp) {
		g.ball.TargetSpeed = math.Min(speedPresetUp*g.ball.TargetSpeed, config.BallSpeedMax)
	}
	if in.Has(core.ActionPierce) {
		g.pierce.arm(pierceDuration)
	}

	if in.Has(core.ActionBuyMagnet) && g.tryPurchase(g.cfg.Shop.MagnetCost) {
		g.magnet.arm(magnetDuration)
		g.setShopMessage("Purchased Magnet!")
	}
	if in.Has(core.ActionBuyMultiplier) && g.tryPurchase(g.cfg.Shop.MultiplierCost) {
		g.scoreMult.arm(scoreMultDuration)
		if g.rng.Intn(2) == 1 {
			g.scoreMultValue = 2
		} else {
			g.scoreMultValue = 3
		}
		g.setShopMessage("Purchased Score Multiplier!")
	}
	if in.Has(core.ActionBuyFreeze) && g.tryPurchase(g.cfg.Shop.FreezeCost) {
		g.freezeTimer = freezeDuration
		g.setShopMessage("Purchased Freeze Ball!")
	}
	if in.Has(core.ActionBuyInvincible) && g.tryPurchase(g.cfg.Shop.InvincibleCost) {
		g.invincible = true
		g.setShopMessage("Purchased Invincibility!")
	}
	if in.Has(core.ActionBuyLife) && g.tryPurchase(g.cfg.Shop.LifeCost) {
		g.lives++
		g.setShopMessage("Purchased +1 Life!")
	}

	if in.Has(core.ActionNukeRow) {
		g.nukeRow()
	}

	g.magnet.tick(dt)
	if g.scoreMult.tick(dt) {
		g.scoreMultValue = 1
	}
	g.pierce.tick(dt)

	if g.comboTimer > 0 {
		g.comboTimer -= dt
		if g.comboTimer <= 0 {
			g.combo = 1
			g.comboTimer = 0
		}
	}

	if g.shopMessage != "" {
		g.shopMessageTimer -= dt
		if g.shopMessageTimer <= 0 {
			g.shopMessage = ""
			g.shopMessageTimer = 0
		}
	}

	g.updateSpeed(dt)
}

func (g *Game) handleCollisions() {
	if hit, ok := core.CircleVsRect(g.ball.Pos, g.ball.Radius, g.paddle.Rect); ok {
		g.ball.Pos.Y = g.paddle.Rect.Pos.Y - g.ball.Radius - 0.5
		g.bounceFromPaddle(hit.Point.X)
		g.hits = append(g.hits, Hit{Pos: hit.Point, Normal: core.Vec{Y: -1}})
	}

	for i := range g.bricks {
		b := &g.bricks[i]
		if !b.Alive {
			continue
		}
		hit, ok := core.CircleVsRect(g.ball.Pos, g.ball.Radius, b.Rect)
		if !ok {
			continue
		}

		if !g.pierce.Active {
			g.reflectBall(hit.Normal)
		}

		if b.HitPoints > 1 {
			g.damageBrick(b)
		} else {
			g.destroyBrick(b)
		}
		g.hits = append(g.hits, Hit{Pos: hit.Point, Normal: hit.Normal})

		if !g.pierce.Active {
			break
		}
	}
}

// damageBrick takes one hit point off a brick that survives the hit.
func (g *Game) damageBrick(b *Brick) {
	b.HitPoints--
	g.score += (b.Score / 3) * g.scoreMultValue
	b.Color = damageTint(b.HitPoints)
	g.spawnParticles(b.Rect.Center(), b.Color, damageParticles)
	g.advanceCombo()
}

func (g *Game) destroyBrick(b *Brick) {
	b.Alive = false
	g.score += b.Score * g.combo * g.scoreMultValue
	g.advanceCombo()

	center := b.Rect.Center()
	g.spawnParticles(center, b.Color, destroyParticles)
	if b.Bonus {
		g.spawnBonusAt(center, drawBonusType(center))
	}
	g.countDestroyed()
}

func (g *Game) advanceCombo() {
	g.combo = core.Min(comboMax, g.combo+1)
	g.comboTimer = comboWindow
}

// countDestroyed bumps the destroyed counter and speeds the ball up at
// every threshold crossing.
func (g *Game) countDestroyed() {
	g.destroyed++
	if g.destroyed%g.cfg.Gameplay.SpeedupEveryN == 0 {
		g.ball.TargetSpeed = core.Clamp(
			g.ball.TargetSpeed*g.cfg.Gameplay.SpeedupFactor,
			config.BallSpeedMin, config.BallSpeedMax,
		)
	}
}

// nukeRow destroys every alive brick whose vertical span contains the
// ball. Combo, particles and bonuses do not apply; the speedup counter
// does.
func (g *Game) nukeRow() {
	for i := range g.bricks {
		b := &g.bricks[i]
		if !b.Alive {
			continue
		}
		if g.ball.Pos.Y >= b.Rect.Pos.Y && g.ball.Pos.Y <= b.Rect.Bottom() {
			b.Alive = false
			g.score += b.Score * g.scoreMultValue
			g.countDestroyed()
		}
	}
}

// Accessors for the presentation layer.

func (g *Game) State() State              { return g.state }
func (g *Game) Paused() bool              { return g.paused }
func (g *Game) Score() int                { return g.score }
func (g *Game) Lives() int                { return g.lives }
func (g *Game) Combo() int                { return g.combo }
func (g *Game) Balance() int              { return g.balance }
func (g *Game) TotalMoney() int           { return g.totalMoney }
func (g *Game) DestroyedBricks() int      { return g.destroyed }
func (g *Game) Ball() Ball                { return g.ball }
func (g *Game) PaddleRect() core.Rect     { return g.paddle.Rect }
func (g *Game) Bricks() []Brick           { return g.bricks }
func (g *Game) Bonuses() []Bonus          { return g.bonuses }
func (g *Game) Particles() []Particle     { return g.particles }
func (g *Game) ShopMessage() string       { return g.shopMessage }
func (g *Game) WorldSize() core.Vec       { return core.Vec{X: g.cfg.World.Width, Y: g.cfg.World.Height} }
func (g *Game) Config() config.GameConfig { return g.cfg }

// Buffs reports the active timed effects for HUD icons.
type Buffs struct {
	Pierce     bool
	SlowMo     bool
	Magnet     bool
	ScoreMult  int
	Frozen     bool
	Invincible bool
}

func (g *Game) Buffs() Buffs {
	b := Buffs{
		Pierce:     g.pierce.Active,
		SlowMo:     g.slowmo.Active,
		Magnet:     g.magnet.Active,
		Frozen:     g.freezeTimer > 0,
		Invincible: g.invincible,
	}
	if g.scoreMult.Active {
		b.ScoreMult = g.scoreMultValue
	}
	return b
}
