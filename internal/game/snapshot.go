package game

import "math"

// Snapshot captures the observable simulation state with primitive
// types only, for determinism checks.
type Snapshot struct {
	State          int
	Score          int
	Lives          int
	Combo          int
	Destroyed      int
	Balance        int
	TotalMoney     int
	MoneyMark      int
	ScoreMultValue int

	BallX, BallY   float64
	BallVX, BallVY float64
	BallSpeed      float64
	BallTarget     float64
	PaddleX        float64
	PaddleWidth    float64

	BricksRemaining int
	// Each brick is 2 ints: Alive, HitPoints.
	BrickData []int

	BonusCount int
	// Each bonus is 4 floats: X, Y, VX, VY.
	BonusData  []float64
	BonusTypes []int

	ParticleCount int

	RNGState uint64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, len(g.bricks)*2)
	for i, b := range g.bricks {
		if b.Alive {
			brickData[i*2] = 1
		}
		brickData[i*2+1] = b.HitPoints
	}

	bonusData := make([]float64, len(g.bonuses)*4)
	bonusTypes := make([]int, len(g.bonuses))
	for i, b := range g.bonuses {
		bonusData[i*4] = b.Rect.Pos.X
		bonusData[i*4+1] = b.Rect.Pos.Y
		bonusData[i*4+2] = b.Vel.X
		bonusData[i*4+3] = b.Vel.Y
		bonusTypes[i] = int(b.Type)
	}

	return Snapshot{
		State:          int(g.state),
		Score:          g.score,
		Lives:          g.lives,
		Combo:          g.combo,
		Destroyed:      g.destroyed,
		Balance:        g.balance,
		TotalMoney:     g.totalMoney,
		MoneyMark:      g.moneyMark,
		ScoreMultValue: g.scoreMultValue,

		BallX:       g.ball.Pos.X,
		BallY:       g.ball.Pos.Y,
		BallVX:      g.ball.Vel.X,
		BallVY:      g.ball.Vel.Y,
		BallSpeed:   g.ball.Speed,
		BallTarget:  g.ball.TargetSpeed,
		PaddleX:     g.paddle.Rect.Pos.X,
		PaddleWidth: g.paddle.Rect.Size.X,

		BricksRemaining: g.aliveBricks(),
		BrickData:       brickData,

		BonusCount: len(g.bonuses),
		BonusData:  bonusData,
		BonusTypes: bonusTypes,

		ParticleCount: len(g.particles),

		RNGState: g.rng.State(),
	}
}

// Hash folds the snapshot into a single value for determinism tests.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v uint64) {
		h = h*31 + v
	}
	mixF := func(v float64) {
		mix(math.Float64bits(v))
	}

	mix(uint64(snap.State))          //#nosec G115 -- hash computation
	mix(uint64(snap.Score))          //#nosec G115 -- hash computation
	mix(uint64(snap.Lives))          //#nosec G115 -- hash computation
	mix(uint64(snap.Combo))          //#nosec G115 -- hash computation
	mix(uint64(snap.Destroyed))      //#nosec G115 -- hash computation
	mix(uint64(snap.Balance))        //#nosec G115 -- hash computation
	mix(uint64(snap.TotalMoney))     //#nosec G115 -- hash computation
	mix(uint64(snap.MoneyMark))      //#nosec G115 -- hash computation
	mix(uint64(snap.ScoreMultValue)) //#nosec G115 -- hash computation

	mixF(snap.BallX)
	mixF(snap.BallY)
	mixF(snap.BallVX)
	mixF(snap.BallVY)
	mixF(snap.BallSpeed)
	mixF(snap.BallTarget)
	mixF(snap.PaddleX)
	mixF(snap.PaddleWidth)

	mix(uint64(snap.BricksRemaining)) //#nosec G115 -- hash computation
	for _, v := range snap.BrickData {
		mix(uint64(v)) //#nosec G115 -- hash computation
	}

	mix(uint64(snap.BonusCount)) //#nosec G115 -- hash computation
	for _, v := range snap.BonusData {
		mixF(v)
	}
	for _, v := range snap.BonusTypes {
		mix(uint64(v)) //#nosec G115 -- hash computation
	}

	mix(uint64(snap.ParticleCount)) //#nosec G115 -- hash computation
	mix(snap.RNGState)

	return h
}
