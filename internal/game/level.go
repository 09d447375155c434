// Package game implements the arkanoid simulation core: ball/paddle physics,
// brick collision resolution, scoring, the in-game economy, timed buffs, and
// the Playing/Win/Lose state machine. It is pure logic with no rendering or
// input-library dependencies; the platform layer drives it one Step per frame.
package game

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Level layout constants, in world units.
const (
	levelTopMargin  = 40.0
	levelSideMargin = 20.0
	// Bricks fill this fraction of world height, measured from the top.
	levelAreaFraction = 0.45
	brickMinWidth     = 5.0
	brickMinHeight    = 8.0

	// Fixed seed so layouts are reproducible across runs for the same
	// dimensions.
	levelSeed = 1337

	bonusBrickChance = 0.15
)

// Brick is a single destructible cell of the level grid.
type Brick struct {
	Rect      core.Rect
	Alive     bool
	Score     int  // Base score when destroyed
	Bonus     bool // Spawns a bonus when destroyed
	HitPoints int  // 1..3 hits remaining
	BaseColor core.Color
	Color     core.Color // Current display color, tinted as hit points fall
}

// buildLevel rebuilds the brick grid wholesale from the clamped config.
// Partial mutation is not supported since grid dimensions can change.
func (g *Game) buildLevel() {
	cols := g.cfg.Bricks.Columns
	rows := g.cfg.Bricks.Rows
	padX := g.cfg.Bricks.PaddingX
	padY := g.cfg.Bricks.PaddingY

	areaW := g.cfg.World.Width - levelSideMargin*2
	areaH := g.cfg.World.Height*levelAreaFraction - levelTopMargin

	totalPadX := padX * float64(cols-1)
	totalPadY := padY * float64(rows-1)
	bw := (areaW - totalPadX) / float64(cols)
	if bw < brickMinWidth {
		bw = brickMinWidth
	}
	bh := (areaH - totalPadY) / float64(rows)
	if bh < brickMinHeight {
		bh = brickMinHeight
	}

	g.brickSize = core.Vec{X: bw, Y: bh}

	rng := core.NewRand(levelSeed)

	g.bricks = make([]Brick, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := levelSideMargin + float64(c)*(bw+padX)
			y := levelTopMargin + float64(r)*(bh+padY)

			b := Brick{
				Rect:  core.NewRect(x, y, bw, bh),
				Alive: true,
				// Top rows are worth more.
				Score: 10 + (rows-1-r)*2,
			}

			b.Bonus = rng.Float64() < bonusBrickChance

			roll := rng.Intn(100)
			switch {
			case roll < 5:
				b.HitPoints = 3
			case roll < 25:
				b.HitPoints = 2
			default:
				b.HitPoints = 1
			}

			b.BaseColor = brickBaseColor(r, b.Bonus)
			b.Color = b.BaseColor

			g.bricks = append(g.bricks, b)
		}
	}
}

// brickBaseColor picks the undamaged display color for a brick.
// Bonus bricks are highlighted; the rest shade by row.
func brickBaseColor(row int, bonus bool) core.Color {
	if bonus {
		return core.ColorBrightYellow
	}
	rowColors := []core.Color{
		core.ColorBrightBlue,
		core.ColorBlue,
		core.ColorBrightCyan,
		core.ColorCyan,
		core.ColorBrightGreen,
		core.ColorGreen,
	}
	return rowColors[row%len(rowColors)]
}

// damageTint returns the display color for a damaged brick, shifting
// progressively toward red as hit points fall.
func damageTint(hitPoints int) core.Color {
	if hitPoints <= 1 {
		return core.ColorBrightRed
	}
	return core.ColorOrange
}

// aliveBricks counts the bricks still standing.
func (g *Game) aliveBricks() int {
	count := 0
	for i := range g.bricks {
		if g.bricks[i].Alive {
			count++
		}
	}
	return count
}
