package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/game"
)

// Visual characters for rendering.
const (
	paddleChar   = '='
	ballChar     = '●'
	particleChar = '·'
)

// Brick glyphs by remaining hit points.
var brickGlyphs = map[int]rune{
	3: '█',
	2: '▓',
	1: '█',
}

// Bonus glyphs by type.
var bonusGlyphs = map[game.BonusType]rune{
	game.BonusSpeedUp:       '»',
	game.BonusEnlargePaddle: '◄',
	game.BonusExtraLife:     '♥',
	game.BonusPierce:        '†',
	game.BonusSlowMo:        '~',
	game.BonusPoints:        '$',
	game.BonusMagnet:        'U',
	game.BonusScoreMult:     '×',
}

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// renderGame draws the whole frame: HUD, playfield, and any terminal
// overlay.
func renderGame(g *game.Game, dst *core.Screen) {
	dst.Clear()

	world := g.WorldSize()
	fieldH := dst.Height() - hudRows
	if fieldH < 1 || dst.Width() < 1 || world.X <= 0 || world.Y <= 0 {
		return
	}
	sx := float64(dst.Width()) / world.X
	sy := float64(fieldH) / world.Y

	renderBricks(g, dst, sx, sy)
	renderBonuses(g, dst, sx, sy)
	renderParticles(g, dst, sx, sy)
	renderPaddle(g, dst, sx, sy)
	renderBall(g, dst, sx, sy)
	renderHUD(g, dst)

	switch g.State() {
	case game.StateWin:
		renderOverlay(dst, "YOU WIN", "Press R to restart", core.ColorBrightGreen)
	case game.StateLose:
		renderOverlay(dst, "YOU LOSE", "Press R to restart", core.ColorBrightRed)
	default:
		if g.Paused() {
			renderOverlay(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
		}
	}
}

// project maps a world rectangle to screen cells, guaranteeing at least
// one cell so thin entities stay visible.
func project(r core.Rect, sx, sy float64) (x, y, w, h int) {
	x = int(r.Pos.X * sx)
	y = hudRows + int(r.Pos.Y*sy)
	w = core.Max(1, int(r.Size.X*sx))
	h = core.Max(1, int(r.Size.Y*sy))
	return x, y, w, h
}

func renderBricks(g *game.Game, dst *core.Screen, sx, sy float64) {
	for _, b := range g.Bricks() {
		if !b.Alive {
			continue
		}
		x, y, w, h := project(b.Rect, sx, sy)
		glyph, ok := brickGlyphs[b.HitPoints]
		if !ok {
			glyph = '█'
		}
		dst.FillRect(x, y, w, h, glyph, b.Color)
	}
}

func renderBonuses(g *game.Game, dst *core.Screen, sx, sy float64) {
	for _, b := range g.Bonuses() {
		if !b.Alive {
			continue
		}
		x, y, w, h := project(b.Rect, sx, sy)
		glyph, ok := bonusGlyphs[b.Type]
		if !ok {
			glyph = '?'
		}
		dst.FillRect(x, y, w, h, glyph, b.Color)
	}
}

func renderParticles(g *game.Game, dst *core.Screen, sx, sy float64) {
	particles := g.Particles()
	for i := range particles {
		p := &particles[i]
		x := int(p.Pos.X * sx)
		y := hudRows + int(p.Pos.Y*sy)
		glyph := particleChar
		if p.LifeFrac() > 0.5 {
			glyph = '•'
		}
		dst.SetColored(x, y, glyph, p.Color)
	}
}

func renderPaddle(g *game.Game, dst *core.Screen, sx, sy float64) {
	x, y, w, _ := project(g.PaddleRect(), sx, sy)
	dst.FillRect(x, y, w, 1, paddleChar, core.ColorBrightWhite)
}

func renderBall(g *game.Game, dst *core.Screen, sx, sy float64) {
	b := g.Ball()
	x := int(b.Pos.X * sx)
	y := hudRows + int(b.Pos.Y*sy)
	color := core.ColorBrightWhite
	if g.Buffs().Pierce {
		color = core.ColorBrightRed
	}
	dst.SetColored(x, y, ballChar, color)
}

func renderHUD(g *game.Game, dst *core.Screen) {
	left := fmt.Sprintf("Score: %d  Lives: %d  $%d", g.Score(), g.Lives(), g.Balance())
	if combo := g.Combo(); combo > 1 {
		left += fmt.Sprintf("  x%d", combo)
	}
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	if icons := buffIcons(g.Buffs()); icons != "" {
		dst.DrawTextColored(dst.Width()-len([]rune(icons)), 0, icons, core.ColorBrightYellow)
	}

	if msg := g.ShopMessage(); msg != "" {
		dst.DrawTextCentered(0, msg)
	}
}

// buffIcons builds the HUD indicator string for active effects.
func buffIcons(b game.Buffs) string {
	var parts []string
	if b.Pierce {
		parts = append(parts, "[PIERCE]")
	}
	if b.SlowMo {
		parts = append(parts, "[SLOW]")
	}
	if b.Magnet {
		parts = append(parts, "[MAG]")
	}
	if b.ScoreMult > 0 {
		parts = append(parts, fmt.Sprintf("[x%d]", b.ScoreMult))
	}
	if b.Frozen {
		parts = append(parts, "[FRZ]")
	}
	if b.Invincible {
		parts = append(parts, "[GOD]")
	}
	return strings.Join(parts, " ")
}

// renderOverlay draws a centered modal box with a title and a hint line.
func renderOverlay(dst *core.Screen, title, hint string, color core.Color) {
	w := core.Max(len(title), len(hint)) + 6
	h := 5
	if w > dst.Width() {
		w = dst.Width()
	}
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	dst.FillRect(x, y, w, h, ' ', core.ColorDefault)
	dst.DrawBox(x, y, w, h)
	dst.DrawTextColored(x+(w-len(title))/2, y+1, title, color)
	dst.DrawTextColored(x+(w-len(hint))/2, y+3, hint, core.ColorGray)
}
