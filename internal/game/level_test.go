package game

import (
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

func TestBuildLevelReproducible(t *testing.T) {
	g1 := newTestGame(t, nil)
	g2 := newTestGame(t, nil)

	if len(g1.bricks) != len(g2.bricks) {
		t.Fatalf("grid sizes differ: %d vs %d", len(g1.bricks), len(g2.bricks))
	}
	for i := range g1.bricks {
		a, b := g1.bricks[i], g2.bricks[i]
		if a.HitPoints != b.HitPoints || a.Bonus != b.Bonus || a.Rect != b.Rect {
			t.Fatalf("brick %d differs between identical builds: %+v vs %+v", i, a, b)
		}
	}
}

func TestBuildLevelGridShape(t *testing.T) {
	g := newTestGame(t, func(cfg *config.GameConfig) {
		cfg.Bricks.Columns = 4
		cfg.Bricks.Rows = 3
		cfg.Bricks.PaddingX = 2
		cfg.Bricks.PaddingY = 2
	})

	if want := 4 * 3; len(g.bricks) != want {
		t.Fatalf("want %d bricks, got %d", want, len(g.bricks))
	}

	// Row-major: first brick is top-left.
	first := g.bricks[0]
	if first.Rect.Pos.X != levelSideMargin || first.Rect.Pos.Y != levelTopMargin {
		t.Errorf("first brick at %+v, want (%v, %v)", first.Rect.Pos, levelSideMargin, levelTopMargin)
	}

	// Second brick sits one width plus padding to the right.
	second := g.bricks[1]
	wantX := levelSideMargin + g.brickSize.X + 2
	if second.Rect.Pos.X != wantX {
		t.Errorf("second brick X %v, want %v", second.Rect.Pos.X, wantX)
	}

	for i, b := range g.bricks {
		if !b.Alive {
			t.Errorf("brick %d should start alive", i)
		}
		if b.HitPoints < 1 || b.HitPoints > 3 {
			t.Errorf("brick %d hit points %d out of range", i, b.HitPoints)
		}
	}
}

func TestBrickScoresByRow(t *testing.T) {
	g := newTestGame(t, func(cfg *config.GameConfig) {
		cfg.Bricks.Columns = 2
		cfg.Bricks.Rows = 3
	})

	// Top row is worth the most: 10 + 2*(rows-1-row).
	wants := []int{14, 14, 12, 12, 10, 10}
	for i, want := range wants {
		if g.bricks[i].Score != want {
			t.Errorf("brick %d score %d, want %d", i, g.bricks[i].Score, want)
		}
	}
}

func TestConfigureClampsDimensions(t *testing.T) {
	g := newTestGame(t, func(cfg *config.GameConfig) {
		cfg.Bricks.Columns = 500
		cfg.Bricks.Rows = -2
	})

	if g.cfg.Bricks.Columns != config.BrickColumnsMax {
		t.Errorf("columns should clamp to %d, got %d", config.BrickColumnsMax, g.cfg.Bricks.Columns)
	}
	if g.cfg.Bricks.Rows != config.BrickRowsMin {
		t.Errorf("rows should clamp to %d, got %d", config.BrickRowsMin, g.cfg.Bricks.Rows)
	}
	if len(g.bricks) != g.cfg.Bricks.Columns*g.cfg.Bricks.Rows {
		t.Errorf("grid should follow clamped dimensions, got %d bricks", len(g.bricks))
	}
}

func TestDamageTint(t *testing.T) {
	if damageTint(2) == damageTint(1) {
		t.Error("tint should differ between 2 and 1 hit points")
	}
}
