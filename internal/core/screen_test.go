package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'x')
	if got := s.Get(3, 2); got != 'x' {
		t.Errorf("Get = %q, want 'x'", got)
	}

	s.SetColored(4, 2, 'y', ColorRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'y' || cell.Color != ColorRed {
		t.Errorf("GetCell = %+v", cell)
	}

	// Out-of-bounds writes are ignored, reads return a space.
	s.Set(-1, 0, 'z')
	s.Set(10, 0, 'z')
	s.Set(0, 5, 'z')
	if got := s.Get(99, 99); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetColored(1, 1, 'a', ColorGreen)

	s.Clear()

	if got := s.Get(1, 1); got != ' ' {
		t.Errorf("cleared cell = %q, want space", got)
	}
	if cell := s.GetCell(1, 1); cell.Color != ColorDefault {
		t.Errorf("cleared cell color = %v, want default", cell.Color)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(2, 2, '#')

	s.Resize(8, 8)
	if s.Width() != 8 || s.Height() != 8 {
		t.Errorf("size = %dx%d, want 8x8", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != '#' {
		t.Errorf("resize lost content, got %q", got)
	}

	// Shrinking drops what no longer fits.
	s.Resize(2, 2)
	if got := s.Get(1, 1); got != ' ' {
		t.Errorf("shrunk screen cell = %q, want space", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText misplaced characters")
	}

	// Text running off the edge is truncated, not wrapped.
	s.DrawText(8, 0, "abc")
	if s.Get(0, 1) == 'c' {
		t.Error("DrawText should not wrap to the next row")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")
	if got := s.Get(4, 1); got != 'a' {
		t.Errorf("centered text starts at %q, want 'a' at x=4", got)
	}
}

func TestScreenRowAndString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab")

	if got := s.Row(0); got != "ab " {
		t.Errorf("Row(0) = %q", got)
	}

	str := s.String()
	if !strings.HasPrefix(str, "ab ") {
		t.Errorf("String() = %q", str)
	}
	if strings.Count(str, "\n") != 1 {
		t.Errorf("String() should join rows with newlines, got %q", str)
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(6, 6)
	s.FillRect(1, 1, 3, 2, '#', ColorBlue)

	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("cell (%d,%d) = %q, want '#'", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(4, 1) == '#' || s.Get(1, 3) == '#' {
		t.Error("FillRect wrote outside its bounds")
	}
}
