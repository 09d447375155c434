package core

import (
	"math"
	"testing"
)

func TestVecBasics(t *testing.T) {
	a := Vec{X: 3, Y: 4}
	if a.Len() != 5 {
		t.Errorf("Len = %v, want 5", a.Len())
	}
	if a.LenSq() != 25 {
		t.Errorf("LenSq = %v, want 25", a.LenSq())
	}

	n := a.Normalized()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("normalized length %v, want 1", n.Len())
	}

	zero := Vec{}
	if got := zero.Normalized(); got != zero {
		t.Errorf("normalizing zero vector should stay zero, got %+v", got)
	}

	if got := a.Add(Vec{X: 1, Y: -1}); got != (Vec{X: 4, Y: 3}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(Vec{X: 1, Y: 1}); got != (Vec{X: 2, Y: 3}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != (Vec{X: 6, Y: 8}) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.Dot(Vec{X: 2, Y: 1}); got != 10 {
		t.Errorf("Dot = %v, want 10", got)
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name string
		v    Vec
		n    Vec
		want Vec
	}{
		{"down onto floor", Vec{X: 0, Y: 10}, Vec{X: 0, Y: -1}, Vec{X: 0, Y: -10}},
		{"right onto wall", Vec{X: 10, Y: 0}, Vec{X: -1, Y: 0}, Vec{X: -10, Y: 0}},
		{"diagonal onto floor", Vec{X: 3, Y: 4}, Vec{X: 0, Y: -1}, Vec{X: 3, Y: -4}},
		{"parallel to normal plane", Vec{X: 5, Y: 0}, Vec{X: 0, Y: 1}, Vec{X: 5, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Reflect(tt.n); got != tt.want {
				t.Errorf("Reflect(%+v, %+v) = %+v, want %+v", tt.v, tt.n, got, tt.want)
			}
		})
	}
}

func TestRectQueries(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	if r.Right() != 110 || r.Bottom() != 70 {
		t.Errorf("Right=%v Bottom=%v, want 110/70", r.Right(), r.Bottom())
	}
	if c := r.Center(); c != (Vec{X: 60, Y: 45}) {
		t.Errorf("Center = %+v", c)
	}

	if !r.Contains(Vec{X: 50, Y: 40}) {
		t.Error("interior point should be contained")
	}
	if r.Contains(Vec{X: 5, Y: 40}) {
		t.Error("outside point should not be contained")
	}

	if got := r.ClosestPoint(Vec{X: 0, Y: 0}); got != (Vec{X: 10, Y: 20}) {
		t.Errorf("closest to origin = %+v, want corner", got)
	}
	if got := r.ClosestPoint(Vec{X: 60, Y: 45}); got != (Vec{X: 60, Y: 45}) {
		t.Errorf("closest to interior point should be itself, got %+v", got)
	}
}

func TestRectOverlaps(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"identical", NewRect(0, 0, 10, 10), true},
		{"inside", NewRect(2, 2, 4, 4), true},
		{"touching edge", NewRect(10, 0, 5, 5), true},
		{"touching corner", NewRect(10, 10, 5, 5), true},
		{"apart", NewRect(11, 0, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Overlaps(tt.o); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircleVsRect(t *testing.T) {
	r := NewRect(100, 100, 50, 20)

	tests := []struct {
		name       string
		center     Vec
		radius     float64
		wantHit    bool
		wantNormal Vec
	}{
		{"above touching top", Vec{X: 125, Y: 95}, 6, true, Vec{X: 0, Y: -1}},
		{"below touching bottom", Vec{X: 125, Y: 125}, 6, true, Vec{X: 0, Y: 1}},
		{"left of rect", Vec{X: 95, Y: 110}, 6, true, Vec{X: -1, Y: 0}},
		{"right of rect", Vec{X: 155, Y: 110}, 6, true, Vec{X: 1, Y: 0}},
		{"too far above", Vec{X: 125, Y: 80}, 6, false, Vec{}},
		{"near corner outside radius", Vec{X: 94, Y: 94}, 6, false, Vec{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := CircleVsRect(tt.center, tt.radius, r)
			if ok != tt.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tt.wantHit)
			}
			if ok && hit.Normal != tt.wantNormal {
				t.Errorf("normal = %+v, want %+v", hit.Normal, tt.wantNormal)
			}
		})
	}
}

func TestCircleVsRectHitPoint(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	hit, ok := CircleVsRect(Vec{X: 5, Y: 12}, 3, r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Point != (Vec{X: 5, Y: 10}) {
		t.Errorf("hit point %+v, want closest point on edge", hit.Point)
	}
}

func TestClampHelpers(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp mid = %v", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp low = %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp high = %v", got)
	}

	if got := ClampInt(7, 1, 5); got != 5 {
		t.Errorf("ClampInt high = %v", got)
	}
	if got := ClampInt(-7, 1, 5); got != 1 {
		t.Errorf("ClampInt low = %v", got)
	}

	if Sign(-3) != -1 || Sign(3) != 1 || Sign(0) != 1 {
		t.Error("Sign should be -1 for negatives and 1 otherwise")
	}
	if Min(2, 3) != 2 || Max(2, 3) != 3 {
		t.Error("Min/Max broken")
	}
}
