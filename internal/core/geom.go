// Package core provides fundamental types and utilities for the arkanoid
// simulation. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Vec is a 2D vector in world coordinates.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference of v and o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the vector magnitude.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq returns the squared magnitude, avoiding the square root.
func (v Vec) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns a unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vec) Normalized() Vec {
	l := v.Len()
	if l < 1e-9 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Reflect mirrors v across the plane described by the unit normal n:
// v - 2*(v·n)*n.
func (v Vec) Reflect(n Vec) Vec {
	d := 2.0 * v.Dot(n)
	return Vec{v.X - d*n.X, v.Y - d*n.Y}
}

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	Pos  Vec // Top-left corner
	Size Vec // Width and height
}

// NewRect creates a rectangle from position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Pos: Vec{x, y}, Size: Vec{w, h}}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Pos.X + r.Size.X
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Pos.Y + r.Size.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{r.Pos.X + r.Size.X*0.5, r.Pos.Y + r.Size.Y*0.5}
}

// Contains reports whether the point p lies inside the rectangle.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.Pos.X && p.X <= r.Right() && p.Y >= r.Pos.Y && p.Y <= r.Bottom()
}

// Overlaps reports whether two rectangles overlap, inclusive of edges.
func (r Rect) Overlaps(o Rect) bool {
	return r.Right() >= o.Pos.X && r.Pos.X <= o.Right() &&
		r.Bottom() >= o.Pos.Y && r.Pos.Y <= o.Bottom()
}

// ClosestPoint returns the point on the rectangle nearest to p.
func (r Rect) ClosestPoint(p Vec) Vec {
	return Vec{
		X: Clamp(p.X, r.Pos.X, r.Right()),
		Y: Clamp(p.Y, r.Pos.Y, r.Bottom()),
	}
}

// CircleHit describes a resolved circle-vs-rectangle collision.
type CircleHit struct {
	Point  Vec // Closest point on the rectangle to the circle center
	Normal Vec // Outward axis-aligned unit normal of the struck side
}

// CircleVsRect tests a circle (center, radius) against a rectangle.
//
// Collision holds iff the squared distance from the closest point on the
// rectangle to the center is within radius². The returned normal is chosen by
// minimum penetration among the four sides. This is a discrete, post-hoc
// resolution: no time of impact is computed, so a fast circle can tunnel
// through thin rectangles at low frame rates.
func CircleVsRect(center Vec, radius float64, r Rect) (CircleHit, bool) {
	closest := r.ClosestPoint(center)
	if closest.Sub(center).LenSq() > radius*radius {
		return CircleHit{}, false
	}

	// Penetration against each side, measured edge to edge.
	dxLeft := math.Abs(center.X + radius - r.Pos.X)
	dxRight := math.Abs(r.Right() - (center.X - radius))
	dyTop := math.Abs(center.Y + radius - r.Pos.Y)
	dyBottom := math.Abs(r.Bottom() - (center.Y - radius))

	minPen := math.Min(math.Min(dxLeft, dxRight), math.Min(dyTop, dyBottom))

	var n Vec
	switch minPen {
	case dxLeft:
		n = Vec{-1, 0}
	case dxRight:
		n = Vec{1, 0}
	case dyTop:
		n = Vec{0, -1}
	default:
		n = Vec{0, 1}
	}

	return CircleHit{Point: closest, Normal: n}, true
}

// Clamp restricts a value to [minVal, maxVal].
func Clamp(val, minVal, maxVal float64) float64 {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// ClampInt restricts an integer to [minVal, maxVal].
func ClampInt(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// Sign returns -1.0 for negative values and +1.0 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
