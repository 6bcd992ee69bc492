// pkg/utils/math.go
package utils

import "math"

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Vec2 is a point or direction in screen space.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo returns the euclidean distance between v and o.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Normalize returns v scaled to length 1. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect is an axis aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the middle point of r.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// ContainsCircle reports whether the circle lies fully inside r. Touching an
// edge still counts as inside.
func (r Rect) ContainsCircle(center Vec2, radius float64) bool {
	return r.Left() <= center.X-radius &&
		r.Right() >= center.X+radius &&
		r.Top() <= center.Y-radius &&
		r.Bottom() >= center.Y+radius
}
