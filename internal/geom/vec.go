// Package geom holds the 2D vector algebra and the swept AABB test used by
// the physics tick. World space is y-up.
package geom

import "math"

// Vec2 is a 2D vector or point in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Neg() Vec2            { return Vec2{-v.X, -v.Y} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }
func (v Vec2) IsZero() bool         { return v.X == 0 && v.Y == 0 }
func (v Vec2) Len() float64         { return math.Sqrt(v.X*v.X + v.Y*v.Y) }
func (v Vec2) Perp() Vec2           { return Vec2{-v.Y, v.X} }

// Div divides both components by s.
func (v Vec2) Div(s float64) Vec2 { return Vec2{v.X / s, v.Y / s} }

// Normalized returns the unit vector in v's direction, or the zero vector
// when v has zero length.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Reflect mirrors v across the surface with unit normal n: v - 2n(n·v).
func (v Vec2) Reflect(n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * n.Dot(v)))
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Clamp restricts val to [lo, hi].
func Clamp(lo, val, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Overlaps is the static AABB test for two boxes given by center and half
// extent. Touching edges count as overlap.
func Overlaps(p1, half1, p2, half2 Vec2) bool {
	return spanOverlap(p1.X-half1.X, p1.X+half1.X, p2.X-half2.X, p2.X+half2.X) &&
		spanOverlap(p1.Y-half1.Y, p1.Y+half1.Y, p2.Y-half2.Y, p2.Y+half2.Y)
}

func spanOverlap(left1, right1, left2, right2 float64) bool {
	return !(left2 > right1 || right2 < left1)
}
