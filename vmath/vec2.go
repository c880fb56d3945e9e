package vmath

import "math"

// Vec2 is a point or direction in field pixel space
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * k
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len returns the Euclidean length of v
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the Euclidean distance between a and b
func Dist(a, b Vec2) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

// AngleTo returns the heading from a toward b in radians
func AngleTo(a, b Vec2) float64 { return math.Atan2(b.Y-a.Y, b.X-a.X) }

// FromAngle returns the vector of length mag along angle
func FromAngle(angle, mag float64) Vec2 {
	return Vec2{math.Cos(angle) * mag, math.Sin(angle) * mag}
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// ClampInt limits x to [lo, hi]
func ClampInt(x, lo, hi int) int {
	return max(lo, min(hi, x))
}

// Within reports whether p lies inside the closed rectangle [minX,maxX]×[minY,maxY]
func Within(p Vec2, minX, minY, maxX, maxY float64) bool {
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}
