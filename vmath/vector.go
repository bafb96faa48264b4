package vmath

import "math"

// Vec2 is a 2D vector in arena units, +Y is up
type Vec2 struct {
	X, Y float64
}

// Zero is the zero vector
var Zero = Vec2{}

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Dot(b Vec2) float64   { return a.X*b.X + a.Y*b.Y }

// Len returns the Euclidean length
func (a Vec2) Len() float64 { return math.Hypot(a.X, a.Y) }

// LenSq returns squared length without sqrt
func (a Vec2) LenSq() float64 { return a.X*a.X + a.Y*a.Y }

// Normalize returns the unit vector, zero-safe
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Zero
	}
	return Vec2{a.X / l, a.Y / l}
}

// ReflectX returns the vector reflected off a vertical wall (left/right arena edge)
func (a Vec2) ReflectX() Vec2 { return Vec2{-a.X, a.Y} }

// ReflectY returns the vector reflected off a horizontal wall (top/bottom arena edge)
func (a Vec2) ReflectY() Vec2 { return Vec2{a.X, -a.Y} }

// IsFinite reports whether neither component is NaN or infinite
func (a Vec2) IsFinite() bool {
	return !math.IsNaN(a.X) && !math.IsNaN(a.Y) && !math.IsInf(a.X, 0) && !math.IsInf(a.Y, 0)
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Len()
}
