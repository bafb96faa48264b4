package vmath

import "math"

// Bounds is an inclusive axis-aligned rectangle
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// ArenaBounds returns the region the center of a circle of the given radius may occupy
// inside a width x height arena anchored at the origin
func ArenaBounds(width, height, radius float64) Bounds {
	return Bounds{
		MinX: radius,
		MaxX: width - radius,
		MinY: radius,
		MaxY: height - radius,
	}
}

// OutsideX reports whether x lies below MinX or above MaxX
func (b Bounds) OutsideX(x float64) bool { return x < b.MinX || x > b.MaxX }

// OutsideY reports whether y lies below MinY or above MaxY
func (b Bounds) OutsideY(y float64) bool { return y < b.MinY || y > b.MaxY }

// Contains reports whether p is inside on both axes
func (b Bounds) Contains(p Vec2) bool {
	return !b.OutsideX(p.X) && !b.OutsideY(p.Y)
}

// Clamp pins p inside the bounds, each axis independently
func (b Bounds) Clamp(p Vec2) Vec2 {
	return Vec2{
		X: Clamp(p.X, b.MinX, b.MaxX),
		Y: Clamp(p.Y, b.MinY, b.MaxY),
	}
}

// Clamp restricts v to [lo, hi]
// When lo > hi (arena narrower than the entity) lo wins, so the result stays deterministic
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
