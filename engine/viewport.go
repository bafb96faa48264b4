package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/bounce-arena/vmath"
)

// ErrInvalidViewport is returned for viewports with non-positive or non-finite extents
var ErrInvalidViewport = errors.New("invalid viewport")

// Viewport is the arena extent in arena units, origin bottom-left, +Y up
type Viewport struct {
	Width  float64 `json:"width" msgpack:"width"`
	Height float64 `json:"height" msgpack:"height"`
}

// Validate rejects zero, negative, NaN and infinite extents
func (v Viewport) Validate() error {
	if !(v.Width > 0) || !(v.Height > 0) || math.IsInf(v.Width, 0) || math.IsInf(v.Height, 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidViewport, v.Width, v.Height)
	}
	return nil
}

// Bounds returns the legal center range for a body of the given radius
func (v Viewport) Bounds(radius float64) vmath.Bounds {
	return vmath.ArenaBounds(v.Width, v.Height, radius)
}

// Center returns the middle of the arena
func (v Viewport) Center() vmath.Vec2 {
	return vmath.Vec2{X: v.Width / 2, Y: v.Height / 2}
}
