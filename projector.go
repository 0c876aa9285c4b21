package poseviz

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// focalLength of the fixed perspective camera.
	focalLength = 300.0

	// ViewportWidth and ViewportHeight are the logical size of the
	// drawing surface in units.  Hosts scale the viewport to any pixel
	// size; the figure is centered within it.
	ViewportWidth  = 100.0
	ViewportHeight = 120.0
)

// Projection is the 2-D placement of one joint: its position on the
// viewport, a depth-derived scale applied to stroke sizes, and a
// depth-derived opacity that fades distant joints without ever hiding
// them.
type Projection struct {
	X, Y  float64
	Scale float64
	Alpha float64

	// depth is the rotated z coordinate, kept for painter ordering
	depth float64
}

// Project rotates p about the vertical axis by angle and applies the
// fixed perspective divide, placing the point on the viewport.  It is a
// pure function of the point and angle and is periodic in the angle.
func Project(p r3.Vec, angle float64) Projection {
	sin, cos := math.Sincos(angle)

	rx := p.X*cos + p.Z*sin
	rz := -p.X*sin + p.Z*cos

	scale := focalLength / (focalLength + rz)

	return Projection{
		X:     rx*scale + ViewportWidth/2,
		Y:     p.Y*scale + ViewportHeight/2,
		Scale: scale,
		Alpha: clamp((rz+50)/100, 0.3, 1.0),
		depth: rz,
	}
}

// clamp restricts a value between a minimum and maximum
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	} else if v > max {
		return max
	}

	return v
}
