package poseviz

import (
	"image/color"
)

// Frame is the draw command output of one render tick, in viewport
// units.  Commands are listed back to front: lines before dots so bones
// render beneath joints, and each list depth sorted so nearer primitives
// draw last.  A frame is pure data and carries no reference back into
// the engine.
type Frame struct {
	Mode  Mode
	Lines []Line
	Dots  []Dot
}

// Line draws one bone segment.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
	// Width is the stroke width after depth scaling.
	Width float64
	// Alpha is the opacity in [0, 1].
	Alpha float64
	Color color.RGBA
	// Glow marks risk-colored segments for a halo treatment.
	Glow bool
}

// Dot draws one joint circle.
type Dot struct {
	X, Y float64
	// Radius is the circle radius after depth scaling.
	Radius float64
	// Alpha is the opacity in [0, 1].
	Alpha float64
	Color color.RGBA
	// Glow marks risk-colored joints for a halo treatment.
	Glow bool
}
