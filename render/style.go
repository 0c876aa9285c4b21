package render

import (
	"image/color"
)

// Style defines the parameters used for rasterizing a frame.
type Style struct {
	// Scale is the number of output pixels per viewport unit.
	Scale int
	// Background fills the surface before the figure is drawn.
	Background color.RGBA
	// GlowWidth is the extra stroke width in viewport units given to the
	// halo behind glowing primitives.
	GlowWidth float64
	// GlowAlpha is the opacity of the halo, applied on top of the
	// primitive's own opacity.
	GlowAlpha float64
}

// DefaultStyle returns the style used by the dashboard figure widget.
func DefaultStyle() Style {
	return Style{
		Scale:      4,
		Background: color.RGBA{R: 15, G: 23, B: 42, A: 255}, // #0F172A
		GlowWidth:  3,
		GlowAlpha:  0.35,
	}
}
