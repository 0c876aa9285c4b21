package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	clipper "github.com/ctessum/go.clipper"
	"golang.org/x/image/vector"

	"github.com/courtvision/poseviz"
)

const (
	// clipperScale converts viewport units to the integer grid the
	// polygon offsetter works on.
	clipperScale = 64.0

	// circleSegments is the number of chords used to approximate a
	// circle outline.
	circleSegments = 24
)

// Image rasterizes the frame into a new RGBA image of the viewport size
// scaled by style.Scale.  Round capped strokes are built by offsetting
// each open segment into a polygon and filling it with an antialiased
// rasterizer.  The glow halos of risk colored primitives are laid down
// first, then bones, then joints, in the frame's draw order.
func Image(frame poseviz.Frame, style Style) *image.RGBA {
	width := int(poseviz.ViewportWidth * float64(style.Scale))
	height := int(poseviz.ViewportHeight * float64(style.Scale))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(style.Background),
		image.Point{}, draw.Src)

	ras := vector.NewRasterizer(width, height)

	// halo pass beneath the figure
	for _, l := range frame.Lines {
		if !l.Glow {
			continue
		}

		polys := strokeSegment(l.X1, l.Y1, l.X2, l.Y2, (l.Width+style.GlowWidth)/2)
		fillPolys(img, ras, polys, style.Scale, tint(l.Color, l.Alpha*style.GlowAlpha))
	}

	for _, d := range frame.Dots {
		if !d.Glow {
			continue
		}

		fillCircle(img, ras, d.X, d.Y, d.Radius+style.GlowWidth/2, style.Scale,
			tint(d.Color, d.Alpha*style.GlowAlpha))
	}

	// bones then joints
	for _, l := range frame.Lines {
		polys := strokeSegment(l.X1, l.Y1, l.X2, l.Y2, l.Width/2)
		fillPolys(img, ras, polys, style.Scale, tint(l.Color, l.Alpha))
	}

	for _, d := range frame.Dots {
		fillCircle(img, ras, d.X, d.Y, d.Radius, style.Scale, tint(d.Color, d.Alpha))
	}

	return img
}

// strokeSegment expands an open segment into a round capped closed
// polygon, offset by half the stroke width on the clipper integer grid.
func strokeSegment(x1, y1, x2, y2, halfWidth float64) clipper.Paths {
	if halfWidth <= 0 {
		return nil
	}

	path := clipper.Path{
		&clipper.IntPoint{X: clipper.CInt(x1 * clipperScale), Y: clipper.CInt(y1 * clipperScale)},
		&clipper.IntPoint{X: clipper.CInt(x2 * clipperScale), Y: clipper.CInt(y2 * clipperScale)},
	}

	co := clipper.NewClipperOffset()
	co.AddPath(path, clipper.JtRound, clipper.EtOpenRound)

	return co.Execute(halfWidth * clipperScale)
}

// fillPolys rasterizes closed polygons from the offsetter's integer grid
// onto the image.
func fillPolys(img *image.RGBA, ras *vector.Rasterizer, polys clipper.Paths,
	scale int, src color.Color) {

	if len(polys) == 0 {
		return
	}

	px := float64(scale) / clipperScale
	bounds := img.Bounds()

	ras.Reset(bounds.Dx(), bounds.Dy())

	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}

		ras.MoveTo(float32(float64(poly[0].X)*px), float32(float64(poly[0].Y)*px))

		for _, pt := range poly[1:] {
			ras.LineTo(float32(float64(pt.X)*px), float32(float64(pt.Y)*px))
		}

		ras.ClosePath()
	}

	ras.Draw(img, bounds, image.NewUniform(src), image.Point{})
}

// fillCircle rasterizes a filled circle as a many sided polygon.
func fillCircle(img *image.RGBA, ras *vector.Rasterizer, cx, cy, radius float64,
	scale int, src color.Color) {

	if radius <= 0 {
		return
	}

	s := float64(scale)
	bounds := img.Bounds()

	ras.Reset(bounds.Dx(), bounds.Dy())
	ras.MoveTo(float32((cx+radius)*s), float32(cy*s))

	for i := 1; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		ras.LineTo(float32((cx+radius*math.Cos(a))*s), float32((cy+radius*math.Sin(a))*s))
	}

	ras.ClosePath()
	ras.Draw(img, bounds, image.NewUniform(src), image.Point{})
}

// tint returns the color at the given opacity.
func tint(clr color.RGBA, alpha float64) color.Color {
	if alpha >= 1 {
		return clr
	}

	if alpha < 0 {
		alpha = 0
	}

	return color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: uint8(alpha*255 + 0.5)}
}
