package render

import (
	"image"
	"image/color"
	"math"

	"gocv.io/x/gocv"

	"github.com/courtvision/poseviz"
)

// Figure draws the frame onto img, a color Mat of the viewport size
// scaled by style.Scale.  Glow halos are drawn on a scratch Mat, blurred
// and blended beneath the figure.  Translucent primitives are blended
// against the background color before drawing, so overlapping strokes do
// not accumulate opacity.
func Figure(img *gocv.Mat, frame poseviz.Frame, style Style) {
	width := int(poseviz.ViewportWidth * float64(style.Scale))
	height := int(poseviz.ViewportHeight * float64(style.Scale))

	gocv.Rectangle(img, image.Rect(0, 0, width, height), style.Background, -1)

	if frameGlows(frame) {
		glowUnderlay(img, frame, style, width, height)
	}

	for _, l := range frame.Lines {
		gocv.Line(img,
			pixelPt(l.X1, l.Y1, style.Scale), pixelPt(l.X2, l.Y2, style.Scale),
			blend(l.Color, style.Background, l.Alpha),
			pixelSize(l.Width, style.Scale))
	}

	for _, d := range frame.Dots {
		gocv.Circle(img, pixelPt(d.X, d.Y, style.Scale),
			pixelSize(d.Radius, style.Scale),
			blend(d.Color, style.Background, d.Alpha), -1)
	}
}

// frameGlows reports whether any primitive carries the glow flag
func frameGlows(frame poseviz.Frame) bool {
	for _, l := range frame.Lines {
		if l.Glow {
			return true
		}
	}

	for _, d := range frame.Dots {
		if d.Glow {
			return true
		}
	}

	return false
}

// glowUnderlay draws the glowing primitives thickened onto a black
// scratch Mat, feathers them with a Gaussian blur and blends the result
// under the figure.
func glowUnderlay(img *gocv.Mat, frame poseviz.Frame, style Style, width, height int) {
	scratch := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0),
		height, width, img.Type())
	defer scratch.Close()

	black := color.RGBA{A: 255}

	for _, l := range frame.Lines {
		if !l.Glow {
			continue
		}

		gocv.Line(&scratch,
			pixelPt(l.X1, l.Y1, style.Scale), pixelPt(l.X2, l.Y2, style.Scale),
			blend(l.Color, black, l.Alpha),
			pixelSize(l.Width+style.GlowWidth, style.Scale))
	}

	for _, d := range frame.Dots {
		if !d.Glow {
			continue
		}

		gocv.Circle(&scratch, pixelPt(d.X, d.Y, style.Scale),
			pixelSize(d.Radius+style.GlowWidth/2, style.Scale),
			blend(d.Color, black, d.Alpha), -1)
	}

	k := blurKernel(style.GlowWidth, style.Scale)
	gocv.GaussianBlur(scratch, &scratch, image.Pt(k, k), 0, 0, gocv.BorderDefault)
	gocv.AddWeighted(*img, 1, scratch, style.GlowAlpha, 0, img)
}

// pixelPt converts viewport coordinates to an output pixel point
func pixelPt(x, y float64, scale int) image.Point {
	return image.Pt(int(math.Round(x*float64(scale))), int(math.Round(y*float64(scale))))
}

// pixelSize converts a stroke size in viewport units to whole pixels,
// at least one
func pixelSize(w float64, scale int) int {
	px := int(math.Round(w * float64(scale)))

	if px < 1 {
		return 1
	}

	return px
}

// blurKernel returns an odd Gaussian kernel size wide enough to feather
// the halo
func blurKernel(glowWidth float64, scale int) int {
	k := int(glowWidth * float64(scale))

	if k%2 == 0 {
		k++
	}

	if k < 3 {
		return 3
	}

	return k
}

// blend composites the color over bg at the given opacity
func blend(clr, bg color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return clr
	}

	if alpha < 0 {
		alpha = 0
	}

	return color.RGBA{
		R: mixChannel(clr.R, bg.R, alpha),
		G: mixChannel(clr.G, bg.G, alpha),
		B: mixChannel(clr.B, bg.B, alpha),
		A: 255,
	}
}

func mixChannel(c, b uint8, alpha float64) uint8 {
	return uint8(float64(c)*alpha + float64(b)*(1-alpha) + 0.5)
}
