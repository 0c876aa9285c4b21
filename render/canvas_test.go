package render

import (
	"image/color"
	"testing"

	"github.com/courtvision/poseviz"
)

// testStyle returns a style with a known background and no surprises
func testStyle() Style {
	s := DefaultStyle()
	s.Scale = 2

	return s
}

// TestImageSize checks the output image covers the viewport at the
// style's pixel scale
func TestImageSize(t *testing.T) {
	img := Image(poseviz.Frame{}, testStyle())

	if w := img.Bounds().Dx(); w != 200 {
		t.Errorf("width: got %d, want 200", w)
	}

	if h := img.Bounds().Dy(); h != 240 {
		t.Errorf("height: got %d, want 240", h)
	}
}

// TestImageBackground checks untouched pixels keep the background color
func TestImageBackground(t *testing.T) {
	style := testStyle()
	img := Image(poseviz.Frame{}, style)

	corners := [][2]int{{0, 0}, {199, 0}, {0, 239}, {199, 239}, {100, 120}}

	for _, c := range corners {
		if got := img.RGBAAt(c[0], c[1]); got != style.Background {
			t.Errorf("pixel (%d,%d): got %v, want background %v",
				c[0], c[1], got, style.Background)
		}
	}
}

// TestImageDrawsDot checks an opaque dot paints its color at its center
func TestImageDrawsDot(t *testing.T) {
	frame := poseviz.Frame{
		Dots: []poseviz.Dot{
			{X: 50, Y: 60, Radius: 5, Alpha: 1, Color: poseviz.Safe},
		},
	}

	img := Image(frame, testStyle())

	if got := img.RGBAAt(100, 120); got != poseviz.Safe {
		t.Errorf("dot center: got %v, want %v", got, poseviz.Safe)
	}
}

// TestImageDrawsLine checks an opaque line paints its color along its
// length and leaves pixels beside it untouched
func TestImageDrawsLine(t *testing.T) {
	style := testStyle()

	frame := poseviz.Frame{
		Lines: []poseviz.Line{
			{X1: 20, Y1: 60, X2: 80, Y2: 60, Width: 4, Alpha: 1, Color: poseviz.Alert},
		},
	}

	img := Image(frame, style)

	if got := img.RGBAAt(100, 120); got != poseviz.Alert {
		t.Errorf("on stroke: got %v, want %v", got, poseviz.Alert)
	}

	if got := img.RGBAAt(100, 40); got != style.Background {
		t.Errorf("off stroke: got %v, want background %v", got, style.Background)
	}
}

// TestImageTranslucency checks a half transparent dot blends with the
// background instead of replacing it
func TestImageTranslucency(t *testing.T) {
	style := testStyle()

	frame := poseviz.Frame{
		Dots: []poseviz.Dot{
			{X: 50, Y: 60, Radius: 5, Alpha: 0.5, Color: poseviz.Caution},
		},
	}

	img := Image(frame, style)
	got := img.RGBAAt(100, 120)

	if got == style.Background {
		t.Errorf("translucent dot left the background untouched")
	}

	if got == poseviz.Caution {
		t.Errorf("translucent dot painted at full opacity")
	}
}

// TestImageGlowHalo checks a glowing dot lights pixels beyond its own
// radius while a plain dot does not
func TestImageGlowHalo(t *testing.T) {
	style := testStyle()

	// sample one unit outside the dot edge, inside the halo reach
	sampleX, sampleY := 112, 120

	plain := Image(poseviz.Frame{
		Dots: []poseviz.Dot{
			{X: 50, Y: 60, Radius: 5, Alpha: 1, Color: poseviz.Alert},
		},
	}, style)

	if got := plain.RGBAAt(sampleX, sampleY); got != style.Background {
		t.Errorf("plain dot leaked outside its radius: %v", got)
	}

	glowing := Image(poseviz.Frame{
		Dots: []poseviz.Dot{
			{X: 50, Y: 60, Radius: 5, Alpha: 1, Color: poseviz.Alert, Glow: true},
		},
	}, style)

	if got := glowing.RGBAAt(sampleX, sampleY); got == style.Background {
		t.Errorf("glowing dot has no halo outside its radius")
	}
}

// TestImageFullFigure checks a rendered engine frame rasterizes without
// issue and actually marks the surface
func TestImageFullFigure(t *testing.T) {
	frame := poseviz.Render(0, poseviz.Input{
		Mode: poseviz.ModeAnalysis,
		Risk: poseviz.RiskVector{ShoulderOveruse: 80},
	})

	style := testStyle()
	img := Image(frame, style)

	painted := 0

	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if img.RGBAAt(x, y) != style.Background {
				painted++
			}
		}
	}

	if painted == 0 {
		t.Errorf("figure left every pixel at the background color")
	}
}

// TestTint checks opacity scaling keeps full alpha colors untouched
func TestTint(t *testing.T) {
	if got := tint(poseviz.Safe, 1); got != poseviz.Safe {
		t.Errorf("full alpha: got %v, want %v", got, poseviz.Safe)
	}

	half := tint(poseviz.Safe, 0.5)

	nrgba, ok := half.(color.NRGBA)

	if !ok {
		t.Fatalf("half alpha: got %T, want color.NRGBA", half)
	}

	if nrgba.A != 128 {
		t.Errorf("half alpha: got A=%d, want 128", nrgba.A)
	}
}
