package poseviz

import (
	"reflect"
	"testing"

	"github.com/courtvision/poseviz/skeleton"
)

// findDot returns the index of the dot at (x, y) within eps, or -1
func findDot(f Frame, x, y, eps float64) int {
	for i, d := range f.Dots {
		if floatEqual(d.X, x, eps) && floatEqual(d.Y, y, eps) {
			return i
		}
	}

	return -1
}

// findLine returns the index of the line from (x1, y1) to (x2, y2)
// within eps, or -1
func findLine(f Frame, x1, y1, x2, y2, eps float64) int {
	for i, l := range f.Lines {
		if floatEqual(l.X1, x1, eps) && floatEqual(l.Y1, y1, eps) &&
			floatEqual(l.X2, x2, eps) && floatEqual(l.Y2, y2, eps) {
			return i
		}
	}

	return -1
}

// TestRenderCounts checks the analysis figure draws every bone and joint
func TestRenderCounts(t *testing.T) {
	f := Render(0, Input{Mode: ModeAnalysis})

	if len(f.Lines) != len(skeleton.Bones) {
		t.Errorf("got %d lines, want %d", len(f.Lines), len(skeleton.Bones))
	}

	if len(f.Dots) != len(skeleton.JointNames) {
		t.Errorf("got %d dots, want %d", len(f.Dots), len(skeleton.JointNames))
	}

	if f.Mode != ModeAnalysis {
		t.Errorf("frame mode %q, want %q", f.Mode, ModeAnalysis)
	}
}

// TestRenderHipDriveScenario walks the hip drive drill through one full
// loop and checks the figure hits each keyframe exactly on the 2000 unit
// beats, tracked through the paddle hand
func TestRenderHipDriveScenario(t *testing.T) {
	in := Input{Mode: ModeDemo, Drill: skeleton.HipDrive}

	// the paddle hand positions authored in the drill keyframes,
	// projected at the front view
	baseScale := 300.0 / 307.0
	loadScale := 300.0 / 294.0
	driveScale := 300.0 / 316.0

	tests := []struct {
		at   float64
		x, y float64
	}{
		{0, 21*baseScale + 50, -4*baseScale + 60},       // base pose
		{2000, 24*loadScale + 50, -8*loadScale + 60},    // load keyframe
		{4000, 18*driveScale + 50, -14*driveScale + 60}, // drive keyframe
		{6000, 21*baseScale + 50, -4*baseScale + 60},    // back to base
	}

	for _, tc := range tests {
		f := Render(tc.at, in)

		if findDot(f, tc.x, tc.y, 1e-6) < 0 {
			t.Errorf("t=%v: no dot at (%v, %v)", tc.at, tc.x, tc.y)
		}
	}

	// one full loop lands back on the identical frame
	first := Render(0, in)
	looped := Render(6000, in)

	if !reflect.DeepEqual(first, looped) {
		t.Errorf("frame after one full loop differs from the first frame")
	}
}

// TestRenderLineWidthAndAlpha checks a bone's stroke width uses the mean
// of its endpoint scales and its opacity the minimum of their alphas
func TestRenderLineWidthAndAlpha(t *testing.T) {
	f := Render(0, Input{Mode: ModeAnalysis})

	// head and neck both sit at z=0, so scale is exactly 1 and alpha 0.5
	i := findLine(f, 50, 8, 50, 20, 1e-9)

	if i < 0 {
		t.Fatalf("no head to neck line found")
	}

	if !floatEqual(f.Lines[i].Width, 2, 1e-9) {
		t.Errorf("width: got %v, want 2", f.Lines[i].Width)
	}

	if !floatEqual(f.Lines[i].Alpha, 0.5, 1e-9) {
		t.Errorf("alpha: got %v, want 0.5", f.Lines[i].Alpha)
	}
}

// TestRenderRiskColoring checks risk scores reach the drawn figure: the
// reference session colors shoulders alert, knees caution and the head
// stays neutral without a glow
func TestRenderRiskColoring(t *testing.T) {
	in := Input{
		Mode: ModeAnalysis,
		Risk: RiskVector{
			ShoulderOveruse:  80,
			PoorKineticChain: 10,
			KneeStress:       40,
		},
	}

	f := Render(0, in)

	// left shoulder to left elbow line starts at the shoulder, so it
	// takes the shoulder's alert color
	elbowScale := 300.0 / 303.0
	i := findLine(f, 36, 26, -18*elbowScale+50, -18*elbowScale+60, 1e-6)

	if i < 0 {
		t.Fatalf("no shoulder to elbow line found")
	}

	if f.Lines[i].Color != Alert || !f.Lines[i].Glow {
		t.Errorf("shoulder bone: got color %v glow %v, want alert with glow",
			f.Lines[i].Color, f.Lines[i].Glow)
	}

	kneeScale := 300.0 / 304.0
	j := findDot(f, -10*kneeScale+50, 22*kneeScale+60, 1e-6)

	if j < 0 {
		t.Fatalf("no left knee dot found")
	}

	if f.Dots[j].Color != Caution || !f.Dots[j].Glow {
		t.Errorf("knee joint: got color %v glow %v, want caution with glow",
			f.Dots[j].Color, f.Dots[j].Glow)
	}

	k := findDot(f, 50, 8, 1e-9)

	if k < 0 {
		t.Fatalf("no head dot found")
	}

	if f.Dots[k].Color != Neutral || f.Dots[k].Glow {
		t.Errorf("head joint: got color %v glow %v, want neutral without glow",
			f.Dots[k].Color, f.Dots[k].Glow)
	}
}

// TestRenderDemoIdealForm checks demo mode paints the whole figure in
// the ideal form color even with maximal risk scores
func TestRenderDemoIdealForm(t *testing.T) {
	in := Input{
		Mode:  ModeDemo,
		Drill: skeleton.LowContact,
		Risk: RiskVector{
			ShoulderOveruse:  100,
			PoorKineticChain: 100,
			KneeStress:       100,
		},
	}

	f := Render(500, in)

	if f.Mode != ModeDemo {
		t.Errorf("frame mode %q, want %q", f.Mode, ModeDemo)
	}

	for i, l := range f.Lines {
		if l.Color != Ideal {
			t.Errorf("line %d: got color %v, want ideal", i, l.Color)
		}
	}

	for i, d := range f.Dots {
		if d.Color != Ideal {
			t.Errorf("dot %d: got color %v, want ideal", i, d.Color)
		}
	}
}

// TestRenderDeterministic checks two renders of the same tick produce
// identical frames, command order included
func TestRenderDeterministic(t *testing.T) {
	in := Input{
		Mode:  ModeDemo,
		Drill: skeleton.ArmExtension,
		Risk:  RiskVector{KneeStress: 50},
	}

	a := Render(3333, in)
	b := Render(3333, in)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical ticks produced different frames")
	}
}

// TestRenderDepthOrder checks nearer joints are drawn after farther ones
// once the figure is side on
func TestRenderDepthOrder(t *testing.T) {
	// quarter turn: the left shoulder rotates away, the right toward
	f := Render(1500, Input{Mode: ModeAnalysis})

	farScale := 300.0 / 314.0
	nearScale := 300.0 / 286.0

	far := findDot(f, 50, -34*farScale+60, 1e-6)
	near := findDot(f, 50, -34*nearScale+60, 1e-6)

	if far < 0 || near < 0 {
		t.Fatalf("shoulder dots not found (far=%d near=%d)", far, near)
	}

	if near < far {
		t.Errorf("near shoulder drawn at %d before far shoulder at %d", near, far)
	}
}

// TestRenderCustomParams checks stroke sizes follow the engine params
func TestRenderCustomParams(t *testing.T) {
	e := New(Params{BoneWidth: 5, JointRadius: 10})

	f := e.Render(0, Input{Mode: ModeAnalysis})

	i := findLine(f, 50, 8, 50, 20, 1e-9)

	if i < 0 {
		t.Fatalf("no head to neck line found")
	}

	if !floatEqual(f.Lines[i].Width, 5, 1e-9) {
		t.Errorf("width: got %v, want 5", f.Lines[i].Width)
	}

	j := findDot(f, 50, 8, 1e-9)

	if j < 0 {
		t.Fatalf("no head dot found")
	}

	if !floatEqual(f.Dots[j].Radius, 10, 1e-9) {
		t.Errorf("radius: got %v, want 10", f.Dots[j].Radius)
	}
}
