package poseviz

import (
	"math"
	"testing"
)

// floatEqual compares two values within epsilon
func floatEqual(a, b, epsilon float64) bool {
	if diff := a - b; diff > epsilon || diff < -epsilon {
		return false
	}

	return true
}

// TestViewAngleAnalysis checks the continuous rotation completes one
// revolution every 6000 time units
func TestViewAngleAnalysis(t *testing.T) {
	tests := []struct {
		at   float64
		want float64
	}{
		{0, 0},
		{1500, math.Pi / 2},
		{3000, math.Pi},
		{4500, 3 * math.Pi / 2},
		{6000, 2 * math.Pi},
		{9000, 3 * math.Pi},
	}

	for _, tc := range tests {
		got := ViewAngle(ModeAnalysis, tc.at)

		if !floatEqual(got, tc.want, 1e-9) {
			t.Errorf("t=%v: got %v, want %v", tc.at, got, tc.want)
		}
	}
}

// TestViewAngleDemoHold checks the figure faces forward for the first
// 7000 units of every 9000 unit cycle, for any starting time
func TestViewAngleDemoHold(t *testing.T) {
	starts := []float64{0, 9000, 27000, 900000, 9e9}

	for _, start := range starts {
		for dt := 0.0; dt < 7000; dt += 350 {
			if got := ViewAngle(ModeDemo, start+dt); got != 0 {
				t.Errorf("t=%v: got %v, want 0", start+dt, got)
			}
		}
	}
}

// TestViewAngleDemoTurn checks the half turn ramps linearly over the
// last 2000 units of the cycle
func TestViewAngleDemoTurn(t *testing.T) {
	tests := []struct {
		at   float64
		want float64
	}{
		{7000, 0},
		{7500, math.Pi / 4},
		{8000, math.Pi / 2},
		{8500, 3 * math.Pi / 4},
		{8999, math.Pi * 1999.0 / 2000.0},
		{9000, 0},            // next cycle faces forward again
		{16000, math.Pi / 2}, // second cycle
	}

	for _, tc := range tests {
		got := ViewAngle(ModeDemo, tc.at)

		if !floatEqual(got, tc.want, 1e-9) {
			t.Errorf("t=%v: got %v, want %v", tc.at, got, tc.want)
		}
	}
}

// TestPosePhase checks the pose phase advances one keyframe per 2000
// units and is not reset by the demo rotation cycle
func TestPosePhase(t *testing.T) {
	tests := []struct {
		at   float64
		want float64
	}{
		{0, 0},
		{1000, 0.5},
		{2000, 1},
		{5000, 2.5},
		{9000, 4.5}, // demo cycle boundary does not reset the phase
		{10000, 5},
	}

	for _, tc := range tests {
		got := PosePhase(tc.at)

		if !floatEqual(got, tc.want, 1e-9) {
			t.Errorf("t=%v: got %v, want %v", tc.at, got, tc.want)
		}
	}
}

// TestViewAngleLargeTimes checks the clock formulas stay accurate at
// large absolute times
func TestViewAngleLargeTimes(t *testing.T) {
	// 10000 full revolutions plus a quarter
	got := math.Mod(ViewAngle(ModeAnalysis, 6e7+1500), 2*math.Pi)

	if !floatEqual(got, math.Pi/2, 1e-6) {
		t.Errorf("analysis at large t: got %v, want %v", got, math.Pi/2)
	}

	// deep into the demo timeline, mid hold window
	if got := ViewAngle(ModeDemo, 9e9+3000); got != 0 {
		t.Errorf("demo at large t: got %v, want 0", got)
	}
}

// TestViewAngleUnknownMode checks unrecognised modes behave as analysis
func TestViewAngleUnknownMode(t *testing.T) {
	if got, want := ViewAngle(Mode("replay"), 1500), math.Pi/2; !floatEqual(got, want, 1e-9) {
		t.Errorf("got %v, want %v", got, want)
	}
}
