package poseviz

import (
	"math"
)

// Mode selects the engine's temporal behaviour.
type Mode string

const (
	// ModeAnalysis shows the live data-driven figure, holding the base
	// pose under a continuous slow rotation.
	ModeAnalysis Mode = "analysis"
	// ModeDemo plays the selected drill loop, mostly front facing with a
	// half-turn rotation pulse at the end of each cycle.
	ModeDemo Mode = "demo"
)

// Clock constants, in milliseconds of animation time.
const (
	// rotationPeriod is the time for one full revolution in analysis mode.
	rotationPeriod = 6000.0
	// demoCycle is the length of the demo rotation cycle.  The figure
	// faces forward for demoHold units then turns half a revolution over
	// the remainder of the cycle.
	demoCycle = 9000.0
	demoHold  = 7000.0
	// poseUnit is the time for one keyframe step of a drill sequence.
	poseUnit = 2000.0
)

// ViewAngle returns the rotation angle in radians about the vertical axis
// at animation time t for the given mode.  Any mode other than demo uses
// the analysis behaviour.  The angle is a pure function of t, so skipped
// or repeated ticks cause no drift.
func ViewAngle(mode Mode, t float64) float64 {
	if mode == ModeDemo {
		cycleT := math.Mod(t, demoCycle)

		if cycleT < 0 {
			cycleT += demoCycle
		}

		if cycleT < demoHold {
			return 0
		}

		return (cycleT - demoHold) / (demoCycle - demoHold) * math.Pi
	}

	return t / rotationPeriod * 2 * math.Pi
}

// PosePhase returns the keyframe phase at animation time t.  The phase
// advances continuously and never resets with the demo rotation cycle;
// rotation and pose playback are two independent functions of the same t.
func PosePhase(t float64) float64 {
	return t / poseUnit
}
