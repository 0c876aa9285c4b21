package skeleton

import (
	"math"
)

// Interpolate returns the pose at the given phase of a looping keyframe
// sequence.  The phase is folded into the loop period of len(seq)-1, the
// two keyframes either side of it are blended linearly, and integer
// phases land exactly on their keyframe.  Authored keyframes may be
// partial; a joint present in only one of the source keyframes holds
// that keyframe's position.
func Interpolate(seq []Pose, phase float64) Pose {
	if len(seq) == 0 {
		return Pose{}
	}

	if len(seq) == 1 {
		return seq[0]
	}

	period := float64(len(seq) - 1)
	cycle := math.Mod(phase, period)

	if cycle < 0 {
		cycle += period
	}

	i := int(cycle)
	frameT := cycle - float64(i)

	a := seq[i]
	b := seq[(i+1)%len(seq)]

	out := make(Pose, len(a))

	for name, pa := range a {
		pb, ok := b[name]

		if !ok {
			// joint missing from the later keyframe
			out[name] = pa
			continue
		}

		out[name] = lerpVec(pa, pb, frameT)
	}

	// joints present only in the later keyframe
	for name, pb := range b {
		if _, ok := a[name]; !ok {
			out[name] = pb
		}
	}

	return out
}
