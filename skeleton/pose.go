package skeleton

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Pose maps joint names to positions in the body-local coordinate space.
// Each coordinate occupies roughly [-60, 60], with y growing downward to
// match the drawing surface.  Poses returned by this package are shared
// and must be treated as read-only.
type Pose map[string]r3.Vec

// Clone returns a copy of the pose that is safe to modify.
func (p Pose) Clone() Pose {
	out := make(Pose, len(p))

	for name, pt := range p {
		out[name] = pt
	}

	return out
}

// overlay returns a copy of base with the joints set in partial moved to
// their partial positions.  Joints that partial does not mention keep
// their base position.
func overlay(base, partial Pose) Pose {
	out := base.Clone()

	for name, pt := range partial {
		out[name] = pt
	}

	return out
}

// lerpVec linearly interpolates between two points, with t=0 returning a
// and t=1 returning b.
func lerpVec(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}
