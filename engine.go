package poseviz

import (
	"math"
	"sort"

	"github.com/courtvision/poseviz/skeleton"
)

// Params sets the base stroke sizes of the figure in viewport units,
// before depth scaling.
type Params struct {
	BoneWidth   float64
	JointRadius float64
}

// DefaultParams returns the stroke sizes used by the dashboard figure.
func DefaultParams() Params {
	return Params{
		BoneWidth:   2,
		JointRadius: 3,
	}
}

// Input carries the per-tick external state supplied by the host: the
// operating mode, the drill to play in demo mode, and the risk scores
// coloring the figure in analysis mode.
type Input struct {
	Mode  Mode
	Drill skeleton.Drill
	Risk  RiskVector
}

// Engine renders the skeleton figure.  An Engine holds no state between
// ticks and is safe for concurrent use.
type Engine struct {
	params Params
}

// New returns an Engine with the given stroke parameters.
func New(p Params) *Engine {
	return &Engine{
		params: p,
	}
}

// defaultEngine backs the package level Render
var defaultEngine = New(DefaultParams())

// Render computes the draw commands for the figure at animation time t
// in milliseconds, using the default parameters.
func Render(t float64, in Input) Frame {
	return defaultEngine.Render(t, in)
}

// Render computes the draw commands for the figure at animation time t
// in milliseconds.  Every tick is recomputed from scratch as a pure
// function of t and in, so skipped frames cause no drift and a mode or
// drill change simply takes effect on the next call.
func (e *Engine) Render(t float64, in Input) Frame {
	angle := ViewAngle(in.Mode, t)

	var pose skeleton.Pose

	if in.Mode == ModeDemo {
		pose = skeleton.Interpolate(skeleton.Sequence(in.Drill), PosePhase(t))
	} else {
		pose = skeleton.BasePose()
	}

	projected := make(map[string]Projection, len(pose))

	for name, pt := range pose {
		projected[name] = Project(pt, angle)
	}

	frame := Frame{
		Mode:  in.Mode,
		Lines: make([]Line, 0, len(skeleton.Bones)),
		Dots:  make([]Dot, 0, len(skeleton.JointNames)),
	}

	// bones as lines, skipping any with a missing endpoint
	lineDepths := make([]float64, 0, len(skeleton.Bones))

	for _, bone := range skeleton.Bones {
		start, okStart := projected[bone.Start]
		end, okEnd := projected[bone.End]

		if !okStart || !okEnd {
			continue
		}

		clr := BoneColor(bone, in.Risk, in.Mode)

		frame.Lines = append(frame.Lines, Line{
			X1:    start.X,
			Y1:    start.Y,
			X2:    end.X,
			Y2:    end.Y,
			Width: e.params.BoneWidth * (start.Scale + end.Scale) / 2,
			Alpha: math.Min(start.Alpha, end.Alpha),
			Color: clr,
			Glow:  clr != Neutral,
		})
		lineDepths = append(lineDepths, (start.depth+end.depth)/2)
	}

	sort.Stable(drawOrder{
		depths: lineDepths,
		swap: func(i, j int) {
			frame.Lines[i], frame.Lines[j] = frame.Lines[j], frame.Lines[i]
		},
	})

	// joints as dots, in topology order so output is deterministic
	dotDepths := make([]float64, 0, len(skeleton.JointNames))

	for _, name := range skeleton.JointNames {
		p, ok := projected[name]

		if !ok {
			continue
		}

		clr := JointColor(name, in.Risk, in.Mode)

		frame.Dots = append(frame.Dots, Dot{
			X:      p.X,
			Y:      p.Y,
			Radius: e.params.JointRadius * p.Scale,
			Alpha:  p.Alpha,
			Color:  clr,
			Glow:   clr != Neutral,
		})
		dotDepths = append(dotDepths, p.depth)
	}

	sort.Stable(drawOrder{
		depths: dotDepths,
		swap: func(i, j int) {
			frame.Dots[i], frame.Dots[j] = frame.Dots[j], frame.Dots[i]
		},
	})

	return frame
}

// drawOrder sorts draw commands far to near, swapping them alongside
// their depths.  Farther means a larger rotated z, which the perspective
// divide maps to a smaller scale.
type drawOrder struct {
	depths []float64
	swap   func(i, j int)
}

func (d drawOrder) Len() int {
	return len(d.depths)
}

func (d drawOrder) Less(i, j int) bool {
	return d.depths[i] > d.depths[j]
}

func (d drawOrder) Swap(i, j int) {
	d.depths[i], d.depths[j] = d.depths[j], d.depths[i]
	d.swap(i, j)
}
