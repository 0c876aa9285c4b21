package poseviz

import (
	"image/color"

	"github.com/courtvision/poseviz/skeleton"
)

// RiskVector holds the three biomechanical risk scores supplied by the
// analysis backend, each in the range 0 to 100.  Field names match the
// backend's session summary, and missing values decode to 0 (safe).
type RiskVector struct {
	ShoulderOveruse  float64 `json:"shoulder_overuse"`
	PoorKineticChain float64 `json:"poor_kinetic_chain"`
	KneeStress       float64 `json:"knee_stress"`
}

// Figure colors.  Neutral paints the joints no risk score applies to,
// and Ideal paints the whole figure during demo mode drill playback.
var (
	Safe    = color.RGBA{R: 34, G: 197, B: 94, A: 255}   // #22C55E
	Caution = color.RGBA{R: 245, G: 158, B: 11, A: 255}  // #F59E0B
	Alert   = color.RGBA{R: 239, G: 68, B: 68, A: 255}   // #EF4444
	Neutral = color.RGBA{R: 148, G: 163, B: 184, A: 255} // #94A3B8
	Ideal   = color.RGBA{R: 56, G: 189, B: 248, A: 255}  // #38BDF8
)

// riskCategory selects which risk score colors a joint.
type riskCategory int

const (
	categoryNeutral riskCategory = iota
	categoryShoulder
	categoryKineticChain
	categoryKnee
)

// jointCategories maps each topology joint to the risk score that colors
// it.  Joints left out of the table render neutral.
var jointCategories = map[string]riskCategory{
	skeleton.ShoulderCenter: categoryShoulder,
	skeleton.LeftShoulder:   categoryShoulder,
	skeleton.RightShoulder:  categoryShoulder,
	skeleton.SpineMid:       categoryKineticChain,
	skeleton.SpineBase:      categoryKineticChain,
	skeleton.HipCenter:      categoryKineticChain,
	skeleton.LeftHip:        categoryKineticChain,
	skeleton.RightHip:       categoryKineticChain,
	skeleton.LeftKnee:       categoryKnee,
	skeleton.RightKnee:      categoryKnee,
}

// TierColor returns the color band for a single risk score: above 66
// alert, above 33 caution, otherwise safe.
func TierColor(score float64) color.RGBA {
	switch {
	case score > 66:
		return Alert
	case score > 33:
		return Caution
	default:
		return Safe
	}
}

// JointColor returns the render color for the named joint.  Demo mode
// paints the whole figure in the ideal form color.  Analysis mode colors
// each joint by the tier of its category's risk score.
func JointColor(name string, risk RiskVector, mode Mode) color.RGBA {
	if mode == ModeDemo {
		return Ideal
	}

	switch jointCategories[name] {
	case categoryShoulder:
		return TierColor(risk.ShoulderOveruse)
	case categoryKineticChain:
		return TierColor(risk.PoorKineticChain)
	case categoryKnee:
		return TierColor(risk.KneeStress)
	default:
		return Neutral
	}
}

// BoneColor returns the render color for a bone.  A bone takes the color
// of its start joint even when its end joint would color differently.
func BoneColor(b skeleton.Bone, risk RiskVector, mode Mode) color.RGBA {
	return JointColor(b.Start, risk, mode)
}
