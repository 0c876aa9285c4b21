package skeleton

// Joint names referenced by the skeleton topology.  The virtual joints
// shoulder_center and hip_center anchor the symmetric limb pairs to the
// torso chain.
const (
	Head           = "head"
	Neck           = "neck"
	SpineMid       = "spine_mid"
	SpineBase      = "spine_base"
	ShoulderCenter = "shoulder_center"
	LeftShoulder   = "left_shoulder"
	RightShoulder  = "right_shoulder"
	LeftElbow      = "left_elbow"
	RightElbow     = "right_elbow"
	LeftHand       = "left_hand"
	RightHand      = "right_hand"
	HipCenter      = "hip_center"
	LeftHip        = "left_hip"
	RightHip       = "right_hip"
	LeftKnee       = "left_knee"
	RightKnee      = "right_knee"
	LeftFoot       = "left_foot"
	RightFoot      = "right_foot"
)

// Bone is an ordered pair of joint names defining one rigid segment to
// draw, from Start to End.
type Bone struct {
	Start string
	End   string
}

var (
	// Bones is the fixed skeleton topology: the torso chain from head to
	// spine base, then the shoulder and hip girdles each with their
	// left and right limb chains.
	Bones = [15]Bone{
		{Head, Neck},
		{Neck, SpineMid},
		{SpineMid, SpineBase},
		{ShoulderCenter, LeftShoulder},
		{ShoulderCenter, RightShoulder},
		{LeftShoulder, LeftElbow},
		{LeftElbow, LeftHand},
		{RightShoulder, RightElbow},
		{RightElbow, RightHand},
		{HipCenter, LeftHip},
		{HipCenter, RightHip},
		{LeftHip, LeftKnee},
		{LeftKnee, LeftFoot},
		{RightHip, RightKnee},
		{RightKnee, RightFoot},
	}

	// JointNames lists every joint referenced by Bones, in drawing order.
	JointNames = [18]string{
		Head, Neck, SpineMid, SpineBase,
		ShoulderCenter, LeftShoulder, RightShoulder,
		LeftElbow, RightElbow, LeftHand, RightHand,
		HipCenter, LeftHip, RightHip,
		LeftKnee, RightKnee, LeftFoot, RightFoot,
	}
)
