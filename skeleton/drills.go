package skeleton

// Drill selects one of the instructional keyframe sequences.
type Drill string

const (
	// HipDrive coils the hips and torso then fires them through, the way
	// power is generated on a drive shot.
	HipDrive Drill = "hip_drive"
	// LowContact drops into a deep knee bend and reaches for a low ball.
	LowContact Drill = "low_contact"
	// ArmExtension draws the paddle arm back then extends it fully
	// forward and high.
	ArmExtension Drill = "arm_extension"
	// AthleticStance pulses between the ready stance and a wider, lower
	// version of it.
	AthleticStance Drill = "athletic_stance"
)

// DefaultDrill is used when an unknown drill name is requested.
const DefaultDrill = AthleticStance

// basePose is the relaxed ready stance.  Elbows, hands and knees sit
// slightly forward of the torso plane so the figure reads as a natural
// stance rather than a flat cutout.
var basePose = Pose{
	Head:           {X: 0, Y: -52, Z: 0},
	Neck:           {X: 0, Y: -40, Z: 0},
	SpineMid:       {X: 0, Y: -22, Z: 0},
	SpineBase:      {X: 0, Y: -8, Z: 0},
	ShoulderCenter: {X: 0, Y: -36, Z: 0},
	LeftShoulder:   {X: -14, Y: -34, Z: 0},
	RightShoulder:  {X: 14, Y: -34, Z: 0},
	LeftElbow:      {X: -18, Y: -18, Z: 3},
	RightElbow:     {X: 18, Y: -18, Z: 3},
	LeftHand:       {X: -21, Y: -4, Z: 7},
	RightHand:      {X: 21, Y: -4, Z: 7},
	HipCenter:      {X: 0, Y: -4, Z: 0},
	LeftHip:        {X: -9, Y: -2, Z: 0},
	RightHip:       {X: 9, Y: -2, Z: 0},
	LeftKnee:       {X: -10, Y: 22, Z: 4},
	RightKnee:      {X: 10, Y: 22, Z: 4},
	LeftFoot:       {X: -11, Y: 46, Z: 0},
	RightFoot:      {X: 11, Y: 46, Z: 0},
}

// drillKeyframes holds the interior keyframes of each drill.  Keyframes
// author only the joints that move during that phase; the remaining
// joints are filled from the base pose when the sequences are built.
// Every sequence begins and ends with the base pose so the loop has no
// visible seam.
var drillKeyframes = map[Drill][]Pose{
	HipDrive: {
		// load: hips and torso coil away from the target, knees sink,
		// paddle arm trails behind
		{
			LeftHip:    {X: -8, Y: -2, Z: -5},
			RightHip:   {X: 8, Y: -2, Z: 5},
			LeftKnee:   {X: -10, Y: 26, Z: 2},
			RightKnee:  {X: 10, Y: 26, Z: 7},
			SpineMid:   {X: 2, Y: -21, Z: -2},
			LeftHand:   {X: -18, Y: -6, Z: -2},
			RightElbow: {X: 20, Y: -20, Z: -4},
			RightHand:  {X: 24, Y: -8, Z: -6},
		},
		// drive: hips fire through, paddle arm releases forward
		{
			LeftHip:    {X: -8, Y: -2, Z: 5},
			RightHip:   {X: 8, Y: -2, Z: -5},
			LeftKnee:   {X: -10, Y: 24, Z: 6},
			RightKnee:  {X: 10, Y: 20, Z: 2},
			SpineMid:   {X: -2, Y: -23, Z: 2},
			LeftHand:   {X: -22, Y: -2, Z: 4},
			RightElbow: {X: 16, Y: -20, Z: 9},
			RightHand:  {X: 18, Y: -14, Z: 16},
		},
	},
	LowContact: {
		// crouch: deep knee bend, trunk lowered and tilted forward
		{
			Head:      {X: 0, Y: -44, Z: 9},
			Neck:      {X: 0, Y: -32, Z: 7},
			SpineMid:  {X: 0, Y: -14, Z: 5},
			SpineBase: {X: 0, Y: -2, Z: 2},
			HipCenter: {X: 0, Y: 2, Z: 0},
			LeftHip:   {X: -9, Y: 4, Z: 0},
			RightHip:  {X: 9, Y: 4, Z: 0},
			LeftKnee:  {X: -11, Y: 28, Z: 8},
			RightKnee: {X: 11, Y: 28, Z: 8},
		},
		// reach: stay low, paddle arm extends down and forward to the
		// contact point
		{
			Head:       {X: 1, Y: -44, Z: 10},
			Neck:       {X: 1, Y: -32, Z: 8},
			SpineMid:   {X: 2, Y: -14, Z: 6},
			SpineBase:  {X: 0, Y: -2, Z: 2},
			HipCenter:  {X: 0, Y: 2, Z: 0},
			LeftHip:    {X: -9, Y: 4, Z: 0},
			RightHip:   {X: 9, Y: 4, Z: 0},
			LeftKnee:   {X: -11, Y: 28, Z: 8},
			RightKnee:  {X: 11, Y: 28, Z: 8},
			RightElbow: {X: 16, Y: 6, Z: 10},
			RightHand:  {X: 20, Y: 22, Z: 14},
		},
	},
	ArmExtension: {
		// backswing: paddle arm drawn back behind the torso plane
		{
			RightShoulder: {X: 13, Y: -35, Z: -3},
			RightElbow:    {X: 20, Y: -24, Z: -8},
			RightHand:     {X: 24, Y: -14, Z: -14},
			SpineMid:      {X: 1, Y: -22, Z: -2},
		},
		// extension: arm fully extended forward and high
		{
			RightShoulder: {X: 14, Y: -36, Z: 3},
			RightElbow:    {X: 19, Y: -30, Z: 8},
			RightHand:     {X: 23, Y: -40, Z: 15},
			SpineMid:      {X: -1, Y: -22, Z: 2},
		},
	},
	AthleticStance: {
		// sink: arms widen, hips and knees drop into the loaded stance
		{
			LeftElbow:  {X: -20, Y: -20, Z: 5},
			RightElbow: {X: 20, Y: -20, Z: 5},
			LeftHand:   {X: -24, Y: -8, Z: 9},
			RightHand:  {X: 24, Y: -8, Z: 9},
			SpineBase:  {X: 0, Y: -5, Z: 1},
			HipCenter:  {X: 0, Y: 0, Z: 0},
			LeftHip:    {X: -9, Y: 2, Z: 0},
			RightHip:   {X: 9, Y: 2, Z: 0},
			LeftKnee:   {X: -11, Y: 26, Z: 6},
			RightKnee:  {X: 11, Y: 26, Z: 6},
		},
	},
}

// sequences holds the complete keyframe sequences built from
// drillKeyframes, with every keyframe filled to a full pose.
var sequences map[Drill][]Pose

func init() {
	sequences = make(map[Drill][]Pose, len(drillKeyframes))

	for drill, keyframes := range drillKeyframes {
		seq := make([]Pose, 0, len(keyframes)+2)
		seq = append(seq, basePose)

		for _, kf := range keyframes {
			seq = append(seq, overlay(basePose, kf))
		}

		seq = append(seq, basePose)
		sequences[drill] = seq
	}
}

// BasePose returns the neutral ready stance held in analysis mode.
func BasePose() Pose {
	return basePose
}

// Sequence returns the looping keyframe sequence for the given drill.
// Unknown drill names fall back to the default drill.
func Sequence(d Drill) []Pose {
	seq, ok := sequences[d]

	if !ok {
		return sequences[DefaultDrill]
	}

	return seq
}

// Drills lists the available drill names.
func Drills() []Drill {
	return []Drill{HipDrive, LowContact, ArmExtension, AthleticStance}
}
