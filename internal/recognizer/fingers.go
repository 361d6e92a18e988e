package recognizer

import "github.com/MythAkaDhawal/Gesture-Smart/internal/tracker"

// Finger positions in a FingerState vector.
const (
	Thumb = iota
	Index
	Middle
	Ring
	Pinky
)

// FingerState records which fingers are extended, in the fixed order
// [thumb, index, middle, ring, pinky]. Derived fresh per frame; never
// persisted.
type FingerState [5]bool

// Count returns the number of extended fingers.
func (f FingerState) Count() int {
	n := 0
	for _, up := range f {
		if up {
			n++
		}
	}
	return n
}

// ExtractFingerState determines which fingers of a hand are extended.
//
// The thumb test is orientation-aware: the direction to test is picked each
// frame by comparing the tip x-coordinate against the IP joint, then the
// tip must clear the joint in that direction. It only approximates true
// abduction and misreads under some wrist rotations; downstream tuning
// depends on this exact heuristic, so keep it as is.
//
// The other four fingers count as extended when the tip sits above the PIP
// joint (image y grows downward).
//
// The hand must carry the full landmark set; callers check Complete first.
func ExtractFingerState(hand tracker.Hand) FingerState {
	var fs FingerState

	tip := hand.Points[tracker.ThumbTip]
	joint := hand.Points[tracker.ThumbIP]
	if tip.X > joint.X {
		fs[Thumb] = tip.X > joint.X
	} else {
		fs[Thumb] = tip.X < joint.X
	}

	fs[Index] = hand.Points[tracker.IndexTip].Y < hand.Points[tracker.IndexPIP].Y
	fs[Middle] = hand.Points[tracker.MiddleTip].Y < hand.Points[tracker.MiddlePIP].Y
	fs[Ring] = hand.Points[tracker.RingTip].Y < hand.Points[tracker.RingPIP].Y
	fs[Pinky] = hand.Points[tracker.PinkyTip].Y < hand.Points[tracker.PinkyPIP].Y

	return fs
}
