package recognizer

import (
	"math"

	"github.com/MythAkaDhawal/Gesture-Smart/internal/tracker"
)

// TwoHandClassifier classifies frames that contain exactly two hands.
// Implementations must not emit an event without a confirmed swipe
// direction; a single frame never carries enough information on its own.
type TwoHandClassifier interface {
	// Classify evaluates one two-hand observation. The dispatcher applies
	// the debounce side effects for whatever event comes back.
	Classify(hands [2]tracker.Hand) Event

	// Reset clears any cross-frame displacement tracking. The dispatcher
	// calls it whenever the two-hand path is not taken.
	Reset()
}

// CentroidClassifier is the default two-hand strategy. It computes each
// hand's centroid as the building block for swipe detection but never emits
// an event: confirming a swipe needs displacement tracked across frames,
// which is what SwipeClassifier adds.
type CentroidClassifier struct{}

// Classify always returns None.
func (c *CentroidClassifier) Classify(hands [2]tracker.Hand) Event {
	// Centroids are computed so the pose is at least well-formed, but no
	// direction can be confirmed from one frame.
	_, _ = centroid(hands[0].Points)
	_, _ = centroid(hands[1].Points)
	return None
}

// Reset is a no-op; the stub keeps no cross-frame state.
func (c *CentroidClassifier) Reset() {}

// SwipeClassifier completes the two-hand extension point. It tracks the
// horizontal displacement of the midpoint between both hand centroids and
// emits a desktop switch once the travel direction has persisted long and
// far enough. A stroke that holds its direction but stops short of the
// desktop distance reads as the gentler gesture, a tab switch. Opt-in via
// configuration; the stub stays the default.
type SwipeClassifier struct {
	// MinTravel is the horizontal distance in pixels the hands must cover
	// for a desktop switch.
	MinTravel float64

	// TabTravel is the shorter distance that still counts as a tab switch
	// when the stroke ends before reaching MinTravel.
	TabTravel float64

	// MinFrames is how many consecutive frames the direction must persist.
	MinFrames int

	tracking bool
	lastX    float64
	travel   float64
	frames   int
}

// NewSwipeClassifier creates a SwipeClassifier with the given confirmation
// thresholds. Non-positive values fall back to defaults tuned for a 1280px
// frame at ~30 FPS. The tab-switch distance is half the desktop distance.
func NewSwipeClassifier(minTravel float64, minFrames int) *SwipeClassifier {
	if minTravel <= 0 {
		minTravel = 160
	}
	if minFrames <= 0 {
		minFrames = 5
	}
	return &SwipeClassifier{
		MinTravel: minTravel,
		TabTravel: minTravel / 2,
		MinFrames: minFrames,
	}
}

// Classify accumulates horizontal midpoint displacement. A stroke that
// covers MinTravel fires SwitchDesktops mid-motion; one that pauses or
// reverses after confirming its direction but before MinTravel fires
// SwitchTabs. The accumulator clears after a trigger so the same swipe
// cannot fire twice.
func (s *SwipeClassifier) Classify(hands [2]tracker.Hand) Event {
	x0, _ := centroid(hands[0].Points)
	x1, _ := centroid(hands[1].Points)
	mid := (x0 + x1) / 2

	if !s.tracking {
		s.tracking = true
		s.lastX = mid
		return None
	}

	delta := mid - s.lastX
	s.lastX = mid

	// A pause or direction change ends the current stroke and restarts
	// accumulation from this frame.
	if delta == 0 || (s.travel != 0 && math.Signbit(delta) != math.Signbit(s.travel)) {
		return s.endStroke(delta)
	}

	s.travel += delta
	s.frames++

	if s.frames < s.MinFrames || math.Abs(s.travel) < s.MinTravel {
		return None
	}

	dir := DirectionLeft
	if s.travel > 0 {
		dir = DirectionRight
	}
	s.Reset()

	return Event{Kind: KindSwitchDesktops, Direction: dir}
}

// endStroke closes the current stroke and seeds the next one with delta.
// The ended stroke's travel is always below MinTravel here: reaching it
// would have fired a desktop switch mid-stroke and reset the accumulator.
func (s *SwipeClassifier) endStroke(delta float64) Event {
	travel, frames := s.travel, s.frames
	s.travel = delta
	s.frames = boolToInt(delta != 0)

	if frames < s.MinFrames || math.Abs(travel) < s.TabTravel {
		return None
	}

	dir := DirectionPrev
	if travel > 0 {
		dir = DirectionNext
	}
	return Event{Kind: KindSwitchTabs, Direction: dir}
}

// Reset clears the displacement tracking.
func (s *SwipeClassifier) Reset() {
	s.tracking = false
	s.lastX = 0
	s.travel = 0
	s.frames = 0
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
