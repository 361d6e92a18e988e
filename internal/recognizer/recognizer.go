package recognizer

import (
	"fmt"

	"github.com/MythAkaDhawal/Gesture-Smart/internal/tracker"
)

// Config holds the thresholds and debounce windows the recognizer needs.
// Distances are in pixels, debounce windows in frames. All values are
// required and validated once at construction.
type Config struct {
	// PinchThreshold is the maximum thumb-to-fingertip distance that still
	// counts as a pinch.
	PinchThreshold float64

	// ScrollSensitivity is the minimum vertical wrist travel that triggers
	// a scroll.
	ScrollSensitivity float64

	// ZoomSensitivity is the minimum change in the thumb-index spread that
	// triggers a zoom.
	ZoomSensitivity float64

	// DebounceTime is the general cooldown between repeated gestures.
	DebounceTime int

	// DebounceTimeShort is the cooldown for quickly repeatable gestures.
	DebounceTimeShort int

	// DebounceTimeLong is the cooldown for gestures that should not fire
	// in rapid succession.
	DebounceTimeLong int
}

func (c Config) validate() error {
	if c.PinchThreshold <= 0 {
		return fmt.Errorf("recognizer: pinch threshold must be positive, got %g", c.PinchThreshold)
	}
	if c.ScrollSensitivity <= 0 {
		return fmt.Errorf("recognizer: scroll sensitivity must be positive, got %g", c.ScrollSensitivity)
	}
	if c.ZoomSensitivity <= 0 {
		return fmt.Errorf("recognizer: zoom sensitivity must be positive, got %g", c.ZoomSensitivity)
	}
	if c.DebounceTime <= 0 || c.DebounceTimeShort <= 0 || c.DebounceTimeLong <= 0 {
		return fmt.Errorf("recognizer: debounce windows must be positive, got %d/%d/%d",
			c.DebounceTime, c.DebounceTimeShort, c.DebounceTimeLong)
	}
	return nil
}

// Recognizer turns per-frame hand observations into gesture events. It owns
// all persistent classification state, so independent instances never
// contaminate each other.
//
// A Recognizer is single-threaded by design: callers must invoke Recognize
// exactly once per logical frame tick and must not share an instance across
// goroutines without external locking. Debounce counters advance once per
// call, so skipped or duplicated calls desynchronize them from wall-clock
// time.
type Recognizer struct {
	config  Config
	twoHand TwoHandClassifier

	dragStarted  bool
	lastHandY    int
	lastZoomDist float64

	debounceClick         int
	debounceScroll        int
	debounceZoom          int
	debounceTabSwitch     int
	debounceDesktopSwitch int
}

// New creates a Recognizer with the given thresholds. Missing or
// non-positive configuration values are fatal here rather than surfacing as
// misbehavior per frame. The two-hand path defaults to the centroid stub;
// see SetTwoHandClassifier.
func New(config Config) (*Recognizer, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	return &Recognizer{
		config:  config,
		twoHand: &CentroidClassifier{},
	}, nil
}

// SetTwoHandClassifier replaces the two-hand gesture strategy.
func (r *Recognizer) SetTwoHandClassifier(c TwoHandClassifier) {
	if c != nil {
		r.twoHand = c
	}
}

// Recognize classifies one frame and returns exactly one event. State
// mutation and event emission are atomic from the caller's perspective.
func (r *Recognizer) Recognize(frame tracker.Frame) Event {
	r.tickDebounce()

	if len(frame.Hands) == 0 {
		if r.dragStarted {
			r.dragStarted = false
			return Event{Kind: KindReleaseHold}
		}
		return None
	}

	if len(frame.Hands) == 2 && r.debounceDesktopSwitch == 0 {
		if !frame.Hands[0].Complete() || !frame.Hands[1].Complete() {
			// A malformed observation breaks the stroke like any other
			// interruption of the two-hand path.
			r.twoHand.Reset()
			return None
		}
		return r.classifyTwo([2]tracker.Hand{frame.Hands[0], frame.Hands[1]})
	}

	// A frame with two hands but an active desktop-switch cooldown falls
	// through to single-hand classification on the primary hand. The
	// two-hand displacement tracking restarts once the path resumes.
	r.twoHand.Reset()

	hand := frame.Hands[0]
	if !hand.Complete() {
		// Malformed observation: degrade to None for this frame without
		// touching any tracking state.
		return None
	}

	return r.classifySingle(hand)
}

// classifyTwo runs the two-hand strategy, suppresses events whose cooldown
// is still running and arms the counters for the ones that pass, mirroring
// the check-then-arm pattern of the single-hand rules.
func (r *Recognizer) classifyTwo(hands [2]tracker.Hand) Event {
	ev := r.twoHand.Classify(hands)

	switch ev.Kind {
	case KindSwitchDesktops:
		// The counter is always clear here: an armed one routes the frame
		// to the single-hand path before classification.
		if r.debounceDesktopSwitch > 0 {
			return None
		}
		r.debounceDesktopSwitch = r.config.DebounceTimeLong
	case KindSwitchTabs:
		if r.debounceTabSwitch > 0 {
			return None
		}
		r.debounceTabSwitch = r.config.DebounceTime
	}

	return ev
}

// tickDebounce decrements every active debounce counter by exactly one,
// flooring at zero.
func (r *Recognizer) tickDebounce() {
	for _, counter := range []*int{
		&r.debounceClick,
		&r.debounceScroll,
		&r.debounceZoom,
		&r.debounceTabSwitch,
		&r.debounceDesktopSwitch,
	} {
		if *counter > 0 {
			*counter--
		}
	}
}
