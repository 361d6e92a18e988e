package recognizer

import (
	"math"

	"github.com/MythAkaDhawal/Gesture-Smart/internal/tracker"
)

// classifySingle evaluates the ordered single-hand rule list against the
// current finger states and pinch distances. The first matching rule
// supplies the event; the zoom and scroll reference values are maintained
// on every call regardless of which rule matched, so their deltas stay
// anchored to the latest frame.
func (r *Recognizer) classifySingle(hand tracker.Hand) Event {
	fs := ExtractFingerState(hand)
	up := fs.Count()

	wristY := hand.Points[tracker.Wrist].Y
	thumbIndexDist := distance(hand.Points[tracker.ThumbTip], hand.Points[tracker.IndexTip])
	thumbMiddleDist := distance(hand.Points[tracker.ThumbTip], hand.Points[tracker.MiddleTip])

	var ev Event
	matched := false

	// Rule 1: a closed fist opens a drag, or holds one that is open.
	switch {
	case up == 0 && !r.dragStarted:
		r.dragStarted = true
		ev, matched = Event{Kind: KindStartDrag}, true
	case up == 0:
		ev, matched = Event{Kind: KindDragHold}, true
	case up > 3 && r.dragStarted:
		// Rule 2: opening the hand releases the drag.
		r.dragStarted = false
		ev, matched = Event{Kind: KindReleaseHold}, true
	}

	// Rule 3: index-thumb pinch with only the index raised is a left click.
	if !matched && fs[Index] && !fs[Middle] && !fs[Ring] && !fs[Pinky] {
		if thumbIndexDist < r.config.PinchThreshold && r.debounceClick == 0 {
			r.debounceClick = r.config.DebounceTime
			ev, matched = Event{Kind: KindLeftClick}, true
		}
	}

	// Rule 4: middle-thumb pinch with the index down is a right click.
	if !matched && fs[Middle] && !fs[Index] && !fs[Ring] && !fs[Pinky] {
		if thumbMiddleDist < r.config.PinchThreshold && r.debounceClick == 0 {
			r.debounceClick = r.config.DebounceTime
			ev, matched = Event{Kind: KindRightClick}, true
		}
	}

	// Rule 5: with exactly thumb and index raised, a change in their spread
	// beyond the sensitivity zooms. The reference distance updates whenever
	// the pose holds and resets to zero when it breaks, so the first frame
	// of a new spread pose measures against zero.
	if up == 2 && fs[Thumb] && fs[Index] {
		if !matched && r.debounceZoom == 0 {
			if delta := thumbIndexDist - r.lastZoomDist; math.Abs(delta) > r.config.ZoomSensitivity {
				r.debounceZoom = r.config.DebounceTimeLong
				if delta > 0 {
					ev = Event{Kind: KindZoomIn}
				} else {
					ev = Event{Kind: KindZoomOut}
				}
				matched = true
			}
		}
		r.lastZoomDist = thumbIndexDist
	} else {
		r.lastZoomDist = 0
	}

	// Rule 6: with all five fingers raised, vertical wrist travel scrolls.
	// On a trigger the baseline y is intentionally left stale, so the next
	// eligible frame still measures against the pre-scroll wrist position
	// and a continued sweep produces large follow-up deltas. Changing this
	// to re-baseline on trigger alters the scroll feel; leave it alone.
	if !matched && up == 5 && r.debounceScroll == 0 {
		deltaY := wristY - r.lastHandY
		if math.Abs(float64(deltaY)) > r.config.ScrollSensitivity {
			r.debounceScroll = r.config.DebounceTimeShort
			if deltaY < 0 {
				ev = Event{Kind: KindScroll, Direction: DirectionUp}
			} else {
				ev = Event{Kind: KindScroll, Direction: DirectionDown}
			}
			matched = true
		} else {
			r.lastHandY = wristY
		}
	} else {
		r.lastHandY = wristY
	}

	if matched {
		return ev
	}

	// Rule 7: an open-ish hand with nothing else going on moves the cursor.
	if up >= 4 {
		return Event{Kind: KindCursorMove}
	}

	return None
}
