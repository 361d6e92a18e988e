// Package recognizer classifies per-frame hand landmark observations into
// discrete control events: clicks, drags, scrolls, zooms, cursor movement
// and navigation gestures.
package recognizer

// Kind identifies the type of a gesture event.
type Kind string

const (
	KindNone           Kind = "NONE"
	KindCursorMove     Kind = "CURSOR_MOVE"
	KindLeftClick      Kind = "LEFT_CLICK"
	KindRightClick     Kind = "RIGHT_CLICK"
	KindStartDrag      Kind = "START_DRAG"
	KindDragHold       Kind = "DRAG_HOLD"
	KindReleaseHold    Kind = "RELEASE_HOLD"
	KindZoomIn         Kind = "ZOOM_IN"
	KindZoomOut        Kind = "ZOOM_OUT"
	KindScroll         Kind = "SCROLL"
	KindSwitchTabs     Kind = "SWITCH_TABS"
	KindSwitchDesktops Kind = "SWITCH_DESKTOPS"
)

// Direction is the payload for scroll, tab-switch and desktop-switch events.
type Direction string

const (
	DirectionUp    Direction = "UP"
	DirectionDown  Direction = "DOWN"
	DirectionNext  Direction = "NEXT"
	DirectionPrev  Direction = "PREV"
	DirectionLeft  Direction = "LEFT"
	DirectionRight Direction = "RIGHT"
)

// Event is the closed set of gesture events the recognizer can emit.
// Direction is set only for Scroll, SwitchTabs and SwitchDesktops.
type Event struct {
	Kind      Kind      `json:"kind"`
	Direction Direction `json:"direction,omitempty"`
}

// None is the empty event emitted when no rule matches.
var None = Event{Kind: KindNone}
