// Package tracker provides hand-tracking types and the landmark source
// boundary for the Gesture-Smart motion control system.
package tracker

import "image"

// Hand landmark indices following the MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point is a single hand landmark in image-pixel coordinates.
// Z is the relative depth estimate reported by the tracker, in the
// landmark model's own scale (smaller is closer to the camera).
type Point struct {
	X int     `json:"x"`
	Y int     `json:"y"`
	Z float64 `json:"z"`
}

// Hand is one detected hand for a single frame. It is produced fresh per
// frame and treated as immutable by everything downstream.
type Hand struct {
	Points     []Point         `json:"points"`
	Handedness string          `json:"handedness"` // "Left" or "Right"
	Score      float64         `json:"score"`
	BBox       image.Rectangle `json:"-"`
}

// Complete reports whether the observation carries the full landmark set.
// Consumers must check this before indexing into Points.
func (h *Hand) Complete() bool {
	return len(h.Points) >= NumLandmarks
}

// Frame is everything the tracker produced for one captured frame:
// zero to MaxHands hands in source order. Index 0 is the primary hand.
// Hand identity is not stable between frames; the slot a physical hand
// occupies may change from one frame to the next.
type Frame struct {
	Hands  []Hand
	Width  int
	Height int
}

// BoundingBox computes the axis-aligned pixel bounding box of a landmark set.
// Returns the zero rectangle for an empty set.
func BoundingBox(points []Point) image.Rectangle {
	if len(points) == 0 {
		return image.Rectangle{}
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	return image.Rect(minX, minY, maxX, maxY)
}
