package tracker

import (
	"gocv.io/x/gocv"
)

// MockTracker is a test implementation of the Tracker interface.
// It allows tests and the demo pipeline to control tracking results.
type MockTracker struct {
	frame Frame
	err   error
}

// NewMockTracker creates a new MockTracker instance.
func NewMockTracker() *MockTracker {
	return &MockTracker{}
}

// SetFrame sets the frame that will be returned by Track.
func (m *MockTracker) SetFrame(frame Frame) {
	m.frame = frame
}

// SetError sets the error that will be returned by Track.
func (m *MockTracker) SetError(err error) {
	m.err = err
}

// Track returns the pre-configured frame or error.
func (m *MockTracker) Track(frame *gocv.Mat) (Frame, error) {
	if m.err != nil {
		return Frame{}, m.err
	}
	return m.frame, nil
}

// Close is a no-op for the mock tracker.
func (m *MockTracker) Close() error {
	return nil
}

// Preset hand poses for tests and demos. Coordinates live in a 1280x720
// pixel frame with the hand roughly centered. The thumb extension check
// compares the tip x-coordinate against the IP joint, so curled-thumb poses
// keep those two x values equal.

// FistHand returns a closed fist: no finger extended.
func FistHand() Hand {
	points := make([]Point, NumLandmarks)

	points[Wrist] = Point{X: 640, Y: 520}

	// Thumb curled across the palm; tip x matches the IP joint.
	points[ThumbCMC] = Point{X: 600, Y: 500}
	points[ThumbMCP] = Point{X: 580, Y: 480}
	points[ThumbIP] = Point{X: 570, Y: 460}
	points[ThumbTip] = Point{X: 570, Y: 470}

	// Index curled: tip sits below the PIP joint.
	points[IndexMCP] = Point{X: 610, Y: 440}
	points[IndexPIP] = Point{X: 612, Y: 430}
	points[IndexDIP] = Point{X: 612, Y: 445}
	points[IndexTip] = Point{X: 610, Y: 455}

	// Middle curled.
	points[MiddleMCP] = Point{X: 640, Y: 435}
	points[MiddlePIP] = Point{X: 640, Y: 425}
	points[MiddleDIP] = Point{X: 640, Y: 445}
	points[MiddleTip] = Point{X: 638, Y: 455}

	// Ring curled.
	points[RingMCP] = Point{X: 668, Y: 440}
	points[RingPIP] = Point{X: 668, Y: 430}
	points[RingDIP] = Point{X: 666, Y: 448}
	points[RingTip] = Point{X: 664, Y: 458}

	// Pinky curled.
	points[PinkyMCP] = Point{X: 695, Y: 450}
	points[PinkyPIP] = Point{X: 696, Y: 440}
	points[PinkyDIP] = Point{X: 694, Y: 455}
	points[PinkyTip] = Point{X: 692, Y: 462}

	return Hand{
		Points:     points,
		Handedness: "Right",
		Score:      0.95,
		BBox:       BoundingBox(points),
	}
}

// OpenPalmHand returns an open hand: all five fingers extended.
func OpenPalmHand() Hand {
	hand := FistHand()

	// Thumb abducted to the side; tip x clears the IP joint.
	hand.Points[ThumbIP] = Point{X: 548, Y: 455}
	hand.Points[ThumbTip] = Point{X: 520, Y: 430}

	// Four fingers extended: tips well above their PIP joints.
	hand.Points[IndexPIP] = Point{X: 612, Y: 400}
	hand.Points[IndexDIP] = Point{X: 614, Y: 365}
	hand.Points[IndexTip] = Point{X: 615, Y: 330}

	hand.Points[MiddlePIP] = Point{X: 640, Y: 395}
	hand.Points[MiddleDIP] = Point{X: 640, Y: 355}
	hand.Points[MiddleTip] = Point{X: 640, Y: 315}

	hand.Points[RingPIP] = Point{X: 668, Y: 400}
	hand.Points[RingDIP] = Point{X: 669, Y: 360}
	hand.Points[RingTip] = Point{X: 670, Y: 325}

	hand.Points[PinkyPIP] = Point{X: 695, Y: 415}
	hand.Points[PinkyDIP] = Point{X: 698, Y: 380}
	hand.Points[PinkyTip] = Point{X: 700, Y: 350}

	hand.BBox = BoundingBox(hand.Points)
	return hand
}

// IndexPinchHand returns a hand with only the index finger extended and the
// thumb tip gap pixels away from the index tip.
func IndexPinchHand(gap int) Hand {
	hand := FistHand()

	hand.Points[IndexPIP] = Point{X: 612, Y: 400}
	hand.Points[IndexDIP] = Point{X: 612, Y: 370}
	hand.Points[IndexTip] = Point{X: 612, Y: 340}

	// Thumb reaches toward the index tip but stays curled for the
	// extension check: tip x equals the IP joint x.
	hand.Points[ThumbIP] = Point{X: 612, Y: 380}
	hand.Points[ThumbTip] = Point{X: 612, Y: 340 + gap}

	hand.BBox = BoundingBox(hand.Points)
	return hand
}

// MiddlePinchHand returns a hand with only the middle finger extended and
// the thumb tip gap pixels away from the middle tip.
func MiddlePinchHand(gap int) Hand {
	hand := FistHand()

	hand.Points[MiddlePIP] = Point{X: 640, Y: 395}
	hand.Points[MiddleDIP] = Point{X: 640, Y: 358}
	hand.Points[MiddleTip] = Point{X: 640, Y: 320}

	hand.Points[ThumbIP] = Point{X: 640, Y: 380}
	hand.Points[ThumbTip] = Point{X: 640, Y: 320 + gap}

	hand.BBox = BoundingBox(hand.Points)
	return hand
}

// SpreadHand returns a hand with exactly the thumb and index extended,
// separated by gap pixels. This is the zoom pose.
func SpreadHand(gap int) Hand {
	hand := FistHand()

	hand.Points[IndexPIP] = Point{X: 640, Y: 400}
	hand.Points[IndexDIP] = Point{X: 640, Y: 370}
	hand.Points[IndexTip] = Point{X: 640, Y: 340}

	hand.Points[ThumbIP] = Point{X: 500, Y: 470}
	hand.Points[ThumbTip] = Point{X: 640, Y: 340 + gap}

	hand.BBox = BoundingBox(hand.Points)
	return hand
}
