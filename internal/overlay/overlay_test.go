package overlay

import (
	"testing"

	"gocv.io/x/gocv"

	"github.com/MythAkaDhawal/Gesture-Smart/internal/recognizer"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/tracker"
)

func TestRenderer_DrawAnnotatesFrame(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping gocv test")
	}

	img := gocv.NewMatWithSize(720, 1280, gocv.MatTypeCV8UC3)
	defer img.Close()

	frame := tracker.Frame{
		Hands:  []tracker.Hand{tracker.OpenPalmHand()},
		Width:  1280,
		Height: 720,
	}

	r := NewRenderer()
	r.Draw(&img, frame, recognizer.Event{Kind: recognizer.KindCursorMove}, 29.7)

	// A black frame stays black unless something was drawn on it.
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)
	if gocv.CountNonZero(gray) == 0 {
		t.Error("Draw() left the frame untouched")
	}
}

func TestRenderer_DrawWithoutHands(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping gocv test")
	}

	img := gocv.NewMatWithSize(720, 1280, gocv.MatTypeCV8UC3)
	defer img.Close()

	r := NewRenderer()
	r.Draw(&img, tracker.Frame{Width: 1280, Height: 720}, recognizer.None, 30)

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)
	// The HUD panel still renders even with no hands in view.
	if gocv.CountNonZero(gray) == 0 {
		t.Error("Draw() should render the status panel")
	}
}

func TestRenderer_TogglesRespected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping gocv test")
	}

	img := gocv.NewMatWithSize(720, 1280, gocv.MatTypeCV8UC3)
	defer img.Close()

	r := NewRenderer()
	r.ShowLandmarks = false
	r.ShowBoxes = false
	r.Draw(&img, tracker.Frame{
		Hands:  []tracker.Hand{tracker.FistHand()},
		Width:  1280,
		Height: 720,
	}, recognizer.None, 30)
	// No assertion on pixels here; the point is that disabled layers do not
	// panic on a hand-bearing frame.
}
