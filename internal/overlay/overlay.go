// Package overlay draws the debug HUD onto preview frames: hand landmarks,
// bounding boxes, the last recognized gesture and the measured FPS.
package overlay

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/MythAkaDhawal/Gesture-Smart/internal/recognizer"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/tracker"
)

var (
	landmarkColor = color.RGBA{0, 255, 0, 0}
	boneColor     = color.RGBA{255, 255, 255, 0}
	boxColor      = color.RGBA{0, 200, 255, 0}
	textColor     = color.RGBA{255, 255, 255, 0}
	panelColor    = color.RGBA{0, 0, 0, 0}
)

// fingerChains lists landmark index runs to connect with polylines,
// one chain per finger plus the palm base.
var fingerChains = [][]int{
	{tracker.Wrist, tracker.ThumbCMC, tracker.ThumbMCP, tracker.ThumbIP, tracker.ThumbTip},
	{tracker.Wrist, tracker.IndexMCP, tracker.IndexPIP, tracker.IndexDIP, tracker.IndexTip},
	{tracker.IndexMCP, tracker.MiddleMCP, tracker.MiddlePIP, tracker.MiddleDIP, tracker.MiddleTip},
	{tracker.MiddleMCP, tracker.RingMCP, tracker.RingPIP, tracker.RingDIP, tracker.RingTip},
	{tracker.RingMCP, tracker.PinkyMCP, tracker.PinkyPIP, tracker.PinkyDIP, tracker.PinkyTip},
	{tracker.Wrist, tracker.PinkyMCP},
}

// Renderer draws HUD elements in place on a BGR frame Mat.
type Renderer struct {
	// ShowLandmarks toggles the per-point skeleton drawing.
	ShowLandmarks bool
	// ShowBoxes toggles hand bounding boxes and handedness labels.
	ShowBoxes bool
}

// NewRenderer returns a Renderer with everything enabled.
func NewRenderer() *Renderer {
	return &Renderer{ShowLandmarks: true, ShowBoxes: true}
}

// Draw renders the frame's hands, the given gesture and FPS readout onto img.
func (r *Renderer) Draw(img *gocv.Mat, frame tracker.Frame, ev recognizer.Event, fps float64) {
	if img == nil || img.Empty() {
		return
	}

	for i := range frame.Hands {
		r.drawHand(img, &frame.Hands[i])
	}

	r.drawPanel(img, ev, fps)
}

func (r *Renderer) drawHand(img *gocv.Mat, hand *tracker.Hand) {
	if !hand.Complete() {
		return
	}

	if r.ShowLandmarks {
		for _, chain := range fingerChains {
			for i := 1; i < len(chain); i++ {
				a := hand.Points[chain[i-1]]
				b := hand.Points[chain[i]]
				gocv.Line(img, image.Pt(a.X, a.Y), image.Pt(b.X, b.Y), boneColor, 1)
			}
		}
		for _, p := range hand.Points {
			gocv.Circle(img, image.Pt(p.X, p.Y), 4, landmarkColor, -1)
		}
	}

	if r.ShowBoxes && !hand.BBox.Empty() {
		gocv.Rectangle(img, hand.BBox, boxColor, 2)
		if hand.Handedness != "" {
			label := fmt.Sprintf("%s %.2f", hand.Handedness, hand.Score)
			origin := image.Pt(hand.BBox.Min.X, hand.BBox.Min.Y-8)
			gocv.PutText(img, label, origin, gocv.FontHersheySimplex, 0.6, boxColor, 2)
		}
	}
}

// drawPanel renders the status strip in the top-left corner.
func (r *Renderer) drawPanel(img *gocv.Mat, ev recognizer.Event, fps float64) {
	gocv.Rectangle(img, image.Rect(0, 0, 260, 70), panelColor, -1)

	gesture := string(ev.Kind)
	if ev.Direction != "" {
		gesture = fmt.Sprintf("%s %s", ev.Kind, ev.Direction)
	}

	gocv.PutText(img, "Gesture: "+gesture, image.Pt(10, 28),
		gocv.FontHersheySimplex, 0.6, textColor, 2)
	gocv.PutText(img, fmt.Sprintf("FPS: %.1f", fps), image.Pt(10, 56),
		gocv.FontHersheySimplex, 0.6, textColor, 2)
}
