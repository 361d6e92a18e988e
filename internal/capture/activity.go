package capture

import (
	"image"
	"sync"

	"gocv.io/x/gocv"
)

// Activity gating constants
const (
	// activityBlurSize is the kernel size for Gaussian blur (21x21)
	activityBlurSize = 21
	// activityDiffThreshold is the binary threshold for difference detection
	activityDiffThreshold = 25
)

// ActivityGate decides whether a frame is worth sending to the hand tracker.
// It compares consecutive frames by blurred grayscale differencing; after a
// run of static frames the gate closes, so the tracking subprocess can idle
// out while nobody is in front of the camera. Any motion reopens it.
type ActivityGate struct {
	threshold   float64
	idleAfter   int
	prevGray    gocv.Mat
	staticRun   int
	initialized bool
	mu          sync.Mutex
}

// NewActivityGate creates a gate that closes after idleAfter consecutive
// frames with less than threshold percent of pixels changing. An idleAfter
// of 0 disables gating entirely.
func NewActivityGate(threshold float64, idleAfter int) *ActivityGate {
	return &ActivityGate{
		threshold: threshold,
		idleAfter: idleAfter,
		prevGray:  gocv.NewMat(),
	}
}

// Check reports whether the frame should be tracked. The first frame always
// passes; it seeds the baseline.
func (g *ActivityGate) Check(frame *gocv.Mat) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idleAfter <= 0 {
		return true
	}
	if frame == nil || frame.Empty() {
		return false
	}

	gray := gocv.NewMat()
	defer gray.Close()

	if frame.Channels() > 1 {
		gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)
	} else {
		frame.CopyTo(&gray)
	}

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(gray, &blurred, image.Point{X: activityBlurSize, Y: activityBlurSize}, 0, 0, gocv.BorderDefault)

	if !g.initialized {
		blurred.CopyTo(&g.prevGray)
		g.initialized = true
		return true
	}

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(blurred, g.prevGray, &diff)

	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(diff, &thresh, activityDiffThreshold, 255, gocv.ThresholdBinary)

	nonZero := gocv.CountNonZero(thresh)
	total := thresh.Rows() * thresh.Cols()
	changePercent := float64(nonZero) / float64(total) * 100.0

	blurred.CopyTo(&g.prevGray)

	if changePercent > g.threshold {
		g.staticRun = 0
		return true
	}

	g.staticRun++
	return g.staticRun < g.idleAfter
}

// Reset clears the baseline so the next frame passes unconditionally.
func (g *ActivityGate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.prevGray.Empty() {
		g.prevGray.Close()
		g.prevGray = gocv.NewMat()
	}
	g.initialized = false
	g.staticRun = 0
}

// Close releases resources used by the gate.
func (g *ActivityGate) Close() {
	g.Reset()
}
