package app

import (
	"log"
	"time"

	"gocv.io/x/gocv"
)

// runPipeline is the per-frame loop: read, mirror, gate, track, recognize,
// act, annotate. Exactly one Recognize call happens per tick, so debounce
// counters stay in frame units.
func (a *App) runPipeline(stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	fps := newFPSCounter()

	ticker := time.NewTicker(time.Second / time.Duration(a.config.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}
			a.processFrame(fps)
		}
	}
}

func (a *App) processFrame(fps *fpsCounter) {
	frame, err := a.config.Camera.ReadFrame()
	if err != nil {
		log.Printf("Error reading frame: %v", err)
		return
	}
	defer frame.Close()

	// Mirror the frame so on-screen movement matches hand movement.
	gocv.Flip(*frame, frame, 1)

	if a.config.Gate != nil && !a.config.Gate.Check(frame) {
		if a.config.Metrics != nil {
			a.config.Metrics.FrameSkipped()
		}
		return
	}

	tracked, err := a.config.Tracker.Track(frame)
	if err != nil {
		log.Printf("Error tracking hands: %v", err)
		if a.config.Metrics != nil {
			a.config.Metrics.TrackingError()
		}
		return
	}

	ev := a.currentRecognizer().Recognize(tracked)
	a.publish(ev)

	rate := fps.Tick(time.Now())
	if a.config.Metrics != nil {
		a.config.Metrics.FrameProcessed()
		a.config.Metrics.SetHandsVisible(len(tracked.Hands))
		a.config.Metrics.Event(string(ev.Kind))
		a.config.Metrics.SetFPS(rate)
	}

	if err := a.config.Handler.Handle(ev, tracked); err != nil {
		log.Printf("Error handling %s: %v", ev.Kind, err)
		if a.config.Metrics != nil {
			a.config.Metrics.ActionError()
		}
	}

	if a.config.Overlay != nil {
		a.config.Overlay.Draw(frame, tracked, a.LastEvent(), rate)
		if buf, err := gocv.IMEncode(".jpg", *frame); err == nil {
			a.preview.Set(buf.GetBytes())
			buf.Close()
		}
	}
}
