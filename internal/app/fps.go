package app

import "time"

// fpsCounter measures the pipeline frame rate over a sliding one-second
// window. Not safe for concurrent use; the pipeline loop owns it.
type fpsCounter struct {
	window time.Duration
	stamps []time.Time
}

func newFPSCounter() *fpsCounter {
	return &fpsCounter{window: time.Second}
}

// Tick records one frame at the given time and returns the number of frames
// seen within the window ending at now.
func (f *fpsCounter) Tick(now time.Time) float64 {
	cutoff := now.Add(-f.window)

	drop := 0
	for _, s := range f.stamps {
		if s.After(cutoff) {
			break
		}
		drop++
	}
	f.stamps = append(f.stamps[drop:], now)

	return float64(len(f.stamps))
}
