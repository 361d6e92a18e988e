package tracker

import "gocv.io/x/gocv"

// Tracker defines the interface for hand-tracking implementations.
type Tracker interface {
	// Track analyzes a video frame and returns the hands found in it.
	// The returned Frame carries an empty hand slice if none are detected.
	Track(frame *gocv.Mat) (Frame, error)

	// Close releases any resources held by the tracker.
	Close() error
}

// Config holds configuration options for hand tracking.
type Config struct {
	// MaxHands is the maximum number of hands to track simultaneously.
	MaxHands int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64

	// Smoothing is the exponential moving average factor applied to
	// landmark positions between frames (0.0-1.0). Higher values weigh the
	// current frame more; lower values smooth harder at the cost of latency.
	Smoothing float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MaxHands:        2,
		MinConfidence:   0.7,
		MinTrackingConf: 0.7,
		Smoothing:       0.6,
	}
}
