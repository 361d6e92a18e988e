// Package config defines the Gesture-Smart process configuration and its
// layered loading: built-in defaults, an optional YAML file, then
// GESTURESMART_-prefixed environment variables.
package config

import "errors"

// Config contains process configuration. Keys are flat so YAML files and
// environment variables map one to one.
type Config struct {
	// Addr configures the status server listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath is the SQLite database file for calibration profiles.
	DBPath string `koanf:"db_path"`

	// PluginDir is the directory scanned for action plugins.
	PluginDir string `koanf:"plugin_dir"`

	// Camera settings.
	CameraID     int `koanf:"camera_id"`
	CameraWidth  int `koanf:"camera_width"`
	CameraHeight int `koanf:"camera_height"`
	CameraFPS    int `koanf:"camera_fps"`

	// Hand tracking settings.
	MaxHands            int     `koanf:"max_hands"`
	DetectionConfidence float64 `koanf:"detection_confidence"`
	TrackingConfidence  float64 `koanf:"tracking_confidence"`
	LandmarkSmoothing   float64 `koanf:"landmark_smoothing"`

	// Recognizer thresholds. Distances are in pixels, debounce in frames.
	PinchThreshold    float64 `koanf:"pinch_threshold"`
	ScrollSensitivity float64 `koanf:"scroll_sensitivity"`
	ZoomSensitivity   float64 `koanf:"zoom_sensitivity"`
	DebounceTime      int     `koanf:"debounce_time"`
	DebounceTimeShort int     `koanf:"debounce_time_short"`
	DebounceTimeLong  int     `koanf:"debounce_time_long"`

	// TwoHandSwipes enables the two-hand swipe classifier for desktop
	// switching. Off by default.
	TwoHandSwipes bool `koanf:"two_hand_swipes"`

	// Pointer control settings.
	FrameMargin     int     `koanf:"frame_margin"`
	CursorSmoothing float64 `koanf:"cursor_smoothing"`
	ScrollSpeed     int     `koanf:"scroll_speed"`
	ScreenWidth     int     `koanf:"screen_width"`
	ScreenHeight    int     `koanf:"screen_height"`

	// Activity gating: the tracker is skipped after IdleAfterFrames static
	// frames. Zero disables gating.
	MotionThreshold float64 `koanf:"motion_threshold"`
	IdleAfterFrames int     `koanf:"idle_after_frames"`

	// Overlay enables the annotated MJPEG preview.
	Overlay bool `koanf:"overlay"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Addr:      ":8080",
		DBPath:    "gesturesmart.db",
		PluginDir: "plugins",

		CameraID:     0,
		CameraWidth:  1280,
		CameraHeight: 720,
		CameraFPS:    30,

		MaxHands:            2,
		DetectionConfidence: 0.7,
		TrackingConfidence:  0.7,
		LandmarkSmoothing:   0.6,

		PinchThreshold:    35,
		ScrollSensitivity: 20,
		ZoomSensitivity:   25,
		DebounceTime:      10,
		DebounceTimeShort: 5,
		DebounceTimeLong:  15,

		FrameMargin:     100,
		CursorSmoothing: 0.7,
		ScrollSpeed:     30,

		MotionThreshold: 1.0,
		IdleAfterFrames: 90,

		Overlay: true,
	}
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return errors.New("addr must not be empty")
	case c.CameraFPS <= 0:
		return errors.New("camera_fps must be positive")
	case c.MaxHands < 1:
		return errors.New("max_hands must be at least 1")
	case c.PinchThreshold <= 0, c.ScrollSensitivity <= 0, c.ZoomSensitivity <= 0:
		return errors.New("recognizer distance thresholds must be positive")
	case c.DebounceTime <= 0, c.DebounceTimeShort <= 0, c.DebounceTimeLong <= 0:
		return errors.New("debounce frame counts must be positive")
	case c.CursorSmoothing < 0 || c.CursorSmoothing >= 1:
		return errors.New("cursor_smoothing must be in [0, 1)")
	case c.LandmarkSmoothing < 0 || c.LandmarkSmoothing >= 1:
		return errors.New("landmark_smoothing must be in [0, 1)")
	}
	return nil
}
