// Package app wires the capture, tracking, recognition and control stages
// into the running gesture pipeline.
package app

import (
	"log"
	"sync"

	"github.com/MythAkaDhawal/Gesture-Smart/internal/capture"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/metrics"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/overlay"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/recognizer"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/tracker"
)

// Handler consumes recognized events. *control.Controller is the production
// implementation.
type Handler interface {
	Handle(ev recognizer.Event, frame tracker.Frame) error
}

// Config holds the pipeline's collaborators. Camera, Tracker, Recognizer and
// Handler are required; the rest are optional.
type Config struct {
	Camera     capture.Camera
	Tracker    tracker.Tracker
	Recognizer *recognizer.Recognizer
	Handler    Handler
	Metrics    *metrics.Metrics
	Overlay    *overlay.Renderer
	Gate       *capture.ActivityGate
	FPS        int
}

// App owns the pipeline goroutine and the enable/disable switch.
type App struct {
	config  Config
	preview *Preview

	mu         sync.RWMutex
	enabled    bool
	recognizer *recognizer.Recognizer
	lastEvent  recognizer.Event
	listener   func(recognizer.Event)
	stopCh     chan struct{}
	done       chan struct{}
}

// New creates an App. Recognition starts enabled; the tray toggles it.
func New(config Config) *App {
	if config.FPS <= 0 {
		config.FPS = capture.DefaultFPS
	}
	return &App{
		config:     config,
		preview:    NewPreview(),
		enabled:    true,
		recognizer: config.Recognizer,
	}
}

// SetRecognizer swaps in a new recognizer, e.g. after a calibration profile
// is activated. The swap takes effect on the next frame; any open drag or
// debounce state in the old recognizer is discarded.
func (a *App) SetRecognizer(r *recognizer.Recognizer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.recognizer = r
}

func (a *App) currentRecognizer() *recognizer.Recognizer {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.recognizer
}

// SetEnabled enables or disables gesture recognition. While disabled the
// camera keeps running but frames are discarded.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether gesture recognition is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetEventListener registers a callback invoked for every non-None event.
// The callback runs on the pipeline goroutine and must not block.
func (a *App) SetEventListener(fn func(recognizer.Event)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listener = fn
}

// LastEvent returns the most recent non-None event.
func (a *App) LastEvent() recognizer.Event {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastEvent
}

// Preview returns the annotated-frame buffer fed by the pipeline.
func (a *App) Preview() *Preview {
	return a.preview
}

// Start opens the camera and launches the pipeline goroutine.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.config.Camera.Open(); err != nil {
		return err
	}

	a.stopCh = make(chan struct{})
	a.done = make(chan struct{})
	go a.runPipeline(a.stopCh, a.done)

	log.Println("Gesture pipeline started")
	return nil
}

// Stop halts the pipeline and releases the camera and tracker.
func (a *App) Stop() {
	a.mu.Lock()
	stopCh, done := a.stopCh, a.done
	a.stopCh, a.done = nil, nil
	a.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
		<-done
	}

	if err := a.config.Camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	if a.config.Gate != nil {
		a.config.Gate.Close()
	}
	if a.config.Tracker != nil {
		if err := a.config.Tracker.Close(); err != nil {
			log.Printf("Error closing tracker: %v", err)
		}
	}

	log.Println("Gesture pipeline stopped")
}

// publish records an event for the tray/WebSocket consumers.
func (a *App) publish(ev recognizer.Event) {
	if ev.Kind == recognizer.KindNone {
		return
	}

	a.mu.Lock()
	a.lastEvent = ev
	listener := a.listener
	a.mu.Unlock()

	if listener != nil {
		listener(ev)
	}
}
