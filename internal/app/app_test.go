package app

import (
	"sync"
	"testing"
	"time"

	"gocv.io/x/gocv"

	"github.com/MythAkaDhawal/Gesture-Smart/internal/capture"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/recognizer"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/tracker"
)

// recordingHandler captures every event the pipeline dispatches.
type recordingHandler struct {
	mu     sync.Mutex
	events []recognizer.Event
}

func (h *recordingHandler) Handle(ev recognizer.Event, frame tracker.Frame) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, ev)
	return nil
}

func (h *recordingHandler) kinds() []recognizer.Kind {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]recognizer.Kind, len(h.events))
	for i, ev := range h.events {
		out[i] = ev.Kind
	}
	return out
}

func testRecognizer(t *testing.T) *recognizer.Recognizer {
	t.Helper()
	r, err := recognizer.New(recognizer.Config{
		PinchThreshold:    35,
		ScrollSensitivity: 20,
		ZoomSensitivity:   25,
		DebounceTime:      10,
		DebounceTimeShort: 5,
		DebounceTimeLong:  15,
	})
	if err != nil {
		t.Fatalf("recognizer.New() error = %v", err)
	}
	return r
}

func TestApp_PipelineDispatchesEvents(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	mat := gocv.NewMatWithSize(720, 1280, gocv.MatTypeCV8UC3)
	defer mat.Close()

	camera := capture.NewMockCamera([]*gocv.Mat{&mat}, true)

	mock := tracker.NewMockTracker()
	mock.SetFrame(tracker.Frame{
		Hands:  []tracker.Hand{tracker.OpenPalmHand()},
		Width:  1280,
		Height: 720,
	})

	handler := &recordingHandler{}

	a := New(Config{
		Camera:     camera,
		Tracker:    mock,
		Recognizer: testRecognizer(t),
		Handler:    handler,
		FPS:        100, // fast ticks keep the test short
	})

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	time.Sleep(200 * time.Millisecond)
	a.Stop()

	kinds := handler.kinds()
	if len(kinds) < 2 {
		t.Fatalf("pipeline dispatched %d events, want several", len(kinds))
	}
	// The first frame can read as a scroll because the wrist reference
	// starts at zero; every later frame of a steady open palm is a cursor
	// move.
	for i, k := range kinds[1:] {
		if k != recognizer.KindCursorMove {
			t.Fatalf("event %d = %s, want CURSOR_MOVE for a steady open palm", i+1, k)
		}
	}

	if got := a.LastEvent().Kind; got != recognizer.KindCursorMove {
		t.Errorf("LastEvent() = %s, want CURSOR_MOVE", got)
	}
}

func TestApp_DisabledSkipsProcessing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	mat := gocv.NewMatWithSize(720, 1280, gocv.MatTypeCV8UC3)
	defer mat.Close()

	camera := capture.NewMockCamera([]*gocv.Mat{&mat}, true)

	mock := tracker.NewMockTracker()
	mock.SetFrame(tracker.Frame{
		Hands:  []tracker.Hand{tracker.OpenPalmHand()},
		Width:  1280,
		Height: 720,
	})

	handler := &recordingHandler{}

	a := New(Config{
		Camera:     camera,
		Tracker:    mock,
		Recognizer: testRecognizer(t),
		Handler:    handler,
		FPS:        100,
	})
	a.SetEnabled(false)

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	time.Sleep(100 * time.Millisecond)
	a.Stop()

	if kinds := handler.kinds(); len(kinds) != 0 {
		t.Errorf("disabled pipeline dispatched %d events", len(kinds))
	}
}

func TestApp_EventListener(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	mat := gocv.NewMatWithSize(720, 1280, gocv.MatTypeCV8UC3)
	defer mat.Close()

	camera := capture.NewMockCamera([]*gocv.Mat{&mat}, true)

	mock := tracker.NewMockTracker()
	mock.SetFrame(tracker.Frame{
		Hands:  []tracker.Hand{tracker.OpenPalmHand()},
		Width:  1280,
		Height: 720,
	})

	a := New(Config{
		Camera:     camera,
		Tracker:    mock,
		Recognizer: testRecognizer(t),
		Handler:    &recordingHandler{},
		FPS:        100,
	})

	var mu sync.Mutex
	var seen []recognizer.Event
	a.SetEventListener(func(ev recognizer.Event) {
		mu.Lock()
		seen = append(seen, ev)
		mu.Unlock()
	})

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	time.Sleep(100 * time.Millisecond)
	a.Stop()

	mu.Lock()
	defer mu.Unlock()
	if len(seen) == 0 {
		t.Fatal("listener received no events")
	}
	if last := seen[len(seen)-1].Kind; last != recognizer.KindCursorMove {
		t.Errorf("listener saw %s, want CURSOR_MOVE", last)
	}
}

func TestApp_StartIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	mat := gocv.NewMatWithSize(720, 1280, gocv.MatTypeCV8UC3)
	defer mat.Close()

	camera := capture.NewMockCamera([]*gocv.Mat{&mat}, true)
	mock := tracker.NewMockTracker()

	a := New(Config{
		Camera:     camera,
		Tracker:    mock,
		Recognizer: testRecognizer(t),
		Handler:    &recordingHandler{},
		FPS:        100,
	})

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := a.Start(); err != nil {
		t.Fatalf("second Start() error = %v", err)
	}
	a.Stop()
	a.Stop()
}
