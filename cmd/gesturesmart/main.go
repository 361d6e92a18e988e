package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/MythAkaDhawal/Gesture-Smart/internal/app"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/capture"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/config"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/control"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/metrics"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/overlay"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/plugin"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/recognizer"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/server"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/store"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/tracker"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/tray"
)

func main() {
	fmt.Println("Gesture-Smart - Hand Motion Control")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	st, err := store.New(resolveDBPath(cfg.DBPath))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Plugins: the bundled desktop plugin performs the actual input actions.
	pluginMgr := plugin.NewManager(cfg.PluginDir)
	if err := pluginMgr.Discover(); err != nil {
		log.Fatalf("Failed to discover plugins: %v", err)
	}
	pluginExec := plugin.NewExecutor(2 * time.Second)

	desktop, err := pluginMgr.Get("desktop")
	if err != nil {
		log.Printf("Desktop plugin not found in %s; gestures will be recognized but not executed", cfg.PluginDir)
		desktop = nil
	}

	rec, err := recognizer.New(recognizerConfig(cfg, st))
	if err != nil {
		log.Fatalf("Failed to build recognizer: %v", err)
	}
	if cfg.TwoHandSwipes {
		rec.SetTwoHandClassifier(recognizer.NewSwipeClassifier(0, 0))
		log.Println("Two-hand swipe classification enabled")
	}

	controller := control.New(control.Config{
		FrameMargin:     cfg.FrameMargin,
		CursorSmoothing: cfg.CursorSmoothing,
		ScrollSpeed:     cfg.ScrollSpeed,
		ScreenWidth:     cfg.ScreenWidth,
		ScreenHeight:    cfg.ScreenHeight,
	}, pluginExec, desktop)

	m := metrics.New()

	var renderer *overlay.Renderer
	if cfg.Overlay {
		renderer = overlay.NewRenderer()
	}

	var gate *capture.ActivityGate
	if cfg.IdleAfterFrames > 0 {
		gate = capture.NewActivityGate(cfg.MotionThreshold, cfg.IdleAfterFrames)
	}

	application := app.New(app.Config{
		Camera: capture.NewCamera(capture.Config{
			DeviceID: cfg.CameraID,
			Width:    cfg.CameraWidth,
			Height:   cfg.CameraHeight,
			FPS:      cfg.CameraFPS,
		}),
		Tracker:    newTracker(cfg),
		Recognizer: rec,
		Handler:    controller,
		Metrics:    m,
		Overlay:    renderer,
		Gate:       gate,
		FPS:        cfg.CameraFPS,
	})

	events := server.NewEventsHandler()

	tr := tray.New()
	application.SetEventListener(func(ev recognizer.Event) {
		events.Publish(ev)
		tr.SetLastGesture(string(ev.Kind))
	})

	srv := server.New(server.Config{
		Store:   st,
		Preview: application.Preview(),
		Events:  events,
		Metrics: m.Handler(),
		OnActivate: func(p *store.Profile) {
			next, err := recognizer.New(recognizer.Config{
				PinchThreshold:    p.PinchThreshold,
				ScrollSensitivity: p.ScrollSensitivity,
				ZoomSensitivity:   p.ZoomSensitivity,
				DebounceTime:      p.DebounceTime,
				DebounceTimeShort: p.DebounceTimeShort,
				DebounceTimeLong:  p.DebounceTimeLong,
			})
			if err != nil {
				log.Printf("Profile %s has invalid thresholds: %v", p.Name, err)
				return
			}
			if cfg.TwoHandSwipes {
				next.SetTwoHandClassifier(recognizer.NewSwipeClassifier(0, 0))
			}
			application.SetRecognizer(next)
			log.Printf("Activated profile %s", p.Name)
		},
	})

	go func() {
		log.Printf("Status server listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(cfg.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if err := application.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}

	tr.OnToggle(func(enabled bool) {
		application.SetEnabled(enabled)
		log.Printf("Gesture control enabled: %v", enabled)
	})
	tr.OnSettings(func() {
		openBrowser("http://localhost" + cfg.Addr)
	})
	tr.OnQuit(func() {
		application.Stop()
	})

	// Blocks until quit is selected from the tray menu.
	tr.Run()
}

// recognizerConfig derives the recognizer thresholds from the configuration,
// preferring the active calibration profile when one exists.
func recognizerConfig(cfg *config.Config, st *store.Store) recognizer.Config {
	if p, err := st.Profiles().GetActive(); err == nil {
		log.Printf("Using calibration profile %s", p.Name)
		return recognizer.Config{
			PinchThreshold:    p.PinchThreshold,
			ScrollSensitivity: p.ScrollSensitivity,
			ZoomSensitivity:   p.ZoomSensitivity,
			DebounceTime:      p.DebounceTime,
			DebounceTimeShort: p.DebounceTimeShort,
			DebounceTimeLong:  p.DebounceTimeLong,
		}
	}

	return recognizer.Config{
		PinchThreshold:    cfg.PinchThreshold,
		ScrollSensitivity: cfg.ScrollSensitivity,
		ZoomSensitivity:   cfg.ZoomSensitivity,
		DebounceTime:      cfg.DebounceTime,
		DebounceTimeShort: cfg.DebounceTimeShort,
		DebounceTimeLong:  cfg.DebounceTimeLong,
	}
}

// newTracker prefers the MediaPipe subprocess and falls back to the mock
// tracker so the rest of the stack stays exercisable without Python.
func newTracker(cfg *config.Config) tracker.Tracker {
	mp, err := tracker.NewMediaPipeTracker(tracker.Config{
		MaxHands:        cfg.MaxHands,
		MinConfidence:   cfg.DetectionConfidence,
		MinTrackingConf: cfg.TrackingConfidence,
		Smoothing:       cfg.LandmarkSmoothing,
	})
	if err != nil {
		log.Printf("MediaPipe not available (%v), using mock tracker", err)
		return tracker.NewMockTracker()
	}

	log.Println("Using MediaPipe hand tracking")
	return mp
}

// resolveDBPath places a relative database path under ~/.gesturesmart.
func resolveDBPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	dir := filepath.Join(homeDir, ".gesturesmart")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return path
	}

	return filepath.Join(dir, path)
}

// openBrowser opens the settings page with the platform's URL handler.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}
