// Package control translates gesture events into desktop input actions.
// The actual OS automation lives in an out-of-process plugin; this package
// owns the frame-to-screen coordinate mapping, cursor smoothing, and the
// event-to-action dispatch table.
package control

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/MythAkaDhawal/Gesture-Smart/internal/plugin"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/recognizer"
	"github.com/MythAkaDhawal/Gesture-Smart/internal/tracker"
)

// Config holds cursor-mapping and scroll tuning.
type Config struct {
	// FrameMargin is the dead zone in pixels around the camera frame edge.
	// Mapping from the inner region makes screen corners reachable without
	// pushing the hand out of view.
	FrameMargin int

	// CursorSmoothing is the EMA weight given to the previous cursor
	// position (0.0-1.0). Higher is smoother but laggier.
	CursorSmoothing float64

	// ScrollSpeed is the scroll amount per gesture.
	ScrollSpeed int

	// ScreenWidth and ScreenHeight are fallbacks for when the desktop
	// plugin cannot report the real display size.
	ScreenWidth  int
	ScreenHeight int
}

// executor abstracts plugin execution so tests can capture actions.
type executor interface {
	Execute(p *plugin.Plugin, req *plugin.Request) (*plugin.Response, error)
}

// Controller maps recognized gesture events onto desktop plugin actions.
type Controller struct {
	config  Config
	exec    executor
	desktop *plugin.Plugin

	screenW float64
	screenH float64
	prevX   float64
	prevY   float64
}

// pointerParams carries pointer coordinates to the plugin.
type pointerParams struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// directionParams carries a direction and optional amount to the plugin.
type directionParams struct {
	Direction string `json:"direction"`
	Amount    int    `json:"amount,omitempty"`
}

// New creates a Controller that drives the given desktop plugin. The screen
// size is queried from the plugin once; config values are the fallback.
func New(config Config, exec executor, desktop *plugin.Plugin) *Controller {
	if config.ScreenWidth <= 0 {
		config.ScreenWidth = 1920
	}
	if config.ScreenHeight <= 0 {
		config.ScreenHeight = 1080
	}
	if config.CursorSmoothing < 0 || config.CursorSmoothing >= 1 {
		config.CursorSmoothing = 0
	}

	c := &Controller{
		config:  config,
		exec:    exec,
		desktop: desktop,
		screenW: float64(config.ScreenWidth),
		screenH: float64(config.ScreenHeight),
	}

	if w, h, err := c.queryScreenSize(); err == nil {
		c.screenW, c.screenH = float64(w), float64(h)
	} else {
		log.Printf("Using configured screen size %dx%d: %v",
			config.ScreenWidth, config.ScreenHeight, err)
	}

	// Start the cursor at screen center so the first smoothed move does
	// not jump in from the origin.
	c.prevX = c.screenW / 2
	c.prevY = c.screenH / 2

	return c
}

// Handle performs the side effect for one gesture event. None is a no-op.
// Pointer events need the index-fingertip landmark from the frame; a frame
// without a usable hand makes them a no-op as well.
func (c *Controller) Handle(ev recognizer.Event, frame tracker.Frame) error {
	switch ev.Kind {
	case recognizer.KindNone:
		return nil

	case recognizer.KindCursorMove, recognizer.KindDragHold:
		if len(frame.Hands) == 0 || !frame.Hands[0].Complete() {
			return nil
		}
		tip := frame.Hands[0].Points[tracker.IndexTip]
		x, y := c.mapToScreen(tip.X, tip.Y, frame.Width, frame.Height)

		smooth := c.config.CursorSmoothing
		x = smooth*c.prevX + (1-smooth)*x
		y = smooth*c.prevY + (1-smooth)*y
		c.prevX, c.prevY = x, y

		return c.run(ev, "pointer-move", pointerParams{X: int(x), Y: int(y)})

	case recognizer.KindLeftClick:
		return c.run(ev, "left-click", nil)

	case recognizer.KindRightClick:
		return c.run(ev, "right-click", nil)

	case recognizer.KindStartDrag:
		return c.run(ev, "mouse-down", nil)

	case recognizer.KindReleaseHold:
		return c.run(ev, "mouse-up", nil)

	case recognizer.KindScroll:
		return c.run(ev, "scroll", directionParams{
			Direction: string(ev.Direction),
			Amount:    c.config.ScrollSpeed,
		})

	case recognizer.KindZoomIn:
		return c.run(ev, "zoom", directionParams{Direction: "IN"})

	case recognizer.KindZoomOut:
		return c.run(ev, "zoom", directionParams{Direction: "OUT"})

	case recognizer.KindSwitchTabs:
		return c.run(ev, "switch-tabs", directionParams{Direction: string(ev.Direction)})

	case recognizer.KindSwitchDesktops:
		return c.run(ev, "switch-desktops", directionParams{Direction: string(ev.Direction)})
	}

	return nil
}

// mapToScreen converts an index-fingertip position in camera pixels into
// screen coordinates. The x axis is inverted to undo the mirror flip, and
// the margin dead zone is cut off before scaling.
func (c *Controller) mapToScreen(x, y, frameW, frameH int) (float64, float64) {
	fx := float64(frameW - x)
	fy := float64(y)
	margin := float64(c.config.FrameMargin)

	innerW := float64(frameW) - 2*margin
	innerH := float64(frameH) - 2*margin
	if innerW <= 0 || innerH <= 0 {
		margin = 0
		innerW = float64(frameW)
		innerH = float64(frameH)
	}

	fx = clamp(fx, margin, float64(frameW)-margin)
	fy = clamp(fy, margin, float64(frameH)-margin)

	sx := (fx - margin) * c.screenW / innerW
	sy := (fy - margin) * c.screenH / innerH
	return sx, sy
}

// run sends one action to the desktop plugin.
func (c *Controller) run(ev recognizer.Event, action string, params any) error {
	if c.desktop == nil {
		return fmt.Errorf("no desktop plugin configured")
	}

	req := &plugin.Request{
		Action:  action,
		Gesture: string(ev.Kind),
	}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("marshal params for %s: %w", action, err)
		}
		req.Params = raw
	}

	resp, err := c.exec.Execute(c.desktop, req)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("action %s failed: %s", action, resp.Error)
	}
	return nil
}

// queryScreenSize asks the desktop plugin for the real display dimensions.
func (c *Controller) queryScreenSize() (int, int, error) {
	if c.desktop == nil {
		return 0, 0, fmt.Errorf("no desktop plugin configured")
	}

	resp, err := c.exec.Execute(c.desktop, &plugin.Request{Action: "screen-size"})
	if err != nil {
		return 0, 0, err
	}
	if !resp.Success {
		return 0, 0, fmt.Errorf("screen-size failed: %s", resp.Error)
	}

	var size struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}
	if err := json.Unmarshal(resp.Data, &size); err != nil {
		return 0, 0, fmt.Errorf("parse screen size: %w", err)
	}
	if size.Width <= 0 || size.Height <= 0 {
		return 0, 0, fmt.Errorf("plugin reported %dx%d", size.Width, size.Height)
	}

	return size.Width, size.Height, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
