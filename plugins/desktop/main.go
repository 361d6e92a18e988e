// Package main provides the desktop input plugin.
// It drives the mouse and keyboard through xdotool on Linux and
// cliclick/AppleScript on macOS.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// Request represents the input from the plugin executor.
type Request struct {
	Action  string          `json:"action"`
	Gesture string          `json:"gesture"`
	Config  json.RawMessage `json:"config"`
	Params  json.RawMessage `json:"params"`
}

// Response represents the output to the plugin executor.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// PointerParams defines parameters for pointer-move.
type PointerParams struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DirectionParams defines parameters for scroll, zoom and switch actions.
type DirectionParams struct {
	Direction string `json:"direction"`
	Amount    int    `json:"amount"`
}

// actionHandler defines a function type for handling specific actions.
type actionHandler func(params json.RawMessage) (json.RawMessage, error)

// actionHandlers maps action names to their handler functions.
var actionHandlers = map[string]actionHandler{
	"pointer-move":    pointerMove,
	"left-click":      leftClick,
	"right-click":     rightClick,
	"mouse-down":      mouseDown,
	"mouse-up":        mouseUp,
	"scroll":          scroll,
	"zoom":            zoom,
	"switch-tabs":     switchTabs,
	"switch-desktops": switchDesktops,
	"screen-size":     screenSize,
}

func main() {
	var req Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeErrorResponse(fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	handler, ok := actionHandlers[req.Action]
	if !ok {
		writeErrorResponse(fmt.Sprintf("unknown action: %s", req.Action))
		return
	}

	data, err := handler(req.Params)
	if err != nil {
		writeErrorResponse(fmt.Sprintf("action %s failed: %v", req.Action, err))
		return
	}

	writeSuccessResponse(data)
}

// writeErrorResponse writes an error response to stdout.
func writeErrorResponse(errMsg string) {
	resp := Response{
		Success: false,
		Error:   errMsg,
	}
	json.NewEncoder(os.Stdout).Encode(resp)
}

// writeSuccessResponse writes a success response to stdout.
func writeSuccessResponse(data json.RawMessage) {
	resp := Response{
		Success: true,
		Data:    data,
	}
	json.NewEncoder(os.Stdout).Encode(resp)
}

// run executes a command and returns any error with its combined output.
func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, string(output))
	}
	return nil
}

// runAppleScript executes an AppleScript command and returns any error.
func runAppleScript(script string) error {
	return run("osascript", "-e", script)
}

func pointerMove(params json.RawMessage) (json.RawMessage, error) {
	var p PointerParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("failed to parse params: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return nil, run("cliclick", fmt.Sprintf("m:%d,%d", p.X, p.Y))
	default:
		return nil, run("xdotool", "mousemove", strconv.Itoa(p.X), strconv.Itoa(p.Y))
	}
}

func leftClick(json.RawMessage) (json.RawMessage, error) {
	switch runtime.GOOS {
	case "darwin":
		return nil, run("cliclick", "c:.")
	default:
		return nil, run("xdotool", "click", "1")
	}
}

func rightClick(json.RawMessage) (json.RawMessage, error) {
	switch runtime.GOOS {
	case "darwin":
		return nil, run("cliclick", "rc:.")
	default:
		return nil, run("xdotool", "click", "3")
	}
}

func mouseDown(json.RawMessage) (json.RawMessage, error) {
	switch runtime.GOOS {
	case "darwin":
		return nil, run("cliclick", "dd:.")
	default:
		return nil, run("xdotool", "mousedown", "1")
	}
}

func mouseUp(json.RawMessage) (json.RawMessage, error) {
	switch runtime.GOOS {
	case "darwin":
		return nil, run("cliclick", "du:.")
	default:
		return nil, run("xdotool", "mouseup", "1")
	}
}

func scroll(params json.RawMessage) (json.RawMessage, error) {
	var p DirectionParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("failed to parse params: %w", err)
	}

	amount := p.Amount
	if amount <= 0 {
		amount = 1
	}

	switch runtime.GOOS {
	case "darwin":
		// cliclick scrolls with signed wheel units; up is positive.
		units := amount
		if strings.EqualFold(p.Direction, "DOWN") {
			units = -amount
		}
		return nil, run("cliclick", fmt.Sprintf("w:%d", units))
	default:
		// X11 exposes the wheel as buttons 4 (up) and 5 (down); one click
		// per wheel notch, so repeat for larger amounts.
		button := "4"
		if strings.EqualFold(p.Direction, "DOWN") {
			button = "5"
		}
		clicks := amount / 10
		if clicks < 1 {
			clicks = 1
		}
		return nil, run("xdotool", "click", "--repeat", strconv.Itoa(clicks), button)
	}
}

func zoom(params json.RawMessage) (json.RawMessage, error) {
	var p DirectionParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("failed to parse params: %w", err)
	}

	in := strings.EqualFold(p.Direction, "IN")

	switch runtime.GOOS {
	case "darwin":
		key := "-"
		if in {
			key = "="
		}
		return nil, runAppleScript(fmt.Sprintf(
			`tell application "System Events" to keystroke "%s" using {command down}`, key))
	default:
		key := "ctrl+minus"
		if in {
			key = "ctrl+plus"
		}
		return nil, run("xdotool", "key", key)
	}
}

func switchTabs(params json.RawMessage) (json.RawMessage, error) {
	var p DirectionParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("failed to parse params: %w", err)
	}

	prev := strings.EqualFold(p.Direction, "PREV")

	switch runtime.GOOS {
	case "darwin":
		script := `tell application "System Events" to keystroke tab using {control down}`
		if prev {
			script = `tell application "System Events" to keystroke tab using {control down, shift down}`
		}
		return nil, runAppleScript(script)
	default:
		key := "ctrl+Tab"
		if prev {
			key = "ctrl+shift+Tab"
		}
		return nil, run("xdotool", "key", key)
	}
}

func switchDesktops(params json.RawMessage) (json.RawMessage, error) {
	var p DirectionParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("failed to parse params: %w", err)
	}

	left := strings.EqualFold(p.Direction, "LEFT")

	switch runtime.GOOS {
	case "darwin":
		// Mission Control space switching uses ctrl+arrow.
		code := "124" // right arrow
		if left {
			code = "123"
		}
		return nil, runAppleScript(fmt.Sprintf(
			`tell application "System Events" to key code %s using {control down}`, code))
	default:
		key := "super+ctrl+Right"
		if left {
			key = "super+ctrl+Left"
		}
		return nil, run("xdotool", "key", key)
	}
}

func screenSize(json.RawMessage) (json.RawMessage, error) {
	var w, h int
	var err error

	switch runtime.GOOS {
	case "darwin":
		w, h, err = darwinScreenSize()
	default:
		w, h, err = x11ScreenSize()
	}
	if err != nil {
		return nil, err
	}

	return json.Marshal(map[string]int{"width": w, "height": h})
}

// x11ScreenSize reads the display geometry from xdotool.
func x11ScreenSize() (int, int, error) {
	out, err := exec.Command("xdotool", "getdisplaygeometry").Output()
	if err != nil {
		return 0, 0, fmt.Errorf("getdisplaygeometry: %w", err)
	}

	fields := strings.Fields(strings.TrimSpace(string(out)))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected geometry output: %q", out)
	}

	w, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

// darwinScreenSize reads the main display bounds via AppleScript.
func darwinScreenSize() (int, int, error) {
	out, err := exec.Command("osascript", "-e",
		`tell application "Finder" to get bounds of window of desktop`).Output()
	if err != nil {
		return 0, 0, fmt.Errorf("desktop bounds: %w", err)
	}

	// Output looks like "0, 0, 1920, 1080".
	parts := strings.Split(strings.TrimSpace(string(out)), ",")
	if len(parts) != 4 {
		return 0, 0, fmt.Errorf("unexpected bounds output: %q", out)
	}

	w, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return 0, 0, err
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}
