package tracker

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"gocv.io/x/gocv"
)

// MediaPipeTracker implements Tracker using a Python MediaPipe subprocess.
// Frames go out as length-prefixed JPEG, landmark sets come back as JSON
// lines. Landmark positions are smoothed with an exponential moving average
// before being handed to the recognizer.
type MediaPipeTracker struct {
	config    Config
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	stdout    *bufio.Reader
	prev      [][]smoothedPoint
	mu        sync.Mutex
	started   bool
	idleTimer *time.Timer
}

// smoothedPoint keeps landmark coordinates in float space between frames so
// repeated rounding does not accumulate into drift.
type smoothedPoint struct {
	x, y, z float64
}

// NewMediaPipeTracker creates a new MediaPipe tracker.
// The Python process is started lazily on the first Track call.
func NewMediaPipeTracker(config Config) (*MediaPipeTracker, error) {
	if findTrackingScript() == "" {
		return nil, fmt.Errorf("hand_tracking_service.py not found")
	}
	if config.MaxHands <= 0 {
		config.MaxHands = DefaultConfig().MaxHands
	}

	return &MediaPipeTracker{
		config: config,
		prev:   make([][]smoothedPoint, config.MaxHands),
	}, nil
}

// Track analyzes a frame and returns the hands detected in it.
func (t *MediaPipeTracker) Track(frame *gocv.Mat) (Frame, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := Frame{Width: frame.Cols(), Height: frame.Rows()}

	if err := t.ensureStarted(); err != nil {
		return out, err
	}

	buf, err := gocv.IMEncode(".jpg", *frame)
	if err != nil {
		return out, fmt.Errorf("encode frame: %w", err)
	}
	defer buf.Close()

	data := buf.GetBytes()

	// Length prefix (4 bytes big-endian) followed by the JPEG payload.
	length := make([]byte, 4)
	binary.BigEndian.PutUint32(length, uint32(len(data)))

	if _, err := t.stdin.Write(length); err != nil {
		return out, fmt.Errorf("write length: %w", err)
	}
	if _, err := t.stdin.Write(data); err != nil {
		return out, fmt.Errorf("write data: %w", err)
	}

	line, err := t.stdout.ReadString('\n')
	if err != nil {
		return out, fmt.Errorf("read response: %w", err)
	}

	var response struct {
		Hands []jsonHand `json:"hands"`
	}
	if err := json.Unmarshal([]byte(line), &response); err != nil {
		return out, fmt.Errorf("parse response: %w", err)
	}

	out.Hands = make([]Hand, 0, len(response.Hands))
	for i, h := range response.Hands {
		if i >= t.config.MaxHands {
			break
		}
		out.Hands = append(out.Hands, t.smooth(i, h))
	}

	// Drop smoothing state for slots that lost their hand so a newly
	// detected hand does not inherit a stale position.
	for i := len(response.Hands); i < len(t.prev); i++ {
		t.prev[i] = nil
	}

	t.resetIdleTimer()

	return out, nil
}

// smooth applies the EMA smoothing filter to one hand slot and converts the
// result into pixel-space landmarks with a bounding box.
func (t *MediaPipeTracker) smooth(slot int, h jsonHand) Hand {
	factor := t.config.Smoothing
	if factor <= 0 || factor > 1 {
		factor = 1 // no smoothing configured
	}

	cur := make([]smoothedPoint, len(h.Points))
	for i, p := range h.Points {
		cur[i] = smoothedPoint{x: p.X, y: p.Y, z: p.Z}
	}

	if prev := t.prev[slot]; len(prev) == len(cur) {
		for i := range cur {
			cur[i].x = factor*cur[i].x + (1-factor)*prev[i].x
			cur[i].y = factor*cur[i].y + (1-factor)*prev[i].y
			cur[i].z = factor*cur[i].z + (1-factor)*prev[i].z
		}
	}
	t.prev[slot] = cur

	hand := Hand{
		Points:     make([]Point, len(cur)),
		Handedness: h.Handedness,
		Score:      h.Score,
	}
	for i, p := range cur {
		hand.Points[i] = Point{
			X: int(math.Round(p.x)),
			Y: int(math.Round(p.y)),
			Z: p.z,
		}
	}
	hand.BBox = BoundingBox(hand.Points)

	return hand
}

// Close shuts down the Python process.
func (t *MediaPipeTracker) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.shutdown()
}

func (t *MediaPipeTracker) ensureStarted() error {
	if t.started {
		return nil
	}

	scriptPath := findTrackingScript()
	if scriptPath == "" {
		return fmt.Errorf("hand_tracking_service.py not found")
	}

	pythonPath := findVenvPython()
	if pythonPath == "" {
		pythonPath = "python3"
	}

	t.cmd = exec.Command(pythonPath, scriptPath,
		fmt.Sprintf("--max-hands=%d", t.config.MaxHands),
		fmt.Sprintf("--detection-confidence=%g", t.config.MinConfidence),
		fmt.Sprintf("--tracking-confidence=%g", t.config.MinTrackingConf),
	)

	stdin, err := t.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("create stdin pipe: %w", err)
	}

	stdout, err := t.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("create stdout pipe: %w", err)
	}

	t.cmd.Stderr = os.Stderr

	if err := t.cmd.Start(); err != nil {
		return fmt.Errorf("start tracking service: %w", err)
	}

	t.stdin = stdin
	t.stdout = bufio.NewReader(stdout)
	t.started = true

	return nil
}

func (t *MediaPipeTracker) shutdown() error {
	if !t.started {
		return nil
	}

	if t.idleTimer != nil {
		t.idleTimer.Stop()
		t.idleTimer = nil
	}

	if t.stdin != nil {
		t.stdin.Close()
	}

	err := t.cmd.Wait()
	t.started = false
	t.cmd = nil
	t.stdin = nil
	t.stdout = nil
	for i := range t.prev {
		t.prev[i] = nil
	}

	return err
}

func (t *MediaPipeTracker) resetIdleTimer() {
	if t.idleTimer != nil {
		t.idleTimer.Stop()
	}
	t.idleTimer = time.AfterFunc(30*time.Second, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.shutdown()
	})
}

func findTrackingScript() string {
	execPath, err := os.Executable()
	var execDir string
	if err == nil {
		execDir = filepath.Dir(execPath)
	}

	candidates := []string{
		"scripts/hand_tracking_service.py",
		"../scripts/hand_tracking_service.py",
		filepath.Join(execDir, "scripts/hand_tracking_service.py"),
		filepath.Join(os.Getenv("HOME"), ".gesturesmart/scripts/hand_tracking_service.py"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// findVenvPython looks for a Python interpreter in a virtual environment.
func findVenvPython() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	execDir := filepath.Dir(execPath)

	candidates := []string{
		"venv/bin/python",
		"../venv/bin/python",
		filepath.Join(execDir, "venv/bin/python"),
		filepath.Join(os.Getenv("HOME"), ".gesturesmart/venv/bin/python"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// jsonHand is the wire structure produced by the Python tracking service.
// Coordinates are already in pixel space.
type jsonHand struct {
	Points     []jsonPoint `json:"points"`
	Handedness string      `json:"handedness"`
	Score      float64     `json:"score"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}
