package capture

import (
	"errors"
	"testing"
)

func TestNewCamera_Defaults(t *testing.T) {
	cam := NewCamera(Config{DeviceID: 0})

	if cam == nil {
		t.Fatal("NewCamera returned nil")
	}
	if got := cam.FPS(); got != DefaultFPS {
		t.Errorf("FPS() = %d, want %d (default)", got, DefaultFPS)
	}
	if cam.IsOpen() {
		t.Error("camera should not be running initially")
	}
}

func TestNewCamera_ConfiguredFPS(t *testing.T) {
	cam := NewCamera(Config{DeviceID: 0, FPS: 15})

	if got := cam.FPS(); got != 15 {
		t.Errorf("FPS() = %d, want 15", got)
	}
}

func TestNewCamera_RejectsNonPositiveSettings(t *testing.T) {
	cam := NewCamera(Config{DeviceID: 0, Width: -1, Height: 0, FPS: -5})

	if got := cam.FPS(); got != DefaultFPS {
		t.Errorf("FPS() = %d, want default %d for non-positive config", got, DefaultFPS)
	}
}

func TestCamera_ReadFrame_NotOpened(t *testing.T) {
	cam := NewCamera(DefaultConfig())

	_, err := cam.ReadFrame()
	if !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame() error = %v, want ErrCameraNotOpen", err)
	}
}

func TestCamera_Close_NotOpened(t *testing.T) {
	cam := NewCamera(DefaultConfig())

	if err := cam.Close(); err != nil {
		t.Errorf("Close() on not opened camera should return nil, got: %v", err)
	}
}

func TestCamera_OpenClose_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	cam := NewCamera(DefaultConfig())

	err := cam.Open()
	if err != nil {
		t.Skipf("skipping test - camera not available: %v", err)
	}

	if !cam.IsOpen() {
		t.Error("IsOpen() should return true after Open()")
	}

	mat, err := cam.ReadFrame()
	if err != nil {
		t.Errorf("ReadFrame() failed: %v", err)
	} else if mat.Empty() {
		t.Error("ReadFrame() returned empty mat")
		mat.Close()
	} else {
		mat.Close()
	}

	if err := cam.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	if cam.IsOpen() {
		t.Error("IsOpen() should return false after Close()")
	}
}
