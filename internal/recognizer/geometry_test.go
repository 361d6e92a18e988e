package recognizer

import (
	"math"
	"testing"

	"github.com/MythAkaDhawal/Gesture-Smart/internal/tracker"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b tracker.Point
		want float64
	}{
		{"3-4-5 triangle", tracker.Point{X: 0, Y: 0}, tracker.Point{X: 3, Y: 4}, 5},
		{"same point", tracker.Point{X: 10, Y: 10, Z: 0.5}, tracker.Point{X: 10, Y: 10, Z: 0.5}, 0},
		{"depth only", tracker.Point{Z: 1.5}, tracker.Point{Z: 0.5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := distance(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("distance = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestCentroid(t *testing.T) {
	square := []tracker.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}

	x, y := centroid(square)
	if x != 5 || y != 5 {
		t.Errorf("centroid = (%f, %f), want (5, 5)", x, y)
	}
}

func TestCentroid_Empty(t *testing.T) {
	x, y := centroid(nil)
	if x != 0 || y != 0 {
		t.Errorf("centroid of empty set = (%f, %f), want (0, 0)", x, y)
	}
}
