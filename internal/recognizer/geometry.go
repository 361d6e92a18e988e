package recognizer

import (
	"math"

	"github.com/MythAkaDhawal/Gesture-Smart/internal/tracker"
)

// distance calculates the Euclidean distance between two landmarks in their
// native coordinate space: pixel x/y plus the relative depth estimate.
func distance(a, b tracker.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// centroid returns the mean position of a landmark set in float space.
func centroid(points []tracker.Point) (x, y float64) {
	if len(points) == 0 {
		return 0, 0
	}

	var sumX, sumY float64
	for _, p := range points {
		sumX += float64(p.X)
		sumY += float64(p.Y)
	}

	n := float64(len(points))
	return sumX / n, sumY / n
}
