// Package metrics exposes Prometheus instrumentation for the gesture pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the pipeline's Prometheus collectors. All metrics live on
// their own registry so the /metrics endpoint stays free of default Go
// runtime noise.
type Metrics struct {
	registry *prometheus.Registry

	framesProcessed prometheus.Counter
	framesSkipped   prometheus.Counter
	trackingErrors  prometheus.Counter
	events          *prometheus.CounterVec
	actionErrors    prometheus.Counter
	fps             prometheus.Gauge
	handsVisible    prometheus.Gauge
}

// New creates the metric set on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	auto := promauto.With(registry)

	m := &Metrics{registry: registry}

	m.framesProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "gesturesmart",
		Name:      "frames_processed_total",
		Help:      "Total number of camera frames run through the pipeline",
	})

	m.framesSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "gesturesmart",
		Name:      "frames_skipped_total",
		Help:      "Frames skipped by the activity gate while the scene was static",
	})

	m.trackingErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "gesturesmart",
		Name:      "tracking_errors_total",
		Help:      "Hand tracking failures",
	})

	m.events = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gesturesmart",
		Name:      "events_total",
		Help:      "Recognized gesture events by kind",
	}, []string{"kind"})

	m.actionErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "gesturesmart",
		Name:      "action_errors_total",
		Help:      "Desktop plugin action failures",
	})

	m.fps = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: "gesturesmart",
		Name:      "pipeline_fps",
		Help:      "Measured pipeline frames per second over the last second",
	})

	m.handsVisible = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: "gesturesmart",
		Name:      "hands_visible",
		Help:      "Number of hands in the most recent tracked frame",
	})

	return m
}

// FrameProcessed counts one frame through the full pipeline.
func (m *Metrics) FrameProcessed() { m.framesProcessed.Inc() }

// FrameSkipped counts a frame dropped by the activity gate.
func (m *Metrics) FrameSkipped() { m.framesSkipped.Inc() }

// TrackingError counts a tracker failure.
func (m *Metrics) TrackingError() { m.trackingErrors.Inc() }

// Event counts one recognized gesture event by kind. None events are not
// counted; they carry no information.
func (m *Metrics) Event(kind string) {
	if kind == "" || kind == "NONE" {
		return
	}
	m.events.WithLabelValues(kind).Inc()
}

// ActionError counts a failed desktop action dispatch.
func (m *Metrics) ActionError() { m.actionErrors.Inc() }

// SetFPS records the measured pipeline frame rate.
func (m *Metrics) SetFPS(fps float64) { m.fps.Set(fps) }

// SetHandsVisible records the hand count of the latest frame.
func (m *Metrics) SetHandsVisible(n int) { m.handsVisible.Set(float64(n)) }

// Handler returns the HTTP handler serving this metric set.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
