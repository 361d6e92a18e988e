package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.FrameProcessed()
	m.FrameProcessed()
	m.FrameSkipped()
	m.Event("LEFT_CLICK")
	m.Event("LEFT_CLICK")
	m.Event("SCROLL")

	if got := testutil.ToFloat64(m.framesProcessed); got != 2 {
		t.Errorf("frames_processed_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.framesSkipped); got != 1 {
		t.Errorf("frames_skipped_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.events.WithLabelValues("LEFT_CLICK")); got != 2 {
		t.Errorf("events_total{kind=LEFT_CLICK} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.events.WithLabelValues("SCROLL")); got != 1 {
		t.Errorf("events_total{kind=SCROLL} = %v, want 1", got)
	}
}

func TestMetrics_NoneEventsNotCounted(t *testing.T) {
	m := New()

	m.Event("NONE")
	m.Event("")

	if n := testutil.CollectAndCount(m.events); n != 0 {
		t.Errorf("events_total has %d series, want 0 after NONE events", n)
	}
}

func TestMetrics_Gauges(t *testing.T) {
	m := New()

	m.SetFPS(27.5)
	m.SetHandsVisible(2)

	if got := testutil.ToFloat64(m.fps); got != 27.5 {
		t.Errorf("pipeline_fps = %v, want 27.5", got)
	}
	if got := testutil.ToFloat64(m.handsVisible); got != 2 {
		t.Errorf("hands_visible = %v, want 2", got)
	}
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.FrameProcessed()
	m.Event("ZOOM_IN")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"gesturesmart_frames_processed_total 1",
		`gesturesmart_events_total{kind="ZOOM_IN"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
