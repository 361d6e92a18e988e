package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/MythAkaDhawal/Gesture-Smart/internal/store"
)

func newTestHandler(t *testing.T) (*ProfileHandler, *store.Store) {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return NewProfileHandler(s), s
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestProfileHandler_Create(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/profiles", map[string]any{
		"name":            "precise",
		"pinch_threshold": 28.0,
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var p store.Profile
	if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if p.ID == "" {
		t.Error("created profile missing ID")
	}
	if p.PinchThreshold != 28 {
		t.Errorf("pinch_threshold = %v, want 28", p.PinchThreshold)
	}
	// Omitted thresholds take stock values.
	if p.ScrollSensitivity != 20 || p.DebounceTime != 10 {
		t.Errorf("defaults not applied: %+v", p)
	}
}

func TestProfileHandler_Create_Invalid(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"pinch_threshold": 30.0}},
		{"negative threshold", map[string]any{"name": "bad", "pinch_threshold": -1.0}},
		{"zero debounce", map[string]any{"name": "bad", "debounce_time": 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/api/profiles", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestProfileHandler_GetUpdateDelete(t *testing.T) {
	h, s := newTestHandler(t)

	p := &store.Profile{
		Name:              "work",
		PinchThreshold:    35,
		ScrollSensitivity: 20,
		ZoomSensitivity:   25,
		DebounceTime:      10,
		DebounceTimeShort: 5,
		DebounceTimeLong:  15,
	}
	if err := s.Profiles().Create(p); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	rec := doJSON(t, h, http.MethodGet, "/api/profiles/"+p.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPut, "/api/profiles/"+p.ID, map[string]any{
		"zoom_sensitivity": 40.0,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d: %s", rec.Code, rec.Body.String())
	}
	updated, err := s.Profiles().GetByID(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if updated.ZoomSensitivity != 40 {
		t.Errorf("zoom_sensitivity = %v, want 40", updated.ZoomSensitivity)
	}
	if updated.Name != "work" {
		t.Errorf("name = %q, update should not clear it", updated.Name)
	}

	rec = doJSON(t, h, http.MethodDelete, "/api/profiles/"+p.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("DELETE status = %d, want 204", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/profiles/"+p.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET after delete status = %d, want 404", rec.Code)
	}
}

func TestProfileHandler_List(t *testing.T) {
	h, s := newTestHandler(t)

	for _, name := range []string{"one", "two"} {
		p := &store.Profile{
			Name:              name,
			PinchThreshold:    35,
			ScrollSensitivity: 20,
			ZoomSensitivity:   25,
			DebounceTime:      10,
			DebounceTimeShort: 5,
			DebounceTimeLong:  15,
		}
		if err := s.Profiles().Create(p); err != nil {
			t.Fatal(err)
		}
	}

	rec := doJSON(t, h, http.MethodGet, "/api/profiles", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Profiles []*store.Profile `json:"profiles"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Profiles) != 2 {
		t.Errorf("list returned %d profiles, want 2", len(resp.Profiles))
	}
}

func TestProfileHandler_Activate(t *testing.T) {
	h, s := newTestHandler(t)

	p := &store.Profile{
		Name:              "game",
		PinchThreshold:    30,
		ScrollSensitivity: 25,
		ZoomSensitivity:   25,
		DebounceTime:      8,
		DebounceTimeShort: 4,
		DebounceTimeLong:  12,
	}
	if err := s.Profiles().Create(p); err != nil {
		t.Fatal(err)
	}

	var activated *store.Profile
	h.OnActivate = func(p *store.Profile) { activated = p }

	rec := doJSON(t, h, http.MethodPost, "/api/profiles/"+p.ID+"/activate", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("activate status = %d: %s", rec.Code, rec.Body.String())
	}

	if activated == nil || activated.ID != p.ID {
		t.Error("OnActivate callback not invoked with the activated profile")
	}

	active, err := s.Profiles().GetActive()
	if err != nil {
		t.Fatalf("GetActive() error = %v", err)
	}
	if active.ID != p.ID {
		t.Errorf("active profile = %s, want %s", active.ID, p.ID)
	}
}

func TestProfileHandler_Activate_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/profiles/missing/activate", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestProfileHandler_MethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPatch, "/api/profiles", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
