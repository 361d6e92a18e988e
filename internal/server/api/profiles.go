// Package api provides HTTP API handlers for the Gesture-Smart status server.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/MythAkaDhawal/Gesture-Smart/internal/store"
)

// ProfileHandler handles HTTP requests for calibration profile resources.
type ProfileHandler struct {
	store *store.Store

	// OnActivate is called after a profile is activated so the running
	// recognizer can pick up the new thresholds.
	OnActivate func(p *store.Profile)
}

// NewProfileHandler creates a new ProfileHandler with the given store.
func NewProfileHandler(s *store.Store) *ProfileHandler {
	return &ProfileHandler{store: s}
}

// ServeHTTP routes requests to the appropriate method.
// Expected paths: /api/profiles, /api/profiles/{id}, /api/profiles/{id}/activate
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/profiles")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	if id, ok := strings.CutSuffix(path, "/activate"); ok {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.activate(w, r, id)
		return
	}

	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type profileRequest struct {
	Name              string   `json:"name"`
	PinchThreshold    *float64 `json:"pinch_threshold"`
	ScrollSensitivity *float64 `json:"scroll_sensitivity"`
	ZoomSensitivity   *float64 `json:"zoom_sensitivity"`
	DebounceTime      *int     `json:"debounce_time"`
	DebounceTimeShort *int     `json:"debounce_time_short"`
	DebounceTimeLong  *int     `json:"debounce_time_long"`
}

type listProfilesResponse struct {
	Profiles []*store.Profile `json:"profiles"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/profiles.
func (h *ProfileHandler) list(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.store.Profiles().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list profiles")
		return
	}
	if profiles == nil {
		profiles = []*store.Profile{}
	}

	writeJSON(w, http.StatusOK, listProfilesResponse{Profiles: profiles})
}

// get handles GET /api/profiles/{id}.
func (h *ProfileHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	profile, err := h.store.Profiles().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// create handles POST /api/profiles. Omitted thresholds take the stock
// calibration values.
func (h *ProfileHandler) create(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	profile := &store.Profile{
		Name:              req.Name,
		PinchThreshold:    35,
		ScrollSensitivity: 20,
		ZoomSensitivity:   25,
		DebounceTime:      10,
		DebounceTimeShort: 5,
		DebounceTimeLong:  15,
	}
	applyRequest(profile, &req)

	if !validThresholds(profile) {
		writeError(w, http.StatusBadRequest, "Thresholds must be positive")
		return
	}

	if err := h.store.Profiles().Create(profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create profile")
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

// update handles PUT /api/profiles/{id}.
func (h *ProfileHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	profile, err := h.store.Profiles().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name != "" {
		profile.Name = req.Name
	}
	applyRequest(profile, &req)

	if !validThresholds(profile) {
		writeError(w, http.StatusBadRequest, "Thresholds must be positive")
		return
	}

	if err := h.store.Profiles().Update(profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// delete handles DELETE /api/profiles/{id}.
func (h *ProfileHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Profiles().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// activate handles POST /api/profiles/{id}/activate.
func (h *ProfileHandler) activate(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.Profiles().SetActive(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to activate profile")
		return
	}

	profile, err := h.store.Profiles().GetByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	if h.OnActivate != nil {
		h.OnActivate(profile)
	}

	writeJSON(w, http.StatusOK, profile)
}

func applyRequest(p *store.Profile, req *profileRequest) {
	if req.PinchThreshold != nil {
		p.PinchThreshold = *req.PinchThreshold
	}
	if req.ScrollSensitivity != nil {
		p.ScrollSensitivity = *req.ScrollSensitivity
	}
	if req.ZoomSensitivity != nil {
		p.ZoomSensitivity = *req.ZoomSensitivity
	}
	if req.DebounceTime != nil {
		p.DebounceTime = *req.DebounceTime
	}
	if req.DebounceTimeShort != nil {
		p.DebounceTimeShort = *req.DebounceTimeShort
	}
	if req.DebounceTimeLong != nil {
		p.DebounceTimeLong = *req.DebounceTimeLong
	}
}

func validThresholds(p *store.Profile) bool {
	return p.PinchThreshold > 0 && p.ScrollSensitivity > 0 && p.ZoomSensitivity > 0 &&
		p.DebounceTime > 0 && p.DebounceTimeShort > 0 && p.DebounceTimeLong > 0
}
