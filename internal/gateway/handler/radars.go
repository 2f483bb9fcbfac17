package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"flowradar/internal/radar"
	"flowradar/internal/types"
)

type createRadarRequest struct {
	Input  string                     `json:"input"`
	Result types.InterpretationResult `json:"result"`
}

func (h *Handler) HandleRadars(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createRadar(w, r)
	case http.MethodGet:
		h.listRadars(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// createRadar persists an interpretation so a monitoring job can be
// instantiated from it. Only results that pass full schema validation are
// accepted; an isValid=false interpretation is well-formed but not
// trackable, so it is rejected here.
func (h *Handler) createRadar(w http.ResponseWriter, r *http.Request) {
	var req createRadarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}
	if strings.TrimSpace(req.Input) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "input is required"})
		return
	}
	if err := radar.Validate(req.Result); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if !req.Result.What.IsValid {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "interpretation is not a trackable topic"})
		return
	}

	spec := types.RadarSpec{
		ID:        newID("radar"),
		Input:     req.Input,
		Result:    req.Result,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.Save(r.Context(), spec); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, spec)
}

func (h *Handler) listRadars(w http.ResponseWriter, r *http.Request) {
	specs, err := h.store.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if specs == nil {
		specs = []types.RadarSpec{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"radars": specs})
}

func (h *Handler) HandleRadarByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/radars/")
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "radar id is required"})
		return
	}
	spec, ok, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "radar not found"})
		return
	}
	writeJSON(w, http.StatusOK, spec)
}
