package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"flowradar/internal/radar"
)

type interpretRequest struct {
	Input   string         `json:"input"`
	Context *radar.Context `json:"context,omitempty"`
	Model   string         `json:"model,omitempty"`
}

func (h *Handler) HandleInterpret(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req interpretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}
	if strings.TrimSpace(req.Input) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "input is required"})
		return
	}

	cli, err := h.client(r.Context(), req.Model)
	if err != nil {
		writeError(w, err)
		return
	}
	defer cli.Close()

	interp := &radar.Interpreter{LLM: cli}
	res, err := interp.Run(r.Context(), req.Input, req.Context)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
