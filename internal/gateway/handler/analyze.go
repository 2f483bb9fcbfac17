package handler

import (
	"encoding/json"
	"net/http"

	"flowradar/internal/insight"
	"flowradar/internal/types"
)

type analyzeRequest struct {
	Workflows []types.Workflow `json:"workflows"`
	Events    []types.Event    `json:"events"`
	Settings  *analyzeSettings `json:"settings,omitempty"`
}

type analyzeSettings struct {
	Model string `json:"model,omitempty"`
}

func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	model := ""
	if req.Settings != nil {
		model = req.Settings.Model
	}
	cli, err := h.client(r.Context(), model)
	if err != nil {
		writeError(w, err)
		return
	}
	defer cli.Close()

	synth := &insight.Synthesizer{LLM: cli}
	res, err := synth.Run(r.Context(), insight.Input{Workflows: req.Workflows, Events: req.Events})
	if err != nil {
		writeError(w, err)
		return
	}
	h.archiveAnalysis(res)
	writeJSON(w, http.StatusOK, res)
}
