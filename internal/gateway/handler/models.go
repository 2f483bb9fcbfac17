package handler

import (
	"net/http"

	"flowradar/internal/llm"
)

func (h *Handler) HandleModels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"models":  llm.Catalog(),
		"default": h.defaultModel,
	})
}
