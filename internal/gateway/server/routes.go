package server

import (
	"net/http"

	"flowradar/internal/gateway/handler"
	"flowradar/internal/gateway/middleware"
)

func NewMux(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/analyze", h.HandleAnalyze)
	mux.HandleFunc("/api/interpret", h.HandleInterpret)
	mux.HandleFunc("/api/suggest", h.HandleSuggest)
	mux.HandleFunc("/api/suggest/live", h.HandleSuggestWS)
	mux.HandleFunc("/api/models", h.HandleModels)
	mux.HandleFunc("/api/radars", h.HandleRadars)
	mux.HandleFunc("/api/radars/", h.HandleRadarByID)

	return middleware.CORS(mux)
}
