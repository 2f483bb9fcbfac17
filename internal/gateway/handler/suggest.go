package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"flowradar/internal/radar"
)

type suggestResponse struct {
	Suggestions []radar.Suggestion `json:"suggestions"`
}

func suggestFor(input string) suggestResponse {
	out := radar.Suggest(input, radar.DefaultCandidates)
	if out == nil {
		out = []radar.Suggestion{}
	}
	return suggestResponse{Suggestions: out}
}

func (h *Handler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, suggestFor(r.URL.Query().Get("q")))
}

const (
	suggestWSWriteWait = 10 * time.Second
	suggestWSPongWait  = 60 * time.Second
	suggestWSPingEvery = (suggestWSPongWait * 9) / 10
)

var suggestWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type suggestWSInbound struct {
	Input string `json:"input"`
}

type suggestWSOutbound struct {
	Input       string             `json:"input"`
	Suggestions []radar.Suggestion `json:"suggestions"`
}

// HandleSuggestWS answers every inbound text frame with the ranked
// suggestions for it. The ranker is pure and local, so no server-side
// debouncing is applied.
func (h *Handler) HandleSuggestWS(w http.ResponseWriter, r *http.Request) {
	conn, err := suggestWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(suggestWSPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(suggestWSPongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(suggestWSPingEvery)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(suggestWSWriteWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	for {
		var in suggestWSInbound
		if err := conn.ReadJSON(&in); err != nil {
			return
		}
		resp := suggestFor(in.Input)
		conn.SetWriteDeadline(time.Now().Add(suggestWSWriteWait))
		if err := conn.WriteJSON(suggestWSOutbound{Input: in.Input, Suggestions: resp.Suggestions}); err != nil {
			return
		}
	}
}
