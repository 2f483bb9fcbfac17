package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"flowradar/internal/archive"
	"flowradar/internal/llm"
	"flowradar/internal/radarstore"
	"flowradar/internal/types"
)

// ClientFactory builds a reasoning-capability client for an opaque model id.
type ClientFactory func(ctx context.Context, model string) (llm.LLMClient, error)

// Handler serves the gateway's JSON endpoints. It holds no per-request
// state; every analyze/interpret call builds its own client.
type Handler struct {
	newClient    ClientFactory
	defaultModel string
	store        *radarstore.Store
	archive      *archive.S3Store
}

// New creates a gateway handler. archiveStore may be nil to disable
// archiving.
func New(factory ClientFactory, defaultModel string, store *radarstore.Store, archiveStore *archive.S3Store) *Handler {
	if defaultModel == "" {
		defaultModel = llm.DefaultModel
	}
	return &Handler{
		newClient:    factory,
		defaultModel: defaultModel,
		store:        store,
		archive:      archiveStore,
	}
}

func (h *Handler) client(ctx context.Context, model string) (llm.LLMClient, error) {
	if model == "" {
		model = h.defaultModel
	}
	return h.newClient(ctx, model)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy to HTTP statuses: caller-data defects
// are 400, a bad answer from the capability is 502, an unreachable
// capability is 503. Partial results never leave this function.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var (
		malformedEvent    *types.MalformedEventError
		inputTooLong      *types.InputTooLongError
		malformedResponse *types.MalformedResponseError
		schemaViolation   *types.SchemaViolationError
		upstream          *types.UpstreamUnavailableError
	)
	switch {
	case errors.As(err, &malformedEvent), errors.As(err, &inputTooLong):
		status = http.StatusBadRequest
	case errors.As(err, &malformedResponse), errors.As(err, &schemaViolation):
		status = http.StatusBadGateway
	case errors.As(err, &upstream):
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func newID(prefix string) string {
	return prefix + "-" + time.Now().UTC().Format("20060102T150405.000000000")
}

func (h *Handler) archiveAnalysis(res types.AnalysisResult) {
	if h.archive == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	id := newID("analysis")
	if err := h.archive.PutAnalysis(ctx, id, res); err != nil {
		log.Printf("archive %s: %v", id, err)
	}
}
