package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flowradar/internal/llm"
	"flowradar/internal/radarstore"
	"flowradar/internal/types"
)

const analysisJSON = `{
  "insights": {"summary": "quiet week", "metrics": {"totalWorkflows": 1, "activeWorkflows": 1, "completedWorkflows": 0, "avgCompletionTime": "n/a", "bottlenecks": []}},
  "workflows": [{"id": "wf-1", "narrative": "waiting on review", "status": "active", "importance": 6, "nextSteps": [], "insights": []}],
  "recommendations": []
}`

func newTestHandler(fake *llm.FakeClient) *Handler {
	factory := func(ctx context.Context, model string) (llm.LLMClient, error) {
		return fake, nil
	}
	return New(factory, llm.DefaultModel, radarstore.New(), nil)
}

func TestHandleAnalyze(t *testing.T) {
	fake := llm.NewFakeClient(llm.FakeReply{Raw: json.RawMessage(analysisJSON)})
	h := newTestHandler(fake)

	body := `{"workflows": [{"id": "wf-1", "name": "Fix login", "issueKey": "PROJ-7"}], "events": []}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleAnalyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res types.AnalysisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Workflows) != 1 || res.Workflows[0].ID != "wf-1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestHandleAnalyze_NotJSONFromModelIs502(t *testing.T) {
	fake := llm.NewFakeClient(llm.FakeReply{Raw: json.RawMessage(`not json`)})
	h := newTestHandler(fake)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"workflows": [], "events": []}`))
	rec := httptest.NewRecorder()
	h.HandleAnalyze(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["error"] == "" {
		t.Fatalf("expected {\"error\": ...} body, got %s", rec.Body.String())
	}
}

func TestHandleAnalyze_MalformedEventsAre400(t *testing.T) {
	fake := llm.NewFakeClient()
	h := newTestHandler(fake)

	body := `{"workflows": [], "events": [{"id": "e1", "workflowId": "wf-ghost", "sequence": 1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleAnalyze(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if fake.Calls() != 0 {
		t.Fatalf("expected no model call, got %d", fake.Calls())
	}
}

func TestHandleInterpret_TooLongIs400(t *testing.T) {
	fake := llm.NewFakeClient()
	h := newTestHandler(fake)

	long := strings.Repeat("x", 501)
	req := httptest.NewRequest(http.MethodPost, "/api/interpret", strings.NewReader(`{"input": "`+long+`"}`))
	rec := httptest.NewRecorder()
	h.HandleInterpret(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if fake.Calls() != 0 {
		t.Fatalf("expected no model call, got %d", fake.Calls())
	}
}

func TestHandleInterpret_WhitespaceInputIs400(t *testing.T) {
	fake := llm.NewFakeClient()
	h := newTestHandler(fake)

	req := httptest.NewRequest(http.MethodPost, "/api/interpret", strings.NewReader(`{"input": "   \n\t "}`))
	rec := httptest.NewRecorder()
	h.HandleInterpret(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if fake.Calls() != 0 {
		t.Fatalf("expected no model call, got %d", fake.Calls())
	}
}

func TestHandleSuggest(t *testing.T) {
	h := newTestHandler(llm.NewFakeClient())

	req := httptest.NewRequest(http.MethodGet, "/api/suggest?q=ai", nil)
	rec := httptest.NewRecorder()
	h.HandleSuggest(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body suggestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Suggestions) == 0 {
		t.Fatal("expected suggestions for \"ai\"")
	}
}

func TestHandleSuggest_ShortInputEmptyArray(t *testing.T) {
	h := newTestHandler(llm.NewFakeClient())

	req := httptest.NewRequest(http.MethodGet, "/api/suggest?q=a", nil)
	rec := httptest.NewRecorder()
	h.HandleSuggest(rec, req)

	if !strings.Contains(rec.Body.String(), `"suggestions":[]`) {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestHandleModels(t *testing.T) {
	h := newTestHandler(llm.NewFakeClient())

	req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
	rec := httptest.NewRecorder()
	h.HandleModels(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Models  []llm.ModelInfo `json:"models"`
		Default string          `json:"default"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Models) == 0 || body.Default == "" {
		t.Fatalf("unexpected catalog response: %s", rec.Body.String())
	}
}

func TestRadarLifecycle(t *testing.T) {
	h := newTestHandler(llm.NewFakeClient())

	create := `{
	  "input": "track crypto sentiment",
	  "result": {
	    "what": {"topic": "Crypto sentiment", "description": "d", "isValid": true, "confidence": 0.9},
	    "when": {
	      "frequency": "daily",
	      "notifyCondition": "significant_change",
	      "options": [
	        {"label": "Always", "value": "always", "isRecommended": false},
	        {"label": "On change", "value": "significant_change", "isRecommended": true},
	        {"label": "Never", "value": "never", "isRecommended": false}
	      ]
	    },
	    "why": {"intent": "stay informed", "suggestedInsights": []}
	  }
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/radars", strings.NewReader(create))
	rec := httptest.NewRecorder()
	h.HandleRadars(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created types.RadarSpec
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/radars/"+created.ID, nil)
	rec = httptest.NewRecorder()
	h.HandleRadarByID(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/radars", nil)
	rec = httptest.NewRecorder()
	h.HandleRadars(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), created.ID) {
		t.Fatalf("expected list containing %s, got %s", created.ID, rec.Body.String())
	}
}

func TestCreateRadar_WrongOptionCountIs400(t *testing.T) {
	h := newTestHandler(llm.NewFakeClient())

	create := `{
	  "input": "track crypto sentiment",
	  "result": {
	    "what": {"topic": "t", "description": "d", "isValid": true, "confidence": 0.9},
	    "when": {
	      "frequency": "daily",
	      "notifyCondition": "always",
	      "options": [
	        {"label": "Always", "value": "always", "isRecommended": true},
	        {"label": "Never", "value": "never", "isRecommended": false}
	      ]
	    },
	    "why": {"intent": "i", "suggestedInsights": []}
	  }
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/radars", strings.NewReader(create))
	rec := httptest.NewRecorder()
	h.HandleRadars(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
