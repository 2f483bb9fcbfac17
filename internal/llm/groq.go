package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"flowradar/internal/jsonutil"
	"flowradar/internal/types"
)

var errEmptyCandidates = errors.New("model returned no candidates")

// GroqClient calls the Groq Chat Completions API (OpenAI-compatible) and asks
// for a JSON object response.
type GroqClient struct {
	http    *http.Client
	apiKey  string
	model   string
	baseURL string
}

func NewGroqClient(apiKey, model string) *GroqClient {
	return &GroqClient{
		http:    &http.Client{Timeout: 60 * time.Second},
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://api.groq.com/openai/v1/chat/completions",
	}
}

func (g *GroqClient) Name() string { return "groq:" + g.model }
func (g *GroqClient) Close() error { return nil }

type groqChatReq struct {
	Model          string            `json:"model"`
	Messages       []groqMessage     `json:"messages"`
	Temperature    float32           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqChatResp struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateJSON assembles a single user message from prompt + input and
// requests JSON output. 4xx statuses are permanent; everything else reaching
// the network is reported as upstream-unavailable.
func (g *GroqClient) GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error) {
	full := prompt
	if input != nil {
		in, err := jsonutil.MarshalNoEscapeIndent(input, "", "  ")
		if err != nil {
			return nil, NewPermanentError(err)
		}
		full = prompt + "\n\n[INPUT JSON]\n" + string(in)
	}

	reqBody := groqChatReq{
		Model:          g.model,
		Messages:       []groqMessage{{Role: "user", Content: full}},
		Temperature:    0,
		ResponseFormat: map[string]string{"type": "json_object"},
	}
	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(b))
	if err != nil {
		return nil, NewPermanentError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, &types.UpstreamUnavailableError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, NewPermanentError(&types.UpstreamUnavailableError{Err: fmt.Errorf("groq: status %s", resp.Status)})
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &types.UpstreamUnavailableError{Err: fmt.Errorf("groq: status %s", resp.Status)}
	}
	var out groqChatResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &types.MalformedResponseError{Err: err}
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return nil, &types.MalformedResponseError{Err: errEmptyCandidates}
	}
	return json.RawMessage(out.Choices[0].Message.Content), nil
}
