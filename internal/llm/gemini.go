package llm

import (
	"context"
	"encoding/json"
	"log"

	genai "google.golang.org/genai"

	"flowradar/internal/jsonutil"
	"flowradar/internal/types"
)

// GeminiClient is a thin wrapper around the official genai client.
type GeminiClient struct {
	cli   *genai.Client
	model string
	rl    *rpsLimiter
}

// GeminiOptions tunes the optional request throttle. Zero values disable it.
type GeminiOptions struct {
	RPS   float64
	Burst int
}

func NewGeminiClient(ctx context.Context, apiKey, model string, opts GeminiOptions) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &types.UpstreamUnavailableError{Err: err}
	}
	return &GeminiClient{cli: cli, model: model, rl: newRPSLimiter(opts.RPS, opts.Burst)}, nil
}

func (g *GeminiClient) Name() string { return "gemini:" + g.model }
func (g *GeminiClient) Close() error {
	if g.rl != nil {
		g.rl.Stop()
	}
	return nil
}

// GenerateJSON sends the concatenated prompt/input and requests application/json.
func (g *GeminiClient) GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error) {
	full := prompt
	if input != nil {
		in, err := jsonutil.MarshalNoEscapeIndent(input, "", "  ")
		if err != nil {
			return nil, NewPermanentError(err)
		}
		full = prompt + "\n\n[INPUT JSON]\n" + string(in)
	}
	log.Printf("LLM request (%s): %d bytes", g.Name(), len(full))

	if err := g.rl.Acquire(ctx); err != nil {
		return nil, err
	}
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: full}}}},
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return nil, &types.UpstreamUnavailableError{Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, &types.MalformedResponseError{Err: errEmptyCandidates}
	}
	return json.RawMessage(resp.Candidates[0].Content.Parts[0].Text), nil
}
