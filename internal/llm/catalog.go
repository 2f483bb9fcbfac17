package llm

import (
	"context"
	"strings"
)

// ModelLevel represents the capability tier of a model.
type ModelLevel string

const (
	ModelLevelLow    ModelLevel = "low"
	ModelLevelMiddle ModelLevel = "middle"
	ModelLevelHigh   ModelLevel = "high"
)

// DefaultModel is used when a request does not select a model.
const DefaultModel = "gemini-2.0-flash"

// ModelInfo is one catalog entry served by the model-listing endpoint.
type ModelInfo struct {
	Provider string     `json:"provider"`
	Model    string     `json:"model"`
	Name     string     `json:"name"`
	Level    ModelLevel `json:"level"`
}

// Catalog lists the models the gateway knows how to reach.
func Catalog() []ModelInfo {
	return []ModelInfo{
		{Provider: "gemini", Model: "gemini-2.0-flash", Name: "Gemini 2.0 Flash", Level: ModelLevelMiddle},
		{Provider: "gemini", Model: "gemini-2.0-flash-lite", Name: "Gemini 2.0 Flash Lite", Level: ModelLevelLow},
		{Provider: "gemini", Model: "gemini-2.5-pro", Name: "Gemini 2.5 Pro", Level: ModelLevelHigh},
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Name: "Llama 3.3 70B", Level: ModelLevelMiddle},
		{Provider: "groq", Model: "llama-3.1-8b-instant", Name: "Llama 3.1 8B", Level: ModelLevelLow},
	}
}

// Factory builds clients from provider credentials configured once at
// process start.
type Factory struct {
	GeminiAPIKey string
	GroqAPIKey   string
	Gemini       GeminiOptions
}

// NewClient resolves the provider for the given model id and builds a
// client. Model ids outside the catalog are passed through to Gemini
// unchanged; the id itself is opaque to this layer.
func (f *Factory) NewClient(ctx context.Context, model string) (LLMClient, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultModel
	}
	provider := "gemini"
	for _, m := range Catalog() {
		if m.Model == model {
			provider = m.Provider
			break
		}
	}
	switch provider {
	case "groq":
		return NewGroqClient(f.GroqAPIKey, model), nil
	default:
		return NewGeminiClient(ctx, f.GeminiAPIKey, model, f.Gemini)
	}
}
