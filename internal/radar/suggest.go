package radar

import "strings"

// Suggestion is one candidate radar topic shown while the user types.
type Suggestion struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// maxSuggestions caps one suggest response.
const maxSuggestions = 4

// DefaultCandidates is the fixed candidate set behind live suggestions.
var DefaultCandidates = []Suggestion{
	{Text: "AI sentiment about cryptocurrency", Category: "finance"},
	{Text: "New releases of my dependencies", Category: "engineering"},
	{Text: "Competitor pricing changes", Category: "business"},
	{Text: "Security advisories for Kubernetes", Category: "security"},
	{Text: "Trending GitHub repositories in Go", Category: "engineering"},
	{Text: "Regulatory news in the EU", Category: "policy"},
	{Text: "Papers about LLM evaluation", Category: "research"},
	{Text: "Job postings mentioning our product", Category: "business"},
	{Text: "Outage reports for cloud providers", Category: "operations"},
	{Text: "Interest rate announcements", Category: "finance"},
}

// Suggest returns the candidates whose text or category contains the input
// as a case-insensitive substring, in candidate order, capped at four.
// Inputs shorter than two characters return nothing so the first keystroke
// stays quiet. Pure and synchronous; safe to call on every input change.
func Suggest(input string, candidates []Suggestion) []Suggestion {
	input = strings.ToLower(strings.TrimSpace(input))
	if len([]rune(input)) < 2 {
		return nil
	}
	var out []Suggestion
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.Text), input) || strings.Contains(strings.ToLower(c.Category), input) {
			out = append(out, c)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}
