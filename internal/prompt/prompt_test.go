package prompt

import (
	"strings"
	"testing"
)

func TestBuild_RendersSections(t *testing.T) {
	spec := Spec{
		Purpose:      "Summarize workflow activity.",
		Background:   "Events arrive from two trackers.",
		OutputFormat: "JSON only.",
		OutputFields: []Field{
			{Name: "summary", Type: "string", Required: true, Description: "Short summary."},
			{Name: "risks", Type: "[]string", Required: false},
		},
		Constraints: []string{"No markdown."},
		Rules:       []string{"Be concise."},
		Examples: []Example{
			{InputJSON: `{"workflows":[]}`, OutputJSON: `{"summary":"ok"}`},
		},
	}

	out, err := Build(spec, map[string]any{"workflows": []string{}})
	if err != nil {
		t.Fatalf("build error: %v", err)
	}

	wantSections := []string{
		"[PURPOSE]",
		"[BACKGROUND]",
		"[INPUT]",
		"[OUTPUT]",
		"[CONSTRAINTS]",
		"[RULES]",
		"[OUTPUT_FORMAT]",
		"[EXAMPLES]",
	}
	for _, sec := range wantSections {
		if !strings.Contains(out, sec) {
			t.Fatalf("expected section %s in prompt", sec)
		}
	}
	if !strings.Contains(out, "- summary (string, required): Short summary.") {
		t.Fatalf("expected rendered field line, got:\n%s", out)
	}
	if !strings.Contains(out, "- risks ([]string, optional)") {
		t.Fatalf("expected optional field line, got:\n%s", out)
	}
}

func TestBuild_RequiresPurpose(t *testing.T) {
	spec := Spec{OutputFields: []Field{{Name: "summary", Type: "string", Required: true}}}
	_, err := Build(spec, nil)
	if err == nil || !strings.Contains(err.Error(), "purpose") {
		t.Fatalf("expected purpose error, got %v", err)
	}
}

func TestBuild_RequiresOutputFields(t *testing.T) {
	spec := Spec{Purpose: "x"}
	_, err := Build(spec, nil)
	if err == nil || !strings.Contains(err.Error(), "output fields") {
		t.Fatalf("expected output fields error, got %v", err)
	}
}

func TestBuild_DoesNotEscapeHTMLInInput(t *testing.T) {
	spec := Spec{
		Purpose:      "p",
		OutputFields: []Field{{Name: "a", Type: "string", Required: true}},
	}
	out, err := Build(spec, map[string]string{"title": "a <b> & c"})
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	if !strings.Contains(out, "a <b> & c") {
		t.Fatalf("expected literal characters in input section, got:\n%s", out)
	}
}
