package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestBuiltinOrderIsStable(t *testing.T) {
	c := Builtin()

	want := []string{
		"prompt-testing-lab",
		"meeting-action-extractor",
		"resume-optimizer",
		"social-media-multiplier",
		"contract-analyzer",
		"email-response-generator",
		"sales-outreach-personalizer",
		"product-description-generator",
		"interview-prep-coach",
		"seo-content-optimizer",
	}

	got := c.IDs()
	if len(got) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	// Repeated iteration must produce the same ordering.
	again := c.IDs()
	for i := range got {
		if got[i] != again[i] {
			t.Fatalf("iteration order changed between calls at position %d", i)
		}
	}
}

func TestLookupUnknownTool(t *testing.T) {
	c := Builtin()

	_, err := c.Lookup("definitely-not-a-tool")
	if !errors.Is(err, ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", err)
	}
	if !strings.Contains(err.Error(), "definitely-not-a-tool") {
		t.Errorf("error should name the bad identifier: %v", err)
	}
}

func TestLookupReturnsCompleteDefinition(t *testing.T) {
	c := Builtin()

	tool, err := c.Lookup("resume-optimizer")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	if tool.Name != "Resume ATS Optimizer" {
		t.Errorf("unexpected display name: %s", tool.Name)
	}
	if tool.Prompt.InputRows != 15 {
		t.Errorf("expected 15 input rows, got %d", tool.Prompt.InputRows)
	}
	if !strings.Contains(tool.Prompt.PromptBody, "${userInput}") {
		t.Error("prompt body must contain the user input substitution point")
	}
	if !strings.HasPrefix(tool.Prompt.PromptBody, "return `") {
		t.Errorf("prompt body must be a JS return statement, got prefix %q", tool.Prompt.PromptBody[:20])
	}
	if len(tool.Repo.Topics) == 0 {
		t.Error("expected repo topics to be populated")
	}
}

func TestEveryToolHasPromptSpec(t *testing.T) {
	for _, tool := range Builtin().All() {
		if tool.Prompt.InputLabel == "" {
			t.Errorf("%s: empty input label", tool.ID)
		}
		if tool.Prompt.InputPlaceholder == "" {
			t.Errorf("%s: empty placeholder", tool.ID)
		}
		if tool.Prompt.InputRows <= 0 {
			t.Errorf("%s: non-positive row count", tool.ID)
		}
		if !strings.Contains(tool.Prompt.PromptBody, "${userInput}") {
			t.Errorf("%s: prompt body missing substitution point", tool.ID)
		}
		if tool.Monetization == "" {
			t.Errorf("%s: empty monetization note", tool.ID)
		}
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]ToolDefinition{
		{ID: "dup", Name: "First"},
		{ID: "dup", Name: "Second"},
	})
	if err == nil {
		t.Fatal("expected duplicate identifier to be rejected")
	}
}

func TestNewRejectsEmptyID(t *testing.T) {
	_, err := New([]ToolDefinition{{Name: "anonymous"}})
	if err == nil {
		t.Fatal("expected empty identifier to be rejected")
	}
}
