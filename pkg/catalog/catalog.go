// Package catalog defines the registry of scaffoldable micro-tool projects.
// Each entry is pure data: the generator and pipeline consume copies of the
// definitions and never mutate the registry.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed prompts/*.js
var promptFS embed.FS

// ErrUnknownTool is returned when a tool identifier does not resolve.
var ErrUnknownTool = errors.New("unknown tool")

// PromptSpec is the per-tool data bundle that differentiates generated
// applications. PromptBody is a JavaScript statement embedded verbatim into
// the generated App.jsx as the body of its prompt-construction function.
type PromptSpec struct {
	InputLabel       string
	InputPlaceholder string
	InputRows        int
	PromptBody       string
}

// RepoMetadata describes how the published GitHub repository is configured.
type RepoMetadata struct {
	Description string
	Topics      []string
}

// ToolDefinition is one scaffoldable project type.
type ToolDefinition struct {
	ID           string // stable kebab-case key
	Name         string
	Description  string
	Monetization string
	Prompt       PromptSpec
	Repo         RepoMetadata
}

// Catalog is an immutable, ordered registry of tool definitions. Iteration
// order is declaration order and is stable across calls.
type Catalog struct {
	tools []ToolDefinition
	index map[string]int
}

// New builds a catalog from the given definitions, preserving order.
// Duplicate identifiers are rejected.
func New(tools []ToolDefinition) (*Catalog, error) {
	c := &Catalog{
		tools: make([]ToolDefinition, len(tools)),
		index: make(map[string]int, len(tools)),
	}
	copy(c.tools, tools)
	for i, t := range c.tools {
		if t.ID == "" {
			return nil, fmt.Errorf("tool at position %d has empty identifier", i)
		}
		if _, dup := c.index[t.ID]; dup {
			return nil, fmt.Errorf("duplicate tool identifier: %s", t.ID)
		}
		c.index[t.ID] = i
	}
	return c, nil
}

// Lookup resolves a tool identifier to its definition.
func (c *Catalog) Lookup(id string) (ToolDefinition, error) {
	i, ok := c.index[id]
	if !ok {
		return ToolDefinition{}, fmt.Errorf("%w: %s", ErrUnknownTool, id)
	}
	return c.tools[i], nil
}

// All returns the definitions in declaration order.
func (c *Catalog) All() []ToolDefinition {
	out := make([]ToolDefinition, len(c.tools))
	copy(out, c.tools)
	return out
}

// IDs returns the tool identifiers in declaration order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.tools))
	for i, t := range c.tools {
		ids[i] = t.ID
	}
	return ids
}

// Len returns the number of registered tools.
func (c *Catalog) Len() int {
	return len(c.tools)
}

// mustPrompt loads an embedded prompt body for a built-in tool.
func mustPrompt(id string) string {
	data, err := promptFS.ReadFile("prompts/" + id + ".js")
	if err != nil {
		panic(fmt.Sprintf("missing embedded prompt for %s: %v", id, err))
	}
	return strings.TrimRight(string(data), "\n")
}
