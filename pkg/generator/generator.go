// Package generator materializes complete micro-tool project trees from the
// shared template set. Generation is pure filesystem work: no network I/O,
// no timestamps, byte-identical output for identical inputs.
package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"toolforge/pkg/catalog"
	"toolforge/pkg/logx"
)

// Generator expands catalog entries into concrete project directories.
type Generator struct {
	catalog  *catalog.Catalog
	renderer *Renderer
	logger   *logx.Logger
}

// New creates a generator backed by the given catalog.
func New(c *catalog.Catalog) (*Generator, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize project renderer: %w", err)
	}
	return &Generator{
		catalog:  c,
		renderer: renderer,
		logger:   logx.NewLogger("generator"),
	}, nil
}

// Generate materializes the project for toolID under outputRoot and returns
// the absolute project path. The tree is written file by file; a mid-write
// failure leaves the partial tree in place for the caller to clean up.
func (g *Generator) Generate(toolID, outputRoot string) (string, error) {
	tool, err := g.catalog.Lookup(toolID)
	if err != nil {
		return "", err
	}

	projectDir := filepath.Join(outputRoot, tool.ID)
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create project directory %s: %w", projectDir, err)
	}

	g.logger.Debug("generating %s into %s", tool.ID, projectDir)

	if err := g.writeStructure(projectDir, &tool); err != nil {
		return "", err
	}
	if err := g.writeApplication(projectDir, &tool); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project path: %w", err)
	}
	return abs, nil
}

// writeStructure is the structural pass: boilerplate files that are either
// fully static or parameterized only by the tool's display name.
func (g *Generator) writeStructure(projectDir string, tool *catalog.ToolDefinition) error {
	manifest, err := newPackageManifest(tool.ID).render()
	if err != nil {
		return err
	}
	if err := g.writeFile(projectDir, "package.json", manifest); err != nil {
		return err
	}

	static := map[string]ProjectTemplate{
		"vite.config.js":     ViteConfigTemplate,
		"tailwind.config.js": TailwindConfigTemplate,
		"postcss.config.js":  PostCSSConfigTemplate,
		".env.example":       EnvExampleTemplate,
		".gitignore":         GitignoreTemplate,
		"netlify.toml":       NetlifyTemplate,
	}
	for name, tmpl := range static {
		content, renderErr := g.renderer.Render(tmpl, nil)
		if renderErr != nil {
			return renderErr
		}
		if err := g.writeFile(projectDir, name, content); err != nil {
			return err
		}
	}

	html, err := g.renderer.Render(IndexHTMLTemplate, structuralData{Title: tool.Name})
	if err != nil {
		return err
	}
	if err := g.writeFile(projectDir, "index.html", html); err != nil {
		return err
	}

	vercel, err := newVercelConfig().render()
	if err != nil {
		return err
	}
	if err := g.writeFile(projectDir, "vercel.json", vercel); err != nil {
		return err
	}

	readme, err := g.renderer.Render(ReadmeTemplate, readmeData{
		Name:         tool.Name,
		Description:  tool.Description,
		Monetization: tool.Monetization,
	})
	if err != nil {
		return err
	}
	if err := g.writeFile(projectDir, "README.md", readme); err != nil {
		return err
	}

	// components/ stays empty; it is the extension point for hand-written UI.
	if err := os.MkdirAll(filepath.Join(projectDir, "src", "components"), 0o755); err != nil {
		return fmt.Errorf("failed to create src/components: %w", err)
	}
	return nil
}

// writeApplication is the behavioral pass: the src/ sources, including the
// App.jsx produced from the shared skeleton and the tool's PromptSpec slots.
func (g *Generator) writeApplication(projectDir string, tool *catalog.ToolDefinition) error {
	mainJSX, err := g.renderer.Render(MainJSXTemplate, nil)
	if err != nil {
		return err
	}
	if err := g.writeFile(projectDir, filepath.Join("src", "main.jsx"), mainJSX); err != nil {
		return err
	}

	appCSS, err := g.renderer.Render(AppCSSTemplate, nil)
	if err != nil {
		return err
	}
	if err := g.writeFile(projectDir, filepath.Join("src", "App.css"), appCSS); err != nil {
		return err
	}

	appJSX, err := g.renderer.Render(AppJSXTemplate, appData{
		Name:             tool.Name,
		Description:      tool.Description,
		InputLabel:       tool.Prompt.InputLabel,
		InputPlaceholder: tool.Prompt.InputPlaceholder,
		InputRows:        tool.Prompt.InputRows,
		PromptBody:       tool.Prompt.PromptBody,
	})
	if err != nil {
		return err
	}
	return g.writeFile(projectDir, filepath.Join("src", "App.jsx"), appJSX)
}

func (g *Generator) writeFile(projectDir, name, content string) error {
	path := filepath.Join(projectDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
