package generator

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// ProjectTemplate names one embedded project file template.
type ProjectTemplate string

const (
	// ViteConfigTemplate is the bundler configuration.
	ViteConfigTemplate ProjectTemplate = "vite.config.js.tmpl"
	// TailwindConfigTemplate is the CSS framework configuration.
	TailwindConfigTemplate ProjectTemplate = "tailwind.config.js.tmpl"
	// PostCSSConfigTemplate is the CSS processor configuration.
	PostCSSConfigTemplate ProjectTemplate = "postcss.config.js.tmpl"
	// IndexHTMLTemplate is the HTML entry point.
	IndexHTMLTemplate ProjectTemplate = "index.html.tmpl"
	// EnvExampleTemplate is the environment variable example file.
	EnvExampleTemplate ProjectTemplate = "env.example.tmpl"
	// GitignoreTemplate is the ignore file.
	GitignoreTemplate ProjectTemplate = "gitignore.tmpl"
	// NetlifyTemplate is the Netlify deployment configuration.
	NetlifyTemplate ProjectTemplate = "netlify.toml.tmpl"
	// MainJSXTemplate is the application entry point source.
	MainJSXTemplate ProjectTemplate = "main.jsx.tmpl"
	// AppCSSTemplate is the stylesheet.
	AppCSSTemplate ProjectTemplate = "app.css.tmpl"
	// ReadmeTemplate is the project documentation.
	ReadmeTemplate ProjectTemplate = "readme.md.tmpl"
	// AppJSXTemplate is the shared application skeleton. Tool differentiation
	// happens entirely through its four slots (label, placeholder, row count,
	// prompt body), never through per-tool template variants.
	AppJSXTemplate ProjectTemplate = "app.jsx.tmpl"
)

// structuralData parameterizes the boilerplate pass.
type structuralData struct {
	Title string
}

// readmeData parameterizes the generated README.
type readmeData struct {
	Name         string
	Description  string
	Monetization string
}

// appData fills the four slots of the application skeleton plus the header
// scalars shared with the structural pass.
type appData struct {
	Name             string
	Description      string
	InputLabel       string
	InputPlaceholder string
	InputRows        int
	PromptBody       string
}

// Renderer renders embedded project templates.
type Renderer struct {
	templates map[ProjectTemplate]*template.Template
}

// NewRenderer parses all embedded project templates.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[ProjectTemplate]*template.Template)}

	names := []ProjectTemplate{
		ViteConfigTemplate,
		TailwindConfigTemplate,
		PostCSSConfigTemplate,
		IndexHTMLTemplate,
		EnvExampleTemplate,
		GitignoreTemplate,
		NetlifyTemplate,
		MainJSXTemplate,
		AppCSSTemplate,
		ReadmeTemplate,
		AppJSXTemplate,
	}

	for _, name := range names {
		content, err := templateFS.ReadFile("templates/" + string(name))
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", name, err)
		}
		tmpl, err := template.New(string(name)).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

// Render expands the named template with the given data.
func (r *Renderer) Render(name ProjectTemplate, data any) (string, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown template: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}
