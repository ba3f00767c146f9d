package generator

import (
	"encoding/json"
	"fmt"
	"strings"
)

// packageManifest is the package.json document for a generated project.
// Field order matches the published layout; dependency maps marshal sorted.
type packageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Type            string            `json:"type"`
	Scripts         manifestScripts   `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

type manifestScripts struct {
	Dev     string `json:"dev"`
	Build   string `json:"build"`
	Preview string `json:"preview"`
}

// newPackageManifest builds the manifest for a tool. Package names use
// underscores because npm rejects some registry operations on names that
// collide with existing dashed packages.
func newPackageManifest(toolID string) *packageManifest {
	return &packageManifest{
		Name:    strings.ReplaceAll(toolID, "-", "_"),
		Version: "1.0.0",
		Type:    "module",
		Scripts: manifestScripts{
			Dev:     "vite",
			Build:   "vite build",
			Preview: "vite preview",
		},
		Dependencies: map[string]string{
			"react":             "^18.2.0",
			"react-dom":         "^18.2.0",
			"@anthropic-ai/sdk": "^0.20.0",
			"lucide-react":      "^0.294.0",
		},
		DevDependencies: map[string]string{
			"@types/react":         "^18.2.43",
			"@types/react-dom":     "^18.2.17",
			"@vitejs/plugin-react": "^4.2.1",
			"autoprefixer":         "^10.4.16",
			"postcss":              "^8.4.32",
			"tailwindcss":          "^3.3.6",
			"vite":                 "^5.0.8",
		},
	}
}

func (m *packageManifest) render() (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal package.json: %w", err)
	}
	return string(data) + "\n", nil
}

// vercelConfig is the Vercel deployment configuration with the SPA rewrite.
type vercelConfig struct {
	Rewrites []vercelRewrite `json:"rewrites"`
}

type vercelRewrite struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

func newVercelConfig() *vercelConfig {
	return &vercelConfig{
		Rewrites: []vercelRewrite{
			{Source: "/(.*)", Destination: "/index.html"},
		},
	}
}

func (v *vercelConfig) render() (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal vercel.json: %w", err)
	}
	return string(data) + "\n", nil
}
