package gate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// RequiredFiles is the fixed manifest of paths every generated project must
// contain. The gate and the generator agree on this list; changing it here
// without changing the generator breaks the round-trip guarantee.
var RequiredFiles = []string{
	"package.json",
	"vite.config.js",
	"tailwind.config.js",
	"postcss.config.js",
	"index.html",
	".env.example",
	".gitignore",
	"README.md",
	"vercel.json",
	"netlify.toml",
	"src/main.jsx",
	"src/App.jsx",
	"src/App.css",
}

var requiredManifestFields = []string{
	"name",
	"version",
	"type",
	"scripts",
	"dependencies",
	"devDependencies",
}

var requiredScripts = []string{"dev", "build", "preview"}

var requiredDependencies = []string{
	"react",
	"react-dom",
	"@anthropic-ai/sdk",
	"lucide-react",
}

var requiredDevDependencies = []string{
	"@vitejs/plugin-react",
	"vite",
	"tailwindcss",
	"autoprefixer",
	"postcss",
}

// RequiredEnvVar is the environment variable every generated project must
// document in its .env.example.
const RequiredEnvVar = "VITE_ANTHROPIC_API_KEY"

const envPlaceholder = "your-api-key-here"

// requiredFilesCheck errors on each missing manifest path and confirms the
// rest.
type requiredFilesCheck struct{}

func (c *requiredFilesCheck) Name() string { return "required-files" }

func (c *requiredFilesCheck) Inspect(root string, r *Report) {
	for _, rel := range RequiredFiles {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
			r.Errorf("Missing required file: %s", rel)
		} else {
			r.Infof("✓ Found: %s", rel)
		}
	}
}

// manifestCheck validates package.json structure. Missing fields and scripts
// are hard failures; missing specific libraries are advisory because a
// generation profile may intentionally swap them out.
type manifestCheck struct{}

func (c *manifestCheck) Name() string { return "package-manifest" }

func (c *manifestCheck) Inspect(root string, r *Report) {
	path := filepath.Join(root, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		// Absence was already reported by the required-files check.
		return
	}

	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		r.Errorf("package.json is not valid JSON: %v", err)
		return
	}

	for _, field := range requiredManifestFields {
		if _, ok := manifest[field]; !ok {
			r.Errorf("package.json missing field: %s", field)
		}
	}

	scripts, _ := manifest["scripts"].(map[string]any)
	for _, script := range requiredScripts {
		if _, ok := scripts[script]; !ok {
			r.Errorf("package.json missing script: %s", script)
		}
	}

	deps, _ := manifest["dependencies"].(map[string]any)
	for _, dep := range requiredDependencies {
		if _, ok := deps[dep]; !ok {
			r.Warnf("package.json missing dependency: %s", dep)
		}
	}

	devDeps, _ := manifest["devDependencies"].(map[string]any)
	for _, dep := range requiredDevDependencies {
		if _, ok := devDeps[dep]; !ok {
			r.Warnf("package.json missing devDependency: %s", dep)
		}
	}

	name, _ := manifest["name"].(string)
	if name == "" || name == "your-project-name" {
		r.Warnf("package.json has placeholder name")
	}

	r.Infof("✓ package.json structure is valid")
}

var readmeHeadingRe = regexp.MustCompile(`(?m)^#\s+.+`)

// readmeCheck applies documentation heuristics: a heading, setup wording,
// and a minimum length. Length below 100 characters is a soft signal for
// trivial docs, not a correctness rule.
type readmeCheck struct{}

func (c *readmeCheck) Name() string { return "readme" }

func (c *readmeCheck) Inspect(root string, r *Report) {
	data, err := os.ReadFile(filepath.Join(root, "README.md"))
	if err != nil {
		r.Errorf("README.md is missing")
		return
	}
	content := string(data)

	if !readmeHeadingRe.MatchString(content) {
		r.Warnf("README.md missing main title (# heading)")
	}

	lower := strings.ToLower(content)
	if !strings.Contains(lower, "setup") && !strings.Contains(lower, "install") {
		r.Warnf("README.md missing setup/installation instructions")
	}

	if len(strings.TrimSpace(content)) < 100 {
		r.Warnf("README.md seems too short")
	}

	r.Infof("✓ README.md exists and has content")
}

// envExampleCheck requires the API key variable and looks for the
// placeholder-value convention.
type envExampleCheck struct{}

func (c *envExampleCheck) Name() string { return "env-example" }

func (c *envExampleCheck) Inspect(root string, r *Report) {
	data, err := os.ReadFile(filepath.Join(root, ".env.example"))
	if err != nil {
		r.Errorf(".env.example is missing")
		return
	}
	content := string(data)

	if !strings.Contains(content, RequiredEnvVar) {
		r.Errorf(".env.example missing %s", RequiredEnvVar)
	}

	if !strings.Contains(strings.ToLower(content), envPlaceholder) {
		r.Warnf(".env.example might be missing placeholder value")
	}

	r.Infof("✓ .env.example is properly configured")
}

// ignoreFileCheck warns when conventional ignore patterns are absent.
type ignoreFileCheck struct{}

func (c *ignoreFileCheck) Name() string { return "gitignore" }

func (c *ignoreFileCheck) Inspect(root string, r *Report) {
	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		r.Errorf(".gitignore is missing")
		return
	}
	content := string(data)

	for _, pattern := range []string{"node_modules", ".env"} {
		if !strings.Contains(content, pattern) {
			r.Warnf(".gitignore missing: %s", pattern)
		}
	}

	r.Infof("✓ .gitignore exists")
}

// appSourceCheck applies best-effort substring heuristics to the generated
// application source. These are advisory by design: substring presence can
// suggest but not prove that the markers work.
type appSourceCheck struct{}

func (c *appSourceCheck) Name() string { return "app-source" }

func (c *appSourceCheck) Inspect(root string, r *Report) {
	data, err := os.ReadFile(filepath.Join(root, "src", "App.jsx"))
	if err != nil {
		// Covered by the required-files check; nothing to inspect.
		return
	}
	content := string(data)
	lower := strings.ToLower(content)

	if !strings.Contains(lower, "anthropic") && !strings.Contains(lower, "claude") {
		r.Warnf("App.jsx might be missing API integration")
	}
	if !strings.Contains(content, "catch") || !strings.Contains(lower, "error") {
		r.Warnf("App.jsx might be missing error handling")
	}
	if !strings.Contains(lower, "loading") {
		r.Warnf("App.jsx might be missing loading state")
	}
	if !strings.Contains(content, "useState") {
		r.Warnf("App.jsx might be missing React hooks")
	}

	r.Infof("✓ App.jsx has basic structure")
}

// deployConfigCheck inspects the two platform configs when present. File
// absence is the required-files check's job and is not re-flagged here.
type deployConfigCheck struct{}

func (c *deployConfigCheck) Name() string { return "deploy-configs" }

func (c *deployConfigCheck) Inspect(root string, r *Report) {
	if data, err := os.ReadFile(filepath.Join(root, "vercel.json")); err == nil {
		var cfg map[string]any
		if err := json.Unmarshal(data, &cfg); err != nil {
			r.Warnf("vercel.json might be invalid: %v", err)
		} else if _, ok := cfg["rewrites"]; !ok {
			r.Warnf("vercel.json missing rewrites configuration")
		} else {
			r.Infof("✓ vercel.json is configured")
		}
	}

	if data, err := os.ReadFile(filepath.Join(root, "netlify.toml")); err == nil {
		if !strings.Contains(string(data), "redirects") {
			r.Warnf("netlify.toml missing redirects configuration")
		} else {
			r.Infof("✓ netlify.toml is configured")
		}
	}
}

// optionalToolingCheck notes absent optional configuration. Info only.
type optionalToolingCheck struct{}

func (c *optionalToolingCheck) Name() string { return "optional-tooling" }

func (c *optionalToolingCheck) Inspect(root string, r *Report) {
	if _, err := os.Stat(filepath.Join(root, "tsconfig.json")); err != nil {
		r.Infof("No TypeScript config (optional)")
	}
	if _, err := os.Stat(filepath.Join(root, ".eslintrc")); err != nil {
		r.Infof("No ESLint config (optional)")
	}
}
