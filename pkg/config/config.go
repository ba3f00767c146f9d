// Package config loads toolforge's own configuration: where generated
// projects go, which GitHub account publishes them, and which pipeline
// stages to skip.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFilename is the file searched for upward from the working directory.
const ConfigFilename = "toolforge.yaml"

// DefaultOutputDir is used when neither config nor flags specify one.
const DefaultOutputDir = "ai-tools-generated"

// SkipFlags disable individual pipeline stages.
type SkipFlags struct {
	Validation bool `yaml:"validation"`
	Git        bool `yaml:"git"`
	GitHub     bool `yaml:"github"`
}

// GitHubConfig holds the publishing account settings.
type GitHubConfig struct {
	Owner string `yaml:"owner"`
}

// Config is the toolforge configuration document.
type Config struct {
	OutputDir string       `yaml:"output_dir"`
	HistoryDB string       `yaml:"history_db"`
	GitHub    GitHubConfig `yaml:"github"`
	Skip      SkipFlags    `yaml:"skip"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{OutputDir: DefaultOutputDir}
}

// Load reads the config file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	applyEnv(cfg)
	return cfg, nil
}

// Discover looks for a config file upward from startDir. When none exists it
// returns the defaults with environment overrides applied.
func Discover(startDir string) (*Config, error) {
	if path, ok := search(startDir); ok {
		return Load(path)
	}
	cfg := Default()
	applyEnv(cfg)
	return cfg, nil
}

// search walks up the directory tree looking for the config file.
func search(startDir string) (string, bool) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, ConfigFilename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// applyEnv layers environment variables over file values. Environment wins,
// matching how CI overrides a checked-in config.
func applyEnv(cfg *Config) {
	if owner := os.Getenv("GITHUB_USERNAME"); owner != "" {
		cfg.GitHub.Owner = owner
	}
}
