// Package gitrepo initializes and commits generated project repositories
// using the host git binary.
package gitrepo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"toolforge/pkg/logx"
)

// DefaultBranch is the branch every new project repository starts on.
const DefaultBranch = "main"

// Initializer wraps git operations on generated project directories.
type Initializer struct {
	logger  *logx.Logger
	timeout time.Duration
}

// New creates a git initializer with the default command timeout.
func New() *Initializer {
	return &Initializer{
		logger:  logx.NewLogger("git"),
		timeout: 30 * time.Second,
	}
}

// WithTimeout returns an initializer with the given per-command timeout.
func (g *Initializer) WithTimeout(timeout time.Duration) *Initializer {
	return &Initializer{logger: g.logger, timeout: timeout}
}

// Init creates a git repository at path on the default branch. It reports
// alreadyInitialized=true and does nothing when a .git directory exists.
func (g *Initializer) Init(ctx context.Context, path string) (alreadyInitialized bool, err error) {
	if _, statErr := os.Stat(filepath.Join(path, ".git")); statErr == nil {
		g.logger.Debug("repository already initialized: %s", path)
		return true, nil
	}

	if _, err := g.run(ctx, path, "init"); err != nil {
		return false, err
	}
	if _, err := g.run(ctx, path, "branch", "-M", DefaultBranch); err != nil {
		return false, err
	}
	return false, nil
}

// CommitAll stages everything under path and creates a commit.
func (g *Initializer) CommitAll(ctx context.Context, path, message string) error {
	if _, err := g.run(ctx, path, "add", "."); err != nil {
		return err
	}
	if _, err := g.run(ctx, path, "commit", "-m", message); err != nil {
		return err
	}
	return nil
}

// run executes a git command in dir and returns its combined output.
func (g *Initializer) run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	g.logger.Debug("Executing: git %s (in %s)", strings.Join(args, " "), dir)

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git %s failed: %w\nOutput: %s", args[0], err, string(output))
	}
	return output, nil
}
