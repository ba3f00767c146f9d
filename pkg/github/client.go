// Package github provides the repo-hosting operations the pipeline needs,
// implemented over the gh CLI. All operations are pure API calls that run on
// the host.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"toolforge/pkg/logx"
)

// ErrRepoNotFound indicates the remote repository does not exist yet. The
// pipeline turns this into manual-creation guidance rather than a failure.
var ErrRepoNotFound = errors.New("repository not found")

// Client provides GitHub API operations for a single owner/repo pair.
type Client struct {
	owner   string
	repo    string
	logger  *logx.Logger
	timeout time.Duration
}

// NewClient creates a client bound to the given repository.
func NewClient(owner, repo string) *Client {
	return &Client{
		owner:   owner,
		repo:    repo,
		logger:  logx.NewLogger("github"),
		timeout: 30 * time.Second,
	}
}

// WithTimeout returns a client with the specified per-call timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	return &Client{owner: c.owner, repo: c.repo, logger: c.logger, timeout: timeout}
}

// Owner returns the repository owner.
func (c *Client) Owner() string { return c.owner }

// Repo returns the repository name.
func (c *Client) Repo() string { return c.repo }

// RepoPath returns the owner/repo path.
func (c *Client) RepoPath() string {
	return fmt.Sprintf("%s/%s", c.owner, c.repo)
}

// API executes a GitHub API call and returns the raw response.
func (c *Client) API(ctx context.Context, method, endpoint string, fields map[string]string) ([]byte, error) {
	args := []string{"api", "-X", method, endpoint}
	for key, value := range fields {
		args = append(args, "-f", fmt.Sprintf("%s=%s", key, value))
	}
	return c.run(ctx, args...)
}

// APIGet executes a GET request to the GitHub API.
func (c *Client) APIGet(ctx context.Context, endpoint string) ([]byte, error) {
	return c.API(ctx, "GET", endpoint, nil)
}

// run executes a gh command and returns the output. HTTP 404 responses are
// normalized to ErrRepoNotFound so callers can branch on existence.
func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.Debug("Executing: gh %s", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, "gh", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if isNotFound(string(output)) {
			return nil, fmt.Errorf("%w: %s", ErrRepoNotFound, c.RepoPath())
		}
		c.logger.Debug("Command failed: %v, output: %s", err, string(output))
		return nil, fmt.Errorf("gh command failed: %w\nOutput: %s", err, string(output))
	}
	return output, nil
}

// runJSON executes a gh command and unmarshals the JSON response.
func (c *Client) runJSON(ctx context.Context, result any, args ...string) error {
	output, err := c.run(ctx, args...)
	if err != nil {
		return err
	}
	if len(output) == 0 {
		return nil // empty response is valid for some operations
	}
	if err := json.Unmarshal(output, result); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w\nOutput: %s", err, string(output))
	}
	return nil
}

func isNotFound(output string) bool {
	lower := strings.ToLower(output)
	return strings.Contains(lower, "http 404") ||
		strings.Contains(lower, "not found") ||
		strings.Contains(lower, "could not resolve to a repository")
}

// CheckAuth verifies that the gh CLI is authenticated.
func CheckAuth(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "gh", "auth", "status")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("gh auth check failed: %w\nOutput: %s", err, string(output))
	}
	return nil
}
