package github

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// readmeContent is the contents-API response for the repository README.
type readmeContent struct {
	SHA     string `json:"sha"`
	Content string `json:"content"`
	Path    string `json:"path"`
}

// GetReadme fetches the decoded README content from the default branch.
// Returns an empty string when the repository has no README.
func (c *Client) GetReadme(ctx context.Context) (string, error) {
	var rc readmeContent
	err := c.runJSON(ctx, &rc, "api", fmt.Sprintf("/repos/%s/readme", c.RepoPath()))
	if err != nil {
		if errors.Is(err, ErrRepoNotFound) {
			return "", nil
		}
		return "", err
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(rc.Content, "\n", ""))
	if err != nil {
		return "", fmt.Errorf("failed to decode README content: %w", err)
	}
	return string(decoded), nil
}

// UpdateReadme replaces the repository README with content.
func (c *Client) UpdateReadme(ctx context.Context, content, message string) error {
	var rc readmeContent
	if err := c.runJSON(ctx, &rc, "api", fmt.Sprintf("/repos/%s/readme", c.RepoPath())); err != nil {
		return err
	}

	fields := map[string]string{
		"message": message,
		"content": base64.StdEncoding.EncodeToString([]byte(content)),
		"sha":     rc.SHA,
	}
	endpoint := fmt.Sprintf("/repos/%s/contents/%s", c.RepoPath(), rc.Path)
	if _, err := c.API(ctx, "PUT", endpoint, fields); err != nil {
		return fmt.Errorf("failed to update README: %w", err)
	}
	c.logger.Info("Updated README for %s", c.RepoPath())
	return nil
}

// Badges returns the badge markdown line for a tool repository.
func Badges(owner, repo string) string {
	badges := []string{
		fmt.Sprintf("![License](https://img.shields.io/github/license/%s/%s)", owner, repo),
		fmt.Sprintf("![Stars](https://img.shields.io/github/stars/%s/%s)", owner, repo),
		"![React](https://img.shields.io/badge/React-18-blue)",
		"![Vite](https://img.shields.io/badge/Vite-5-purple)",
		"![Claude](https://img.shields.io/badge/Claude-API-orange)",
	}
	return strings.Join(badges, " ")
}

// SpliceBadges inserts the badge line directly after the first top-level
// heading. The README is returned unchanged when badges are already present
// or no heading exists to anchor on.
func SpliceBadges(readme, badges string) string {
	if strings.Contains(readme, "img.shields.io") {
		return readme
	}

	lines := strings.Split(readme, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "# ") {
			updated := make([]string, 0, len(lines)+2)
			updated = append(updated, lines[:i+1]...)
			updated = append(updated, "", badges)
			updated = append(updated, lines[i+1:]...)
			return strings.Join(updated, "\n")
		}
	}
	return readme
}
