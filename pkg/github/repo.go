package github

import (
	"context"
	"encoding/json"
	"fmt"
)

// Repository is the subset of repo metadata the pipeline works with.
type Repository struct {
	Name          string   `json:"name"`
	FullName      string   `json:"full_name"`
	Description   string   `json:"description"`
	DefaultBranch string   `json:"default_branch"`
	Private       bool     `json:"private"`
	HTMLURL       string   `json:"html_url"`
	Topics        []string `json:"topics"`
}

// GetRepoInfo retrieves repository metadata, or ErrRepoNotFound when the
// repository has not been created yet.
func (c *Client) GetRepoInfo(ctx context.Context) (*Repository, error) {
	output, err := c.APIGet(ctx, fmt.Sprintf("/repos/%s", c.RepoPath()))
	if err != nil {
		return nil, err
	}

	var repo Repository
	if err := json.Unmarshal(output, &repo); err != nil {
		return nil, fmt.Errorf("failed to parse repository: %w", err)
	}
	return &repo, nil
}

// UpdateDescription sets the repository description.
func (c *Client) UpdateDescription(ctx context.Context, description string) error {
	_, err := c.run(ctx, "repo", "edit", c.RepoPath(), "--description", description)
	if err != nil {
		return fmt.Errorf("failed to update description: %w", err)
	}
	c.logger.Info("Updated description for %s", c.RepoPath())
	return nil
}

// UpdateTopics adds topics to the repository, merging with any already set.
func (c *Client) UpdateTopics(ctx context.Context, topics []string) error {
	args := []string{"repo", "edit", c.RepoPath()}
	for _, topic := range topics {
		args = append(args, "--add-topic", topic)
	}
	if _, err := c.run(ctx, args...); err != nil {
		return fmt.Errorf("failed to update topics: %w", err)
	}
	c.logger.Info("Updated topics for %s (%d topics)", c.RepoPath(), len(topics))
	return nil
}
