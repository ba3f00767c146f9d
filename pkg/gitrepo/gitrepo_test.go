package gitrepo_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolforge/pkg/gitrepo"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
	// Identity so commits work on hosts without global git config.
	t.Setenv("GIT_AUTHOR_NAME", "toolforge-test")
	t.Setenv("GIT_AUTHOR_EMAIL", "toolforge-test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "toolforge-test")
	t.Setenv("GIT_COMMITTER_EMAIL", "toolforge-test@example.com")
}

func TestInitCreatesRepositoryOnMain(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()

	already, err := gitrepo.New().Init(context.Background(), dir)
	require.NoError(t, err)
	assert.False(t, already)

	info, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	out, err := exec.Command("git", "-C", dir, "symbolic-ref", "HEAD").Output()
	require.NoError(t, err)
	assert.Equal(t, "refs/heads/"+gitrepo.DefaultBranch, strings.TrimSpace(string(out)))
}

func TestInitIsIdempotent(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	g := gitrepo.New()

	_, err := g.Init(context.Background(), dir)
	require.NoError(t, err)

	already, err := g.Init(context.Background(), dir)
	require.NoError(t, err)
	assert.True(t, already, "second init reports the existing repository")
}

func TestCommitAll(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	g := gitrepo.New()

	_, err := g.Init(context.Background(), dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Tool\n"), 0o644))

	require.NoError(t, g.CommitAll(context.Background(), dir, "Initial commit: tool"))

	out, err := exec.Command("git", "-C", dir, "log", "--format=%s", "-1").Output()
	require.NoError(t, err)
	assert.Equal(t, "Initial commit: tool", strings.TrimSpace(string(out)))
}

func TestCommitAllWithoutRepositoryFails(t *testing.T) {
	requireGit(t)

	err := gitrepo.New().CommitAll(context.Background(), t.TempDir(), "msg")
	assert.Error(t, err)
}
