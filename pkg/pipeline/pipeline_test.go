package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolforge/pkg/catalog"
	"toolforge/pkg/gate"
	"toolforge/pkg/github"
	"toolforge/pkg/history"
	"toolforge/pkg/pipeline"
)

// fakeGit records init/commit calls and can be told to fail.
type fakeGit struct {
	initCalls   []string
	commitCalls []string
	initErr     error
	already     bool
}

func (f *fakeGit) Init(_ context.Context, path string) (bool, error) {
	f.initCalls = append(f.initCalls, path)
	return f.already, f.initErr
}

func (f *fakeGit) CommitAll(_ context.Context, path, _ string) error {
	f.commitCalls = append(f.commitCalls, path)
	return nil
}

// fakeHosting is a per-repo hosting client with scriptable repo lookup.
type fakeHosting struct {
	owner, repo  string
	getInfoErr   error
	readme       string
	descriptions []string
	topics       [][]string
	readmeWrites []string
}

func (f *fakeHosting) GetRepoInfo(context.Context) (*github.Repository, error) {
	if f.getInfoErr != nil {
		return nil, f.getInfoErr
	}
	return &github.Repository{Name: f.repo, FullName: f.owner + "/" + f.repo}, nil
}

func (f *fakeHosting) UpdateDescription(_ context.Context, d string) error {
	f.descriptions = append(f.descriptions, d)
	return nil
}

func (f *fakeHosting) UpdateTopics(_ context.Context, t []string) error {
	f.topics = append(f.topics, t)
	return nil
}

func (f *fakeHosting) GetReadme(context.Context) (string, error) { return f.readme, nil }

func (f *fakeHosting) UpdateReadme(_ context.Context, content, _ string) error {
	f.readmeWrites = append(f.readmeWrites, content)
	return nil
}

// memRecorder captures every history write in memory.
type memRecorder struct {
	begun    []string
	finished []string
	stages   []stageRecord
}

type stageRecord struct {
	toolID, stage, status string
}

func (m *memRecorder) BeginRun(runID, _ string) error {
	m.begun = append(m.begun, runID)
	return nil
}

func (m *memRecorder) FinishRun(runID string) error {
	m.finished = append(m.finished, runID)
	return nil
}

func (m *memRecorder) RecordStage(_, toolID, stage, status, _ string) error {
	m.stages = append(m.stages, stageRecord{toolID, stage, status})
	return nil
}

// failValidator fails the gate for a chosen set of tool IDs. It relies on
// the generator writing each project under a directory named after the tool.
type failValidator struct {
	failing map[string]bool
}

func (v *failValidator) Check(projectPath string) *gate.Report {
	r := &gate.Report{}
	for id := range v.failing {
		if pathEndsWith(projectPath, id) {
			r.Errorf("injected failure for %s", id)
		}
	}
	return r
}

func pathEndsWith(path, suffix string) bool {
	return len(path) >= len(suffix) && path[len(path)-len(suffix):] == suffix
}

func newOrchestrator(t *testing.T) (*pipeline.Orchestrator, *fakeGit, map[string]*fakeHosting, *memRecorder) {
	t.Helper()

	orch, err := pipeline.New(catalog.Builtin())
	require.NoError(t, err)

	git := &fakeGit{}
	clients := map[string]*fakeHosting{}
	rec := &memRecorder{}

	orch.WithGit(git).
		WithRecorder(rec).
		WithHosting(func(owner, repo string) pipeline.HostingClient {
			c := &fakeHosting{owner: owner, repo: repo, readme: "# " + repo + "\n\nDocs.\n"}
			clients[repo] = c
			return c
		})
	return orch, git, clients, rec
}

func TestRunProcessesWholeCatalog(t *testing.T) {
	orch, git, clients, rec := newOrchestrator(t)

	res, err := orch.Run(context.Background(), pipeline.Options{
		OutputDir: t.TempDir(),
		Owner:     "octocat",
	})
	require.NoError(t, err)

	ids := catalog.Builtin().IDs()
	assert.Equal(t, len(ids), res.Total)
	assert.Equal(t, ids, res.Generated, "generation follows declaration order")
	assert.Equal(t, ids, res.Validated)
	assert.Empty(t, res.FailedValidation)
	assert.Equal(t, ids, res.GitInitialized)
	assert.Equal(t, ids, res.GitHubConfigured)

	assert.Len(t, git.initCalls, len(ids))
	assert.Len(t, git.commitCalls, len(ids))

	for _, id := range ids {
		c, ok := clients[id]
		require.True(t, ok, "hosting client for %s", id)
		require.Len(t, c.descriptions, 1)
		require.Len(t, c.topics, 1)
		def, err := catalog.Builtin().Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, def.Repo.Description, c.descriptions[0])
		assert.Equal(t, def.Repo.Topics, c.topics[0])
		require.Len(t, c.readmeWrites, 1, "badges should be spliced into the fetched README")
		assert.Contains(t, c.readmeWrites[0], "img.shields.io")
	}

	assert.Equal(t, []string{res.RunID}, rec.begun)
	assert.Equal(t, []string{res.RunID}, rec.finished)
}

func TestValidationFailureIsolatesTheTool(t *testing.T) {
	orch, _, clients, rec := newOrchestrator(t)
	orch.WithValidator(&failValidator{failing: map[string]bool{"email-response-generator": true}})

	res, err := orch.Run(context.Background(), pipeline.Options{
		OutputDir: t.TempDir(),
		Owner:     "octocat",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"email-response-generator"}, res.FailedValidation)
	assert.NotContains(t, res.Validated, "email-response-generator")
	assert.NotContains(t, res.GitInitialized, "email-response-generator")
	assert.NotContains(t, res.GitHubConfigured, "email-response-generator")
	_, configured := clients["email-response-generator"]
	assert.False(t, configured, "publish steps must not run for a failed tool")

	// Every other tool still completes the full pipeline.
	assert.Len(t, res.Validated, res.Total-1)
	assert.Len(t, res.GitHubConfigured, res.Total-1)

	// The failure is persisted against the right stage.
	found := false
	for _, s := range rec.stages {
		if s.toolID == "email-response-generator" && s.stage == history.StageValidate {
			assert.Equal(t, history.StatusFailed, s.status)
			found = true
		}
	}
	assert.True(t, found, "expected a failed validate stage record")
}

func TestSkipValidationMarksEveryToolValidated(t *testing.T) {
	orch, _, _, rec := newOrchestrator(t)
	// A validator that would fail everything proves the skip is honored.
	orch.WithValidator(&failValidator{failing: allIDs()})

	res, err := orch.Run(context.Background(), pipeline.Options{
		OutputDir:      t.TempDir(),
		SkipValidation: true,
		SkipGit:        true,
		SkipGitHub:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, catalog.Builtin().IDs(), res.Generated)
	assert.Equal(t, catalog.Builtin().IDs(), res.Validated)
	assert.Empty(t, res.FailedValidation)
	assert.Empty(t, res.GitInitialized)
	assert.Empty(t, res.GitHubConfigured)

	for _, s := range rec.stages {
		if s.stage == history.StageValidate {
			assert.Equal(t, history.StatusSkipped, s.status)
		}
	}
}

func TestMissingRepoIsGuidanceNotFailure(t *testing.T) {
	orch, _, _, _ := newOrchestrator(t)
	orch.WithHosting(func(owner, repo string) pipeline.HostingClient {
		return &fakeHosting{
			owner: owner, repo: repo,
			getInfoErr: fmt.Errorf("gh api: %w", github.ErrRepoNotFound),
		}
	})

	res, err := orch.Run(context.Background(), pipeline.Options{
		OutputDir: t.TempDir(),
		Owner:     "octocat",
	})
	require.NoError(t, err, "a missing remote repo must not abort the run")

	assert.Empty(t, res.GitHubConfigured)
	assert.Len(t, res.Validated, res.Total, "local stages are unaffected")
	assert.Len(t, res.GitInitialized, res.Total)
}

func TestGitFailureDoesNotBlockHosting(t *testing.T) {
	orch, git, clients, _ := newOrchestrator(t)
	git.initErr = errors.New("git: exec format error")

	res, err := orch.Run(context.Background(), pipeline.Options{
		OutputDir: t.TempDir(),
		Owner:     "octocat",
	})
	require.NoError(t, err)

	assert.Empty(t, res.GitInitialized)
	assert.Len(t, res.GitHubConfigured, res.Total,
		"hosting configuration proceeds even when local git fails")
	assert.Len(t, clients, res.Total)
}

func TestEmptyOwnerSkipsHosting(t *testing.T) {
	orch, _, clients, _ := newOrchestrator(t)

	res, err := orch.Run(context.Background(), pipeline.Options{
		OutputDir: t.TempDir(),
		SkipGit:   true,
	})
	require.NoError(t, err)

	assert.Empty(t, res.GitHubConfigured)
	assert.Empty(t, clients)
}

func TestAlreadyInitializedRepoSkipsCommit(t *testing.T) {
	orch, git, _, _ := newOrchestrator(t)
	git.already = true

	res, err := orch.Run(context.Background(), pipeline.Options{
		OutputDir:  t.TempDir(),
		SkipGitHub: true,
	})
	require.NoError(t, err)

	assert.Len(t, res.GitInitialized, res.Total)
	assert.Empty(t, git.commitCalls, "no commit when the repository already exists")
}

func allIDs() map[string]bool {
	out := map[string]bool{}
	for _, id := range catalog.Builtin().IDs() {
		out[id] = true
	}
	return out
}
