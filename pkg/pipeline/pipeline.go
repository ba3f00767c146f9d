// Package pipeline drives the generate → validate → publish flow across the
// whole catalog. Tools are processed strictly sequentially in declaration
// order; one tool's failure is recorded and never blocks the others.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"toolforge/pkg/catalog"
	"toolforge/pkg/gate"
	"toolforge/pkg/generator"
	"toolforge/pkg/github"
	"toolforge/pkg/gitrepo"
	"toolforge/pkg/history"
	"toolforge/pkg/logx"
)

// GitInitializer is the version-control collaborator.
type GitInitializer interface {
	Init(ctx context.Context, path string) (alreadyInitialized bool, err error)
	CommitAll(ctx context.Context, path, message string) error
}

// HostingClient is the repo-hosting collaborator, bound to one repository.
type HostingClient interface {
	GetRepoInfo(ctx context.Context) (*github.Repository, error)
	UpdateDescription(ctx context.Context, description string) error
	UpdateTopics(ctx context.Context, topics []string) error
	GetReadme(ctx context.Context) (string, error)
	UpdateReadme(ctx context.Context, content, message string) error
}

// HostingFactory builds a hosting client for one owner/repo pair.
type HostingFactory func(owner, repo string) HostingClient

// Validator runs the quality gate against a generated project tree.
type Validator interface {
	Check(projectPath string) *gate.Report
}

// Recorder persists per-tool stage outcomes. A nil recorder disables history.
type Recorder interface {
	BeginRun(runID, outputDir string) error
	FinishRun(runID string) error
	RecordStage(runID, toolID, stage, status, detail string) error
}

// Options configures one pipeline run.
type Options struct {
	OutputDir      string
	Owner          string
	SkipValidation bool
	SkipGit        bool
	SkipGitHub     bool
}

// Result aggregates one run's outcomes. The slices are ordered sets in
// catalog declaration order; a tool appears at most once per set.
type Result struct {
	RunID            string
	Total            int
	Generated        []string
	Validated        []string
	FailedValidation []string
	GitInitialized   []string
	GitHubConfigured []string
}

// Orchestrator wires the catalog, generator, gate, and external
// collaborators into the publishing pipeline.
type Orchestrator struct {
	catalog   *catalog.Catalog
	generator *generator.Generator
	gate      Validator
	git       GitInitializer
	hosting   HostingFactory
	recorder  Recorder
	logger    *logx.Logger
}

// New builds an orchestrator with the default collaborators.
func New(c *catalog.Catalog) (*Orchestrator, error) {
	gen, err := generator.New(c)
	if err != nil {
		return nil, err
	}
	return &Orchestrator{
		catalog:   c,
		generator: gen,
		gate:      gate.New(),
		git:       gitrepo.New(),
		hosting: func(owner, repo string) HostingClient {
			return github.NewClient(owner, repo)
		},
		logger: logx.NewLogger("pipeline"),
	}, nil
}

// WithValidator replaces the quality gate implementation.
func (o *Orchestrator) WithValidator(v Validator) *Orchestrator {
	o.gate = v
	return o
}

// WithGit replaces the version-control collaborator.
func (o *Orchestrator) WithGit(g GitInitializer) *Orchestrator {
	o.git = g
	return o
}

// WithHosting replaces the hosting client factory.
func (o *Orchestrator) WithHosting(f HostingFactory) *Orchestrator {
	o.hosting = f
	return o
}

// WithRecorder attaches a run-history recorder.
func (o *Orchestrator) WithRecorder(r Recorder) *Orchestrator {
	o.recorder = r
	return o
}

// Run processes every catalog entry in declaration order and returns the
// aggregated result. Per-tool failures are recorded, never propagated.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (*Result, error) {
	res := &Result{
		RunID: uuid.NewString(),
		Total: o.catalog.Len(),
	}

	o.logger.Info("starting run %s: %d tools into %s", res.RunID, res.Total, opts.OutputDir)
	o.record(func(r Recorder) error { return r.BeginRun(res.RunID, opts.OutputDir) })

	for _, tool := range o.catalog.All() {
		o.processTool(ctx, &tool, opts, res)
	}

	o.record(func(r Recorder) error { return r.FinishRun(res.RunID) })
	return res, nil
}

func (o *Orchestrator) processTool(ctx context.Context, tool *catalog.ToolDefinition, opts Options, res *Result) {
	projectPath, err := o.generator.Generate(tool.ID, opts.OutputDir)
	if err != nil {
		o.logger.Error("failed to generate %s: %v", tool.ID, err)
		o.recordStage(res.RunID, tool.ID, history.StageGenerate, history.StatusFailed, err.Error())
		return
	}
	res.Generated = append(res.Generated, tool.ID)
	o.recordStage(res.RunID, tool.ID, history.StageGenerate, history.StatusOK, projectPath)

	if opts.SkipValidation {
		res.Validated = append(res.Validated, tool.ID)
		o.recordStage(res.RunID, tool.ID, history.StageValidate, history.StatusSkipped, "")
	} else {
		report := o.gate.Check(projectPath)
		if !report.Valid() {
			res.FailedValidation = append(res.FailedValidation, tool.ID)
			o.logger.Warn("quality check failed for %s: %d errors, skipping publish steps",
				tool.ID, len(report.Errors()))
			o.recordStage(res.RunID, tool.ID, history.StageValidate, history.StatusFailed,
				strings.Join(report.Errors(), "; "))
			return
		}
		res.Validated = append(res.Validated, tool.ID)
		o.recordStage(res.RunID, tool.ID, history.StageValidate, history.StatusOK, "")
	}

	if !opts.SkipGit {
		if o.initializeGit(ctx, tool, projectPath) {
			res.GitInitialized = append(res.GitInitialized, tool.ID)
			o.recordStage(res.RunID, tool.ID, history.StageGit, history.StatusOK, "")
		} else {
			o.recordStage(res.RunID, tool.ID, history.StageGit, history.StatusFailed, "")
		}
	}

	if !opts.SkipGitHub && opts.Owner != "" {
		if o.configureHosting(ctx, tool, opts.Owner) {
			res.GitHubConfigured = append(res.GitHubConfigured, tool.ID)
			o.recordStage(res.RunID, tool.ID, history.StageGitHub, history.StatusOK, "")
		} else {
			o.recordStage(res.RunID, tool.ID, history.StageGitHub, history.StatusFailed, "")
		}
	}
}

// initializeGit creates the project repository and its initial commit.
func (o *Orchestrator) initializeGit(ctx context.Context, tool *catalog.ToolDefinition, projectPath string) bool {
	already, err := o.git.Init(ctx, projectPath)
	if err != nil {
		o.logger.Error("failed to initialize git for %s: %v", tool.ID, err)
		return false
	}
	if already {
		o.logger.Info("git repository already exists for %s", tool.ID)
		return true
	}

	message := fmt.Sprintf("Initial commit: %s\n\n- Generated with toolforge\n- React + Vite + Tailwind setup\n- Claude API integration", tool.ID)
	if err := o.git.CommitAll(ctx, projectPath, message); err != nil {
		o.logger.Error("failed to commit %s: %v", tool.ID, err)
		return false
	}
	o.logger.Info("git repository initialized for %s", tool.ID)
	return true
}

// configureHosting updates an existing GitHub repository's description,
// topics, and README badges. A missing repository is reported as guidance,
// not a failure of the run.
func (o *Orchestrator) configureHosting(ctx context.Context, tool *catalog.ToolDefinition, owner string) bool {
	client := o.hosting(owner, tool.ID)

	if _, err := client.GetRepoInfo(ctx); err != nil {
		if errors.Is(err, github.ErrRepoNotFound) {
			o.logger.Warn("repository %s/%s does not exist; create it manually at https://github.com/new and re-run", owner, tool.ID)
			return false
		}
		o.logger.Error("failed to fetch repository %s/%s: %v", owner, tool.ID, err)
		return false
	}

	if err := client.UpdateDescription(ctx, tool.Repo.Description); err != nil {
		o.logger.Error("failed to update description for %s: %v", tool.ID, err)
		return false
	}
	if err := client.UpdateTopics(ctx, tool.Repo.Topics); err != nil {
		o.logger.Error("failed to update topics for %s: %v", tool.ID, err)
		return false
	}

	readme, err := client.GetReadme(ctx)
	if err != nil {
		o.logger.Error("failed to fetch README for %s: %v", tool.ID, err)
		return false
	}
	if readme != "" {
		updated := github.SpliceBadges(readme, github.Badges(owner, tool.ID))
		if updated != readme {
			if err := client.UpdateReadme(ctx, updated, "Add badges"); err != nil {
				o.logger.Error("failed to update README for %s: %v", tool.ID, err)
				return false
			}
		}
	}
	return true
}

// record runs fn against the recorder when one is attached. History failures
// degrade to warnings; they never affect pipeline outcomes.
func (o *Orchestrator) record(fn func(Recorder) error) {
	if o.recorder == nil {
		return
	}
	if err := fn(o.recorder); err != nil {
		o.logger.Warn("run history write failed: %v", err)
	}
}

func (o *Orchestrator) recordStage(runID, toolID, stage, status, detail string) {
	o.record(func(r Recorder) error { return r.RecordStage(runID, toolID, stage, status, detail) })
}
