// Command toolforge scaffolds AI micro-tool projects, validates them against
// the publishing quality gate, and configures their GitHub repositories.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"toolforge/pkg/catalog"
	"toolforge/pkg/config"
	"toolforge/pkg/gate"
	"toolforge/pkg/generator"
	"toolforge/pkg/github"
	"toolforge/pkg/history"
	"toolforge/pkg/logx"
	"toolforge/pkg/pipeline"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cat := catalog.Builtin()

	var err error
	switch os.Args[1] {
	case "list":
		err = runList(cat)
	case "create":
		err = runCreate(cat, os.Args[2:])
	case "create-all":
		err = runCreateAll(cat, os.Args[2:])
	case "check":
		err = runCheck(os.Args[2:])
	case "publish":
		err = runPublish(cat, os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `toolforge - scaffold and publish AI micro-tool projects

Usage:
  toolforge list                       List available tools
  toolforge create <tool-id> [flags]   Generate one tool project
  toolforge create-all [flags]         Generate every tool project
  toolforge check <path> [flags]       Run the quality gate on a project
  toolforge publish [flags]            Generate, validate, and publish all tools

Flags for create/create-all:
  -o, --output   Output directory (default: current directory / ai-tools)

Flags for check:
  --json         Emit a machine-readable report

Flags for publish:
  -o, --output        Output directory
  --owner             GitHub account that owns the published repos
  --skip-validation   Skip the quality gate
  --skip-git          Skip git initialization
  --skip-github       Skip GitHub repository configuration
`)
}

func runList(cat *catalog.Catalog) error {
	fmt.Println("\nAvailable AI tools:")
	fmt.Println()
	for _, tool := range cat.All() {
		fmt.Printf("  %-30s - %s\n", tool.ID, tool.Name)
	}
	fmt.Println()
	return nil
}

func runCreate(cat *catalog.Catalog, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	output := fs.String("output", ".", "Output directory for the generated tool")
	fs.StringVar(output, "o", ".", "Output directory (shorthand)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: toolforge create <tool-id> [-o dir]")
	}
	toolID := fs.Arg(0)

	gen, err := generator.New(cat)
	if err != nil {
		return err
	}

	path, err := gen.Generate(toolID, *output)
	if err != nil {
		return err
	}

	tool, _ := cat.Lookup(toolID)
	fmt.Printf("\nCreated %q in %s\n", tool.Name, path)
	fmt.Println("\nNext steps:")
	fmt.Printf("  1. cd %s\n", path)
	fmt.Println("  2. cp .env.example .env")
	fmt.Printf("  3. Add your %s to .env\n", gate.RequiredEnvVar)
	fmt.Println("  4. npm install")
	fmt.Println("  5. npm run dev")
	return nil
}

func runCreateAll(cat *catalog.Catalog, args []string) error {
	fs := flag.NewFlagSet("create-all", flag.ExitOnError)
	output := fs.String("output", "./ai-tools", "Output directory for all tools")
	fs.StringVar(output, "o", "./ai-tools", "Output directory (shorthand)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	gen, err := generator.New(cat)
	if err != nil {
		return err
	}

	fmt.Printf("\nCreating %d tools in %s...\n\n", cat.Len(), *output)
	failed := 0
	for _, id := range cat.IDs() {
		if _, err := gen.Generate(id, *output); err != nil {
			fmt.Printf("  %-30s FAILED: %v\n", id, err)
			failed++
			continue
		}
		fmt.Printf("  %-30s ok\n", id)
	}
	fmt.Println()
	if failed > 0 {
		return fmt.Errorf("%d of %d tools failed to generate", failed, cat.Len())
	}
	fmt.Printf("All tools created in %s\n", *output)
	return nil
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	asJSON := fs.Bool("json", false, "Output as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: toolforge check <project-path> [--json]")
	}
	projectPath := fs.Arg(0)

	report := gate.New().Check(projectPath)

	if *asJSON {
		doc := gate.NewDocument(report)
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		out := gate.RenderText(filepath.Base(projectPath), report)
		if term.IsTerminal(int(os.Stdout.Fd())) {
			out = strings.ReplaceAll(out, "Status: PASSED", "Status: \x1b[32mPASSED\x1b[0m")
			out = strings.ReplaceAll(out, "Status: FAILED", "Status: \x1b[31mFAILED\x1b[0m")
		}
		fmt.Print(out)
	}

	if !report.Valid() {
		os.Exit(1)
	}
	return nil
}

func runPublish(cat *catalog.Catalog, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Discover(cwd)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("publish", flag.ExitOnError)
	output := fs.String("output", cfg.OutputDir, "Output directory for generated tools")
	fs.StringVar(output, "o", cfg.OutputDir, "Output directory (shorthand)")
	owner := fs.String("owner", cfg.GitHub.Owner, "GitHub account owning the published repos")
	skipValidation := fs.Bool("skip-validation", cfg.Skip.Validation, "Skip quality validation")
	skipGit := fs.Bool("skip-git", cfg.Skip.Git, "Skip git initialization")
	skipGitHub := fs.Bool("skip-github", cfg.Skip.GitHub, "Skip GitHub repo configuration")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := logx.NewLogger("toolforge")
	ctx := context.Background()

	if !*skipGitHub {
		switch {
		case *owner == "":
			logger.Warn("no GitHub owner configured (set --owner or GITHUB_USERNAME); skipping GitHub configuration")
			*skipGitHub = true
		case github.CheckAuth(ctx) != nil:
			logger.Warn("gh CLI is not authenticated; skipping GitHub configuration")
			*skipGitHub = true
		}
	}

	orch, err := pipeline.New(cat)
	if err != nil {
		return err
	}

	if cfg.HistoryDB != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.HistoryDB), 0o755); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
		store, err := history.Open(cfg.HistoryDB)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		orch.WithRecorder(store)
	}

	result, err := orch.Run(ctx, pipeline.Options{
		OutputDir:      *output,
		Owner:          *owner,
		SkipValidation: *skipValidation,
		SkipGit:        *skipGit,
		SkipGitHub:     *skipGitHub,
	})
	if err != nil {
		return err
	}

	fmt.Print(result.Summary())
	return nil
}
