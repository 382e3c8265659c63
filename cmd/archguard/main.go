// Command archguard is a thin CLI entry point around the project/engine
// packages: it loads .archguard.yml defaults, discovers the Rust package
// or workspace rooted at the given path, runs the built-in
// no-circular-dependencies project rule, and reports violations.
// User-defined module rules are expressed in Go code against
// pkg/arkitect, not through this CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/archguard/archguard/internal/config"
	"github.com/archguard/archguard/internal/engine"
	"github.com/archguard/archguard/internal/output"
	"github.com/archguard/archguard/internal/project"
	"github.com/archguard/archguard/internal/rules"
	"github.com/archguard/archguard/internal/tui"
)

// Version is set during build via ldflags.
var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("archguard", flag.ContinueOnError)
	formatFlag := fs.String("format", "text", "Output format: text, json, junit")
	maxDepthFlag := fs.Int("max-depth", 2, "Logical path segments to compare when detecting cycles")
	uiFlag := fs.Bool("ui", false, "Browse violations interactively")
	versionFlag := fs.Bool("version", false, "Show version information")
	versionFlagShort := fs.Bool("v", false, "Show version information (shorthand)")
	helpFlag := fs.Bool("help", false, "Show help message")
	helpFlagShort := fs.Bool("h", false, "Show help message (shorthand)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	path := "."
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}

	if *versionFlag || *versionFlagShort {
		fmt.Printf("archguard version %s\n", Version)
		return nil
	}

	if *helpFlag || *helpFlagShort {
		printHelp()
		return nil
	}

	cfg, err := config.LoadWithGitignore(config.Path(path), path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	p, err := loadProject(path, project.ScanOptions{
		Exclude:   cfg.Exclude,
		Extension: cfg.ResolvedSourceExtension(),
	})
	if err != nil {
		return fmt.Errorf("failed to discover project: %w", err)
	}

	moduleRules := []rules.Rule{}
	projectRules := []rules.ProjectRule{&rules.NoCircularDependencies{MaxDepth: *maxDepthFlag}}
	violations := engine.New(p, moduleRules, projectRules).Run()

	if *uiFlag {
		_, err := tea.NewProgram(tui.NewModel(violations)).Run()
		return err
	}

	formatter, err := output.GetFormatter(*formatFlag, Version)
	if err != nil {
		return err
	}

	formatted, err := formatter.Format(violations)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Print(formatted)

	if len(violations) > cfg.Baseline {
		if *formatFlag == "text" || *formatFlag == "" {
			fmt.Fprintf(os.Stderr, "Error: found %d violation(s), baseline is %d\n", len(violations), cfg.Baseline)
		}
		os.Exit(1)
	}

	if *formatFlag == "text" || *formatFlag == "" {
		fmt.Println("All checks passed")
	}

	return nil
}

// loadProject detects whether path is a workspace root or a single
// package root and scans accordingly.
func loadProject(path string, opts project.ScanOptions) (*project.Project, error) {
	if p, err := project.FromWorkspaceManifestDirWithOptions(path, opts); err == nil {
		return p, nil
	}
	return project.FromPackageManifestDirWithOptions(path, opts)
}

func printHelp() {
	fmt.Println(`archguard - architectural conformance checker

Usage:
  archguard [options] [path]    Check the project at path (default: current directory)
  archguard --version           Show version information
  archguard --help              Show this help message

Options:
  -v, --version          Show version information
  -h, --help              Show help message
      --format <format>  Output format: text, json, junit (default: text)
      --max-depth <n>     Logical path segments compared when detecting cycles (default: 2)
      --ui                Browse violations interactively

Configuration:
  archguard looks for .archguard.yml in the project root for a default
  violation baseline, source extension, and exclude patterns.

Examples:
  archguard                     Check current directory
  archguard --format json .     Output violations as JSON
  archguard --ui .               Browse violations interactively
  archguard /path/to/project    Check a specific directory

Module-scoped rules (may/must-not depend on) are defined in Go code with
pkg/arkitect, not through this CLI.`)
}
