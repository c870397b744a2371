// Package harness contains the verification pipeline: the check
// contract, the orchestrator that runs checks in a fixed order, and the
// report aggregation over their outcomes.
package harness

import (
	"context"
	"path/filepath"

	"github.com/asadandasad/openrw-editor/internal/diag"
	"github.com/asadandasad/openrw-editor/internal/manifest"
	"github.com/asadandasad/openrw-editor/internal/shell"
)

// Env contains everything a check may consume. It is constructed once by
// the caller and read-only thereafter; no check mutates another's view.
type Env struct {
	// ProjectRoot is the absolute path to the project tree under test.
	ProjectRoot string
	// BuildDir is the absolute path to the harness-owned build output
	// directory. The configure check destroys and recreates it.
	BuildDir string
	// Manifest carries the required-path, tool and package tables.
	Manifest *manifest.Manifest
	// Runner executes external commands on behalf of checks.
	Runner shell.Runner
	// Log receives per-probe progress lines.
	Log *diag.Sink
}

// NewEnv builds an Env for the given project root. BuildDir is resolved
// against the root using the manifest's relative build directory.
func NewEnv(projectRoot string, m *manifest.Manifest, runner shell.Runner, log *diag.Sink) *Env {
	return &Env{
		ProjectRoot: projectRoot,
		BuildDir:    filepath.Join(projectRoot, m.BuildDir),
		Manifest:    m,
		Runner:      runner,
		Log:         log,
	}
}

// Check is one independent verification step yielding exactly one
// pass/fail outcome.
type Check interface {
	// Name returns the display name used in progress lines, the report
	// table and persisted state.
	Name() string

	// Run executes the check. It must not panic across this boundary;
	// the pipeline still guards against it.
	Run(ctx context.Context, env *Env) Outcome
}
