package checks

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/asadandasad/openrw-editor/internal/harness"
)

// Liveness markers accepted by the smoke test.
const (
	usageMarker   = "Usage"
	toolkitMarker = "Qt"
)

// Smoke is a minimal liveness probe on the built executable. A Qt
// application may not implement --help at all, so the check also accepts
// a usage string on stdout or toolkit output on stderr as evidence the
// binary started instead of crashing.
//
// This is a known-weak probe: it cannot distinguish "started correctly"
// from "crashed in a toolkit-recognizable way".
type Smoke struct{}

func (c *Smoke) Name() string { return "Executable Basic" }

func (c *Smoke) Run(ctx context.Context, env *harness.Env) harness.Outcome {
	env.Log.Step("Testing executable basic functionality...")

	exe := filepath.Join(env.BuildDir, env.Manifest.Executable)
	if _, err := os.Stat(exe); err != nil {
		env.Log.Fail("Executable not found")
		return harness.Outcome{Check: c.Name(), Note: "executable missing, smoke test not attempted"}
	}

	res := env.Runner.Run(ctx, env.ProjectRoot, exe+" --help")
	if res.Succeeded || strings.Contains(res.Stdout, usageMarker) || strings.Contains(res.Stderr, toolkitMarker) {
		env.Log.Pass("Executable runs without immediate crash")
		return harness.Outcome{Check: c.Name(), Passed: true}
	}

	env.Log.Fail("Executable failed to run")
	env.Log.Detail("Error: %s", strings.TrimSpace(res.Stderr))
	return harness.Outcome{Check: c.Name(), Note: "executable failed to start"}
}
