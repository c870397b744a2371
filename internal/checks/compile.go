package checks

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/asadandasad/openrw-editor/internal/harness"
)

const compileCommand = "make -j$(nproc)"

// Compile invokes the build driver with maximum parallelism inside the
// build directory and verifies the editor binary exists afterwards.
// Parallelism is delegated entirely to make; the harness itself stays
// sequential.
type Compile struct{}

func (c *Compile) Name() string { return "Compilation" }

func (c *Compile) Run(ctx context.Context, env *harness.Env) harness.Outcome {
	env.Log.Step("Testing compilation...")

	res := env.Runner.Run(ctx, env.BuildDir, compileCommand)
	if !res.Succeeded {
		env.Log.Fail("Compilation failed")
		env.Log.Detail("Error: %s", strings.TrimSpace(res.Stderr))
		return harness.Outcome{Check: c.Name(), Note: "build driver failed"}
	}
	env.Log.Pass("Compilation successful")

	exe := filepath.Join(env.BuildDir, env.Manifest.Executable)
	if _, err := os.Stat(exe); err != nil {
		env.Log.Fail("Executable not found")
		return harness.Outcome{Check: c.Name(), Note: "executable not created: " + env.Manifest.Executable}
	}
	env.Log.Pass("Executable created")

	return harness.Outcome{Check: c.Name(), Passed: true}
}
