package checks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/asadandasad/openrw-editor/internal/harness"
)

const configureCommand = "cmake .. -DCMAKE_BUILD_TYPE=Debug -DCMAKE_EXPORT_COMPILE_COMMANDS=ON"

// configureArtifacts must all exist in the build directory after a
// successful configure run.
var configureArtifacts = []string{
	"CMakeCache.txt",
	"Makefile",
	"compile_commands.json",
}

// Configure wipes the build directory, recreates it, and runs the CMake
// configure step with compilation-database export enabled.
//
// The wipe is intentional: the harness owns the build directory and
// every run starts from a clean slate, at the cost of losing any
// incremental build state.
type Configure struct{}

func (c *Configure) Name() string { return "CMake Configuration" }

func (c *Configure) Run(ctx context.Context, env *harness.Env) harness.Outcome {
	env.Log.Step("Testing CMake configuration...")

	if err := os.RemoveAll(env.BuildDir); err != nil {
		env.Log.Fail("could not clean build directory: %v", err)
		return harness.Outcome{Check: c.Name(), Note: fmt.Sprintf("cleaning build directory: %v", err)}
	}
	if err := os.MkdirAll(env.BuildDir, 0755); err != nil {
		env.Log.Fail("could not create build directory: %v", err)
		return harness.Outcome{Check: c.Name(), Note: fmt.Sprintf("creating build directory: %v", err)}
	}

	res := env.Runner.Run(ctx, env.BuildDir, configureCommand)
	if !res.Succeeded {
		env.Log.Fail("CMake configuration failed")
		env.Log.Detail("Error: %s", strings.TrimSpace(res.Stderr))
		return harness.Outcome{Check: c.Name(), Note: "cmake configure failed"}
	}
	env.Log.Pass("CMake configuration successful")

	var missing []string
	for _, name := range configureArtifacts {
		if _, err := os.Stat(filepath.Join(env.BuildDir, name)); err == nil {
			env.Log.Pass("%s generated", name)
		} else {
			env.Log.Fail("%s missing", name)
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return harness.Outcome{
			Check: c.Name(),
			Note:  fmt.Sprintf("configure artifacts missing: %s", strings.Join(missing, ", ")),
		}
	}
	return harness.Outcome{Check: c.Name(), Passed: true}
}
