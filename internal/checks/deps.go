package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/asadandasad/openrw-editor/internal/harness"
)

// Dependencies probes every toolchain binary and toolkit package from
// the manifest. Every probe is always attempted; a failure never
// short-circuits the remaining entries.
type Dependencies struct{}

func (c *Dependencies) Name() string { return "Dependencies" }

func (c *Dependencies) Run(ctx context.Context, env *harness.Env) harness.Outcome {
	env.Log.Step("Testing dependencies...")

	var missing []string

	for _, tool := range env.Manifest.Tools {
		res := env.Runner.Run(ctx, env.ProjectRoot, tool.Probe)
		if res.Succeeded {
			env.Log.Pass("%s found", tool.Name)
		} else {
			env.Log.Fail("%s not found", tool.Name)
			missing = append(missing, tool.Name)
		}
	}

	for _, pkg := range env.Manifest.ToolkitPackages {
		res := env.Runner.Run(ctx, env.ProjectRoot, "pkg-config --exists "+pkg)
		if res.Succeeded {
			env.Log.Pass("%s found", pkg)
		} else {
			env.Log.Fail("%s not found", pkg)
			missing = append(missing, pkg)
		}
	}

	if len(missing) > 0 {
		return harness.Outcome{
			Check: c.Name(),
			Note:  fmt.Sprintf("missing: %s", strings.Join(missing, ", ")),
		}
	}
	return harness.Outcome{Check: c.Name(), Passed: true}
}
