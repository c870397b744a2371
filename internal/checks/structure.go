package checks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/asadandasad/openrw-editor/internal/harness"
)

// FileStructure verifies that every required project path exists under
// the project root. Pure filesystem probes, no subprocesses.
type FileStructure struct{}

func (c *FileStructure) Name() string { return "File Structure" }

func (c *FileStructure) Run(ctx context.Context, env *harness.Env) harness.Outcome {
	env.Log.Step("Testing project file structure...")

	var missing []string
	for _, rel := range env.Manifest.RequiredPaths {
		if _, err := os.Stat(filepath.Join(env.ProjectRoot, rel)); err == nil {
			env.Log.Pass("%s", rel)
		} else {
			env.Log.Fail("%s missing", rel)
			missing = append(missing, rel)
		}
	}

	if len(missing) > 0 {
		return harness.Outcome{
			Check: c.Name(),
			Note:  fmt.Sprintf("%d required paths missing: %s", len(missing), strings.Join(missing, ", ")),
		}
	}
	return harness.Outcome{Check: c.Name(), Passed: true}
}
