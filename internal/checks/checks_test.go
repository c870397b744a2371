package checks

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/asadandasad/openrw-editor/internal/diag"
	"github.com/asadandasad/openrw-editor/internal/harness"
	"github.com/asadandasad/openrw-editor/internal/manifest"
	"github.com/asadandasad/openrw-editor/internal/shell"
)

type call struct {
	dir     string
	command string
}

// fakeRunner records invocations and answers them via fn, defaulting to
// success with empty output.
type fakeRunner struct {
	calls []call
	fn    func(dir, command string) shell.Result
}

func (f *fakeRunner) Run(_ context.Context, dir, command string) shell.Result {
	f.calls = append(f.calls, call{dir: dir, command: command})
	if f.fn != nil {
		return f.fn(dir, command)
	}
	return shell.Result{Succeeded: true}
}

func disableColor(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

// newTestEnv builds an Env rooted at a fresh temp dir with the default
// manifest and a sink capturing into the returned buffer.
func newTestEnv(t *testing.T, runner shell.Runner) (*harness.Env, *bytes.Buffer) {
	t.Helper()
	disableColor(t)
	var buf bytes.Buffer
	env := harness.NewEnv(t.TempDir(), manifest.Default(), runner, diag.New(&buf))
	return env, &buf
}

// writeRequiredPaths populates the project root with every path the
// manifest requires.
func writeRequiredPaths(t *testing.T, env *harness.Env) {
	t.Helper()
	for _, rel := range env.Manifest.RequiredPaths {
		path := filepath.Join(env.ProjectRoot, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("// placeholder\n"), 0o644))
	}
}
