package checks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asadandasad/openrw-editor/internal/shell"
)

// fabricateArtifacts mimics a successful cmake run by writing the
// expected generated files into the build directory.
func fabricateArtifacts(names ...string) func(dir, command string) shell.Result {
	return func(dir, command string) shell.Result {
		for _, name := range names {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("generated\n"), 0o644); err != nil {
				return shell.Result{Succeeded: false, Stderr: err.Error()}
			}
		}
		return shell.Result{Succeeded: true}
	}
}

func TestConfigureWipesPreexistingBuildDir(t *testing.T) {
	runner := &fakeRunner{fn: fabricateArtifacts(configureArtifacts...)}
	env, _ := newTestEnv(t, runner)

	stale := filepath.Join(env.BuildDir, "stale.o")
	require.NoError(t, os.MkdirAll(env.BuildDir, 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	o := (&Configure{}).Run(context.Background(), env)

	assert.True(t, o.Passed)
	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale build artifacts must be wiped")

	// only the fresh configure artifacts remain
	entries, err := os.ReadDir(env.BuildDir)
	require.NoError(t, err)
	assert.Len(t, entries, len(configureArtifacts))

	require.Len(t, runner.calls, 1)
	assert.Equal(t, env.BuildDir, runner.calls[0].dir)
	assert.Equal(t, configureCommand, runner.calls[0].command)
}

func TestConfigureFailsWhenCMakeFails(t *testing.T) {
	runner := &fakeRunner{fn: func(dir, command string) shell.Result {
		return shell.Result{Succeeded: false, Stderr: "CMake Error: missing CMakeLists.txt"}
	}}
	env, out := newTestEnv(t, runner)

	o := (&Configure{}).Run(context.Background(), env)

	assert.False(t, o.Passed)
	assert.Equal(t, "cmake configure failed", o.Note)
	assert.Contains(t, out.String(), "Error: CMake Error: missing CMakeLists.txt")
}

func TestConfigureFailsOnMissingArtifacts(t *testing.T) {
	// configure "succeeds" but only produces the cache file
	runner := &fakeRunner{fn: fabricateArtifacts("CMakeCache.txt")}
	env, out := newTestEnv(t, runner)

	o := (&Configure{}).Run(context.Background(), env)

	assert.False(t, o.Passed)
	assert.Contains(t, o.Note, "Makefile")
	assert.Contains(t, o.Note, "compile_commands.json")
	assert.Contains(t, out.String(), "✓ CMakeCache.txt generated")
	assert.Contains(t, out.String(), "✗ Makefile missing")
}
