package checks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStructureAllPresent(t *testing.T) {
	env, out := newTestEnv(t, &fakeRunner{})
	writeRequiredPaths(t, env)

	o := (&FileStructure{}).Run(context.Background(), env)

	assert.True(t, o.Passed)
	assert.Equal(t, "File Structure", o.Check)
	assert.Contains(t, out.String(), "✓ src/main.cpp")
	assert.Contains(t, out.String(), "✓ src/file_formats/dat_parser.h")
}

func TestFileStructureReportsEachMissingPath(t *testing.T) {
	env, out := newTestEnv(t, &fakeRunner{})
	writeRequiredPaths(t, env)

	missing := []string{"build.sh", "src/main.cpp", "src/file_formats/dff_parser.h"}
	for _, rel := range missing {
		require.NoError(t, os.Remove(filepath.Join(env.ProjectRoot, rel)))
	}

	o := (&FileStructure{}).Run(context.Background(), env)

	assert.False(t, o.Passed)
	assert.Contains(t, o.Note, "3 required paths missing")
	for _, rel := range missing {
		assert.Contains(t, o.Note, rel)
		assert.Contains(t, out.String(), "✗ "+rel+" missing")
	}
	// the present paths are still logged individually
	assert.Contains(t, out.String(), "✓ README.md")
	assert.Contains(t, out.String(), "✓ src/ui/main_window.h")
}

func TestFileStructureEmptyProjectRoot(t *testing.T) {
	env, _ := newTestEnv(t, &fakeRunner{})

	o := (&FileStructure{}).Run(context.Background(), env)

	assert.False(t, o.Passed)
	assert.Contains(t, o.Note, "20 required paths missing")
}
