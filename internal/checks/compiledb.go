package checks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/asadandasad/openrw-editor/internal/harness"
)

const compileDBName = "compile_commands.json"

// Distinct failure classifications for the compilation database, so a
// missing file, a malformed file, and a semantically empty one are
// distinguishable in the recorded note.
const (
	noteDBMissing    = "compilation database missing"
	noteDBMalformed  = "compilation database malformed"
	noteDBEmpty      = "compilation database empty"
	noteDBNoEntry    = "entry point absent from compilation database"
	noteDBUnreadable = "compilation database unreadable"
)

// compileUnit is one translation-unit record. Only the source file field
// matters here; the command and directory fields are ignored.
type compileUnit struct {
	File string `json:"file"`
}

// CompileDB validates the compilation database exported by the configure
// step: it must parse, be non-empty, and reference the entry-point
// source file.
type CompileDB struct{}

func (c *CompileDB) Name() string { return "Code Quality" }

func (c *CompileDB) Run(ctx context.Context, env *harness.Env) harness.Outcome {
	env.Log.Step("Testing code quality...")

	path := filepath.Join(env.BuildDir, compileDBName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		env.Log.Fail("%s not found", compileDBName)
		return harness.Outcome{Check: c.Name(), Note: noteDBMissing}
	}
	if err != nil {
		env.Log.Fail("Error reading %s: %v", compileDBName, err)
		return harness.Outcome{Check: c.Name(), Note: noteDBUnreadable}
	}

	var units []compileUnit
	if err := json.Unmarshal(data, &units); err != nil {
		env.Log.Fail("Invalid %s format", compileDBName)
		return harness.Outcome{Check: c.Name(), Note: noteDBMalformed}
	}

	if len(units) == 0 {
		env.Log.Fail("No compilation units found")
		return harness.Outcome{Check: c.Name(), Note: noteDBEmpty}
	}
	env.Log.Pass("Found %d compilation units", len(units))

	entry := env.Manifest.EntrySource
	found := false
	for _, u := range units {
		if strings.Contains(u.File, entry) {
			found = true
			break
		}
	}
	if !found {
		env.Log.Fail("Main source files not found in compilation")
		return harness.Outcome{Check: c.Name(), Note: fmt.Sprintf("%s (%s)", noteDBNoEntry, entry)}
	}
	env.Log.Pass("Main source files found in compilation")

	return harness.Outcome{Check: c.Name(), Passed: true}
}
