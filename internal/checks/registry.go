// Package checks implements the six verification steps of the build-test
// pipeline. Each check is independent: it reads the shared environment,
// probes the filesystem or runs external commands, and yields exactly
// one outcome.
package checks

import (
	"github.com/asadandasad/openrw-editor/internal/harness"
)

// Registry returns the checks in their canonical execution order. The
// order matters: configuration must clean and populate the build
// directory before compilation, and compilation must have run before the
// database and smoke checks can pass. Later checks are still attempted
// when earlier ones fail; they fail naturally on the missing artifacts.
func Registry() []harness.Check {
	return []harness.Check{
		&FileStructure{},
		&Dependencies{},
		&Configure{},
		&Compile{},
		&CompileDB{},
		&Smoke{},
	}
}
