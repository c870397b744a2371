// Package shell executes external commands for the build-test checks.
// Every invocation is bounded by a wall-clock timeout and all failure
// modes (non-zero exit, missing binary, timeout) collapse into a Result
// instead of an error.
package shell

import (
	"context"
	"time"
)

// DefaultTimeout bounds a single command invocation. A hung toolchain
// must not block the whole harness.
const DefaultTimeout = 300 * time.Second

// TimeoutMessage is the stderr text reported when a command exceeds the
// timeout. Checks and tests match on it verbatim.
const TimeoutMessage = "Command timed out"

// Result is the outcome of a single command invocation.
type Result struct {
	// Succeeded is true iff the command ran to completion with exit code 0.
	Succeeded bool
	// Stdout is the captured standard output.
	Stdout string
	// Stderr is the captured standard error, or a fault description when
	// the command could not be run at all.
	Stderr string
}

// Runner runs a shell command in a working directory.
// The interface exists so checks can be tested against a fake runner.
type Runner interface {
	// Run executes command through "sh -c" with the working directory set
	// to dir (empty means inherit). It never returns an error; spawn
	// faults and timeouts are converted to a failed Result.
	Run(ctx context.Context, dir string, command string) Result
}
