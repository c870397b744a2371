package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"syscall"
	"time"
)

// waitGrace bounds how long Run waits for the output pipes after the
// process group has been killed. Anything still holding the pipes past
// this point is abandoned.
const waitGrace = 1 * time.Second

// ShellRunner implements Runner using os/exec.
type ShellRunner struct {
	// Timeout overrides DefaultTimeout when positive. Tests use a short
	// timeout so the timeout path stays fast.
	Timeout time.Duration
}

// NewRunner creates a ShellRunner with the default timeout.
func NewRunner() *ShellRunner {
	return &ShellRunner{Timeout: DefaultTimeout}
}

// Run executes command through "sh -c" and captures both output streams.
func (r *ShellRunner) Run(ctx context.Context, dir string, command string) Result {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	if dir != "" {
		cmd.Dir = dir
	}

	// Each command gets its own process group, and the whole group is
	// killed at the deadline. Killing only sh would leave grandchildren
	// (e.g. compiler processes orphaned from a parallel make) holding
	// the output pipes open, blocking Wait long past the timeout.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	// If anything survives the group kill, stop waiting on the pipes
	// after a short grace period instead of indefinitely.
	cmd.WaitDelay = waitGrace

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		// No partial output guarantee on timeout.
		return Result{Succeeded: false, Stderr: TimeoutMessage}
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{Succeeded: false, Stdout: stdout.String(), Stderr: stderr.String()}
		}
		// Spawn fault: missing binary, permission error, bad working dir.
		return Result{Succeeded: false, Stderr: err.Error()}
	}
	return Result{Succeeded: true, Stdout: stdout.String(), Stderr: stderr.String()}
}

// Verify ShellRunner implements Runner at compile time.
var _ Runner = (*ShellRunner)(nil)
