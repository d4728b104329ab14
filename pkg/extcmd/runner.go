// Package extcmd invokes the external collaborators of an operation
// (checkouts, dependency installs, builds, migrations) as synchronous
// subprocesses, and hands the process over entirely for terminal
// delegates. The contract with a subprocess is exit status only: its
// output goes to the operator, uninspected.
package extcmd

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/go-kit/kit/log"
)

// Runner invokes external commands. The child inherits this process's
// environment plus any per-runner additions, and the operator's
// stdin, so commands that ask questions still can.
type Runner struct {
	// Env holds KEY=VALUE entries appended to the inherited
	// environment for every command.
	Env []string
	// Stdout and Stderr default to the process's own.
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// Run executes argv[0] with the remaining arguments, in dir (empty
// means the current directory), and blocks until it finishes. A
// nonzero exit aborts the calling operation; there are no retries and
// no timeout beyond what ctx imposes.
func (r Runner) Run(ctx context.Context, dir string, argv ...string) error {
	if r.Logger != nil {
		r.Logger.Log("running", strings.Join(argv, " "), "dir", dir)
	}
	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	c.Dir = dir
	c.Env = append(os.Environ(), r.Env...)
	c.Stdin = os.Stdin
	c.Stdout = r.stdout()
	c.Stderr = r.stderr()
	if err := c.Run(); err != nil {
		return CommandError(argv, dir, err)
	}
	return nil
}

func (r Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r Runner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
