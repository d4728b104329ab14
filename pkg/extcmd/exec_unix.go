// +build !windows

package extcmd

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// separated so tests can observe the handoff without leaving the test
// process
var execve = unix.Exec

// Exec replaces the current process image with argv, after changing
// into dir (empty means stay put). On success it never returns: the
// tool's part of the run is over and the chosen executable owns the
// process from here. A nil env means the child sees this process's
// environment.
//
// Callers must flush and close anything buffered before calling; no
// deferred functions will run after the handoff.
func Exec(dir string, argv []string, env []string) error {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return CommandError(argv, dir, err)
	}
	if dir != "" {
		if err := os.Chdir(dir); err != nil {
			return CommandError(argv, dir, err)
		}
	}
	if env == nil {
		env = os.Environ()
	}
	if err := execve(path, argv, env); err != nil {
		return CommandError(argv, dir, err)
	}
	return nil
}
