package setup

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/hoover/setup/pkg/git"
)

// Install provisions a fresh deployment: it checks the install root is
// free, checks out each service, installs their dependencies, writes
// the wrapper script, renders settings, and runs the initial
// migrations and builds. Every step is checked and the first failure
// aborts the rest; whatever completed stays on disk.
func (s *Setup) Install(ctx context.Context) error {
	home, err := s.home()
	if err != nil {
		return err
	}
	if err := checkTarget(home); err != nil {
		return err
	}
	if err := os.MkdirAll(home, 0777); err != nil {
		return errors.Wrapf(err, "creating %s", home)
	}

	branch, err := s.Params.RepoBranch.Resolve()
	if err != nil {
		return err
	}
	for _, svc := range Services {
		origin, err := s.repoFor(svc)
		if err != nil {
			return err
		}
		s.Logger.Log("cloning", origin.SafeURL(), "into", filepath.Join(home, svc.Name))
		if err := git.Clone(ctx, s.Runner, filepath.Join(home, svc.Name), origin, branch); err != nil {
			return err
		}
	}

	for _, svc := range Services {
		if !svc.Python {
			continue
		}
		venv := filepath.Join(home, "venvs", svc.Name)
		if err := s.Runner.Run(ctx, "", "python3", "-m", "venv", venv); err != nil {
			return err
		}
		requirements := filepath.Join(home, svc.Name, "requirements.txt")
		if err := s.Runner.Run(ctx, "", filepath.Join(venv, "bin", "pip"), "install", "-r", requirements); err != nil {
			return err
		}
	}

	if err := s.writeWrapper(home); err != nil {
		return err
	}
	if err := s.Configure(false); err != nil {
		return err
	}
	return s.preflight(ctx)
}

// checkTarget guards the one non-idempotent step: cloning into a
// populated directory cannot be cleaned up usefully, so it is refused
// up front.
func checkTarget(home string) error {
	entries, err := ioutil.ReadDir(home)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return InvalidTargetError(home, err)
	}
	if len(entries) > 0 {
		return InvalidTargetError(home, fmt.Errorf("%s exists and is not empty", home))
	}
	return nil
}

const wrapperScript = `#!/bin/sh
export HOOVER_HOME='%s'
exec '%s' "$@"
`

// writeWrapper puts a small script at <home>/bin/hoover that points
// HOOVER_HOME at this deployment and forwards to the binary that wrote
// it, so the operator can drive the deployment without exporting
// anything.
func (s *Setup) writeWrapper(home string) error {
	self, err := os.Executable()
	if err != nil {
		return errors.Wrap(err, "locating own executable")
	}
	bin := filepath.Join(home, "bin")
	if err := os.MkdirAll(bin, 0777); err != nil {
		return errors.Wrapf(err, "creating %s", bin)
	}
	path := filepath.Join(bin, "hoover")
	if err := ioutil.WriteFile(path, []byte(fmt.Sprintf(wrapperScript, home, self)), 0755); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	// WriteFile applies the mode only on creation; an update must not
	// leave the script non-executable
	return os.Chmod(path, 0755)
}

// preflight runs the steps that bring freshly checked out (or freshly
// pulled) services into a runnable state.
func (s *Setup) preflight(ctx context.Context) error {
	if err := s.runManage(ctx, Search, "migrate"); err != nil {
		return err
	}
	if err := s.runManage(ctx, Snoop, "migrate"); err != nil {
		return err
	}
	if err := s.runManage(ctx, Search, "downloadassets"); err != nil {
		return err
	}
	if err := s.runManage(ctx, Search, "collectstatic", "--noinput"); err != nil {
		return err
	}
	home, err := s.home()
	if err != nil {
		return err
	}
	ui := filepath.Join(home, UI.Name)
	if err := s.Runner.Run(ctx, ui, "npm", "install"); err != nil {
		return err
	}
	return s.Runner.Run(ctx, ui, "./run", "build")
}

// runManage invokes a management command synchronously, unlike the
// manage operation, which hands the whole process over.
func (s *Setup) runManage(ctx context.Context, svc Service, args ...string) error {
	home, err := s.home()
	if err != nil {
		return err
	}
	return s.Runner.Run(ctx, "", ManageArgv(home, svc, args)...)
}
