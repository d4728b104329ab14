package setup

import (
	"path/filepath"
	"strings"

	"github.com/hoover/setup/pkg/extcmd"
)

// ServerArgv builds the argument vector the run operation hands the
// process to, and the directory to start the server in. Extra
// arguments are the server's own (port, threads); they go before the
// application target, where waitress expects its options.
func ServerArgv(home string, svc Service, extra []string) (argv []string, dir string) {
	argv = append([]string{filepath.Join(home, "venvs", svc.Name, "bin", "waitress-serve")}, extra...)
	argv = append(argv, svc.WSGI)
	return argv, filepath.Join(home, svc.Name)
}

// ManageArgv builds the argument vector for a service's management
// command; args pass through verbatim.
func ManageArgv(home string, svc Service, args []string) []string {
	return append([]string{
		filepath.Join(home, "venvs", svc.Name, "bin", "python"),
		filepath.Join(home, svc.Name, "manage.py"),
	}, args...)
}

// RunServer hands the process over to svc's WSGI server. On success it
// never returns.
func (s *Setup) RunServer(svc Service, extra []string) error {
	if svc.WSGI == "" {
		return NoServerError(svc)
	}
	home, err := s.home()
	if err != nil {
		return err
	}
	argv, dir := ServerArgv(home, svc, extra)
	s.Logger.Log("exec", strings.Join(argv, " "), "dir", dir)
	return extcmd.Exec(dir, argv, nil)
}

// Manage hands the process over to svc's management command. On
// success it never returns.
func (s *Setup) Manage(svc Service, args []string) error {
	if !svc.Python {
		return NoManageError(svc)
	}
	home, err := s.home()
	if err != nil {
		return err
	}
	argv := ManageArgv(home, svc, args)
	s.Logger.Log("exec", strings.Join(argv, " "))
	return extcmd.Exec("", argv, nil)
}
