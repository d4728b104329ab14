package setup

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/hoover/setup/pkg/configdir"
	"github.com/hoover/setup/pkg/settings"
)

// Configure renders each service's settings artifact. An artifact that
// already exists is left alone unless force is set, so configure is
// safe to re-run after a failed or partial install. When a config
// directory is set, the artifacts live there and the service trees
// only hold links to them.
func (s *Setup) Configure(force bool) error {
	home, err := s.home()
	if err != nil {
		return err
	}
	configDir, err := s.Params.ConfigDir.Resolve()
	if err != nil {
		return err
	}
	for _, svc := range Services {
		if svc.Artifact == "" {
			continue
		}
		path, err := configdir.EnsureLinked(filepath.Join(home, svc.Artifact), configDir, svc.Name)
		if err != nil {
			return err
		}
		vars, err := s.varsFor(svc, home)
		if err != nil {
			return err
		}
		result, err := settings.Write(path, settingsTemplate(svc), vars, force)
		if err != nil {
			return err
		}
		s.Logger.Log("service", svc.Name, "settings", path, "result", result)
	}
	return s.createCacheDirs(home)
}

// createCacheDirs makes the scratch space snoop's extraction tools
// use. Existing directories are left alone.
func (s *Setup) createCacheDirs(home string) error {
	for _, sub := range []string{"archives", "msg", "pst"} {
		dir := filepath.Join(home, "cache", sub)
		if err := os.MkdirAll(dir, 0777); err != nil {
			return errors.Wrapf(err, "creating %s", dir)
		}
	}
	return nil
}
