package setup

import (
	"context"
	"path/filepath"

	"github.com/hoover/setup/pkg/configdir"
	"github.com/hoover/setup/pkg/git"
)

// Upgrade refreshes every service checkout, reconciles installed
// dependencies against each service's pinned requirements, and re-runs
// migrations and builds.
func (s *Setup) Upgrade(ctx context.Context) error {
	home, err := s.home()
	if err != nil {
		return err
	}
	for _, svc := range Services {
		s.Logger.Log("pulling", svc.Name)
		if err := git.Pull(ctx, s.Runner, filepath.Join(home, svc.Name)); err != nil {
			return err
		}
	}
	for _, svc := range Services {
		if !svc.Python {
			continue
		}
		pipSync := filepath.Join(home, "venvs", svc.Name, "bin", "pip-sync")
		if err := s.Runner.Run(ctx, filepath.Join(home, svc.Name), pipSync); err != nil {
			return err
		}
	}
	return s.preflight(ctx)
}

// Update re-creates the wrapper script and re-establishes the config
// links, picking up a moved binary or a newly set config directory. It
// runs no external commands and is idempotent.
func (s *Setup) Update() error {
	home, err := s.home()
	if err != nil {
		return err
	}
	if err := s.writeWrapper(home); err != nil {
		return err
	}
	configDir, err := s.Params.ConfigDir.Resolve()
	if err != nil {
		return err
	}
	if configDir == "" {
		return nil
	}
	for _, svc := range Services {
		if svc.Artifact == "" {
			continue
		}
		if _, err := configdir.EnsureLinked(filepath.Join(home, svc.Artifact), configDir, svc.Name); err != nil {
			return err
		}
	}
	return nil
}
