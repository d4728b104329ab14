package main

import (
	"context"

	"github.com/go-kit/kit/log"
	"github.com/spf13/cobra"

	"github.com/hoover/setup/pkg/checkpoint"
)

type upgradeOpts struct {
	*rootOpts
}

func newUpgrade(parent *rootOpts) *upgradeOpts {
	return &upgradeOpts{rootOpts: parent}
}

func (opts *upgradeOpts) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: "Pull every service and bring it up to date",
		Example: makeExample(
			"hooverctl upgrade",
		),
		RunE: opts.RunE,
	}
}

func (opts *upgradeOpts) RunE(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return errorWantedNoArgs
	}
	if err := coverAll(opts.setup.Upgrade(context.Background())); err != nil {
		return err
	}
	checkpoint.LogCheck(version, log.With(opts.logger, "component", "checkpoint"))
	return nil
}
