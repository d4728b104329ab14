package main

import (
	"context"

	"github.com/spf13/cobra"
)

type installOpts struct {
	*rootOpts
}

func newInstall(parent *rootOpts) *installOpts {
	return &installOpts{rootOpts: parent}
}

func (opts *installOpts) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Check every service out under HOOVER_HOME and provision it",
		Example: makeExample(
			"hooverctl install",
			"HOOVER_HOME=/opt/hoover hooverctl install --no-input",
		),
		RunE: opts.RunE,
	}
}

func (opts *installOpts) RunE(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return errorWantedNoArgs
	}
	return coverAll(opts.setup.Install(context.Background()))
}
