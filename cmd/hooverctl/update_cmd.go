package main

import (
	"github.com/spf13/cobra"
)

type updateOpts struct {
	*rootOpts
}

func newUpdate(parent *rootOpts) *updateOpts {
	return &updateOpts{rootOpts: parent}
}

func (opts *updateOpts) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Point the wrapper script and config links at this binary",
		Example: makeExample(
			"hooverctl update",
		),
		RunE: opts.RunE,
	}
}

func (opts *updateOpts) RunE(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return errorWantedNoArgs
	}
	return coverAll(opts.setup.Update())
}
