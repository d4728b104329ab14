package main

import (
	"github.com/spf13/cobra"
)

type configureOpts struct {
	*rootOpts
	force bool
}

func newConfigure(parent *rootOpts) *configureOpts {
	return &configureOpts{rootOpts: parent}
}

func (opts *configureOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "configure",
		Aliases: []string{"reconfigure"},
		Short:   "Render the settings file of every service",
		Example: makeExample(
			"hooverctl configure",
			"HOOVER_ES_URL=http://elasticsearch:9200 hooverctl configure --force",
		),
		RunE: opts.RunE,
	}
	cmd.Flags().BoolVar(&opts.force, "force", false,
		"replace settings files that already exist")
	return cmd
}

func (opts *configureOpts) RunE(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return errorWantedNoArgs
	}
	return coverAll(opts.setup.Configure(opts.force))
}
