package main

import (
	"github.com/spf13/cobra"

	"github.com/hoover/setup/pkg/setup"
)

type runOpts struct {
	*rootOpts
}

func newRun(parent *rootOpts) *runOpts {
	return &runOpts{rootOpts: parent}
}

func (opts *runOpts) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "run <service> [args ...]",
		Short: "Hand this terminal over to a service's server",
		Long: `Replace this process with the service's WSGI server. Everything after
the service name goes to the server verbatim, before the application
target, where waitress expects its options.`,
		Example: makeExample(
			"hooverctl run search",
			"hooverctl run search --port 8000 --threads 8",
		),
		DisableFlagParsing: true,
		RunE:               opts.RunE,
	}
}

func (opts *runOpts) RunE(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return newUsageError("please supply a service to run")
	}
	svc, ok := setup.ServiceNamed(args[0])
	if !ok {
		return setup.UnknownServiceError(args[0])
	}
	return opts.setup.RunServer(svc, args[1:])
}
