package main

import (
	"github.com/spf13/cobra"

	"github.com/hoover/setup/pkg/setup"
)

type manageOpts struct {
	*rootOpts
}

func newManage(parent *rootOpts) *manageOpts {
	return &manageOpts{rootOpts: parent}
}

func (opts *manageOpts) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "manage <service> [args ...]",
		Short: "Hand this terminal over to a service's management command",
		Long: `Replace this process with the service's management command. Everything
after the service name goes to the command verbatim.`,
		Example: makeExample(
			"hooverctl manage search migrate",
			"hooverctl manage snoop shell",
		),
		DisableFlagParsing: true,
		RunE:               opts.RunE,
	}
}

func (opts *manageOpts) RunE(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return newUsageError("please supply a service to manage")
	}
	svc, ok := setup.ServiceNamed(args[0])
	if !ok {
		return setup.UnknownServiceError(args[0])
	}
	return opts.setup.Manage(svc, args[1:])
}
