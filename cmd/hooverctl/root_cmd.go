package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/spf13/cobra"

	"github.com/hoover/setup/pkg/extcmd"
	"github.com/hoover/setup/pkg/params"
	"github.com/hoover/setup/pkg/setup"
)

const (
	EnvVariableParamsFile = "HOOVER_PARAMS_FILE"
)

type rootOpts struct {
	noInput    bool
	verbose    bool
	paramsFile string

	logger   log.Logger
	registry *params.Registry
	setup    *setup.Setup
}

func newRoot() *rootOpts {
	return &rootOpts{}
}

var rootLongHelp = strings.TrimSpace(`
hooverctl installs and operates a Hoover deployment on this host.

Workflow:
  hooverctl install                  # check every service out under HOOVER_HOME and provision it
  hooverctl configure                # render the services' settings files again
  hooverctl run search --port 8000   # hand the terminal over to a service's server
  hooverctl manage search migrate    # hand the terminal over to a management command

Parameters resolve from the environment (HOOVER_*), then a params file,
then an interactive prompt, then built-in defaults; 'hooverctl list-params'
shows them all.
`)

func (opts *rootOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "hooverctl",
		Long:              rootLongHelp,
		SilenceUsage:      true,
		PersistentPreRunE: opts.PersistentPreRunE,
		Args:              opts.operationArgs,
		RunE:              opts.RunE,
	}
	cmd.PersistentFlags().BoolVar(&opts.noInput, "no-input", false,
		"never prompt; parameters not set anywhere else use their defaults or fail")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"log every external command before it runs")
	cmd.PersistentFlags().StringVar(&opts.paramsFile, "params-file", "",
		fmt.Sprintf("YAML file with parameter values; you can also set the environment variable %s", EnvVariableParamsFile))

	cmd.AddCommand(
		newInstall(opts).Command(),
		newConfigure(opts).Command(),
		newUpgrade(opts).Command(),
		newUpdate(opts).Command(),
		newRun(opts).Command(),
		newManage(opts).Command(),
		newParamsList(opts).Command(),
		newVersionCommand(),
	)

	return cmd
}

// operationArgs rejects anything that is not a known operation; valid
// operations never reach it.
func (opts *rootOpts) operationArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return unknownOperationError(args[0], cmd)
}

func (opts *rootOpts) RunE(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

func (opts *rootOpts) PersistentPreRunE(cmd *cobra.Command, _ []string) error {
	opts.logger = log.NewLogfmtLogger(os.Stderr)

	var runnerLogger log.Logger = log.NewNopLogger()
	if opts.verbose {
		runnerLogger = log.With(opts.logger, "component", "exec")
	}

	var regOpts []params.Option

	path := os.Getenv(EnvVariableParamsFile)
	if cmd.Flags().Changed("params-file") || path == "" {
		path = opts.paramsFile
	}
	if path != "" {
		file, err := params.LoadFile(path)
		if err != nil {
			return err
		}
		regOpts = append(regOpts, params.FromFile(file))
	}

	if !opts.noInput && params.Interactive() {
		regOpts = append(regOpts, params.Interactively(params.TerminalPrompter{}))
	}

	opts.registry = params.NewRegistry(regOpts...)
	opts.setup = &setup.Setup{
		Params: setup.Declare(opts.registry),
		Runner: extcmd.Runner{Logger: runnerLogger},
		Logger: opts.logger,
	}
	return nil
}
