package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hoover/setup/pkg/checkpoint"
)

var version string

func newVersionCommand() *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Output the version of hooverctl",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return errorWantedNoArgs
			}
			if version == "" {
				version = "unversioned"
			}
			fmt.Fprintln(cmd.OutOrStdout(), version)
			if !check {
				return nil
			}
			status, err := checkpoint.Check(version)
			if err != nil {
				return errors.Wrap(err, "checking for updates")
			}
			if status.Outdated {
				fmt.Fprintf(cmd.OutOrStdout(), "update available: %s (%s)\n", status.Latest, status.URL)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "up to date")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false,
		"ask the release endpoint whether a newer version exists")
	return cmd
}
