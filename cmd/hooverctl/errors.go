package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	setuperr "github.com/hoover/setup/pkg/errors"
)

type usageError struct {
	error
}

func newUsageError(msg string) usageError {
	return usageError{error: errors.New(msg)}
}

var errorWantedNoArgs = newUsageError("expected no (non-flag) arguments")
var errorInvalidOutputFormat = newUsageError("invalid output format specified")

// coverAll gives errors that escape an operation without a category
// the generic help: the operation's completed steps stay in place and
// it is safe to run again once the cause is fixed.
func coverAll(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*setuperr.Error); ok {
		return err
	}
	return setuperr.CoverAllError(err)
}

func unknownOperationError(token string, cmd *cobra.Command) error {
	var names []string
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			names = append(names, c.Name())
		}
	}
	return &setuperr.Error{
		Type: setuperr.UnknownOperation,
		Err:  fmt.Errorf("unknown operation %q", token),
		Help: `There is no operation called "` + token + `"

The operations are:

    ` + strings.Join(names, ", ") + `

Run 'hooverctl --help' for what each one does.
`,
	}
}
