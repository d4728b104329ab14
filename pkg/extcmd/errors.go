package extcmd

import (
	"strings"

	"github.com/pkg/errors"

	setuperr "github.com/hoover/setup/pkg/errors"
)

func CommandError(argv []string, dir string, actual error) error {
	if dir == "" {
		dir = "the current directory"
	}
	return &setuperr.Error{
		Type: setuperr.ExternalCommand,
		Err:  errors.Wrapf(actual, "running %s", strings.Join(argv, " ")),
		Help: `An external command failed

The command

    ` + strings.Join(argv, " ") + `

run in

    ` + dir + `

did not succeed; its own output has the details. Steps that completed
before it are left in place for inspection. Fix the cause and run the
same operation again.
`,
	}
}
