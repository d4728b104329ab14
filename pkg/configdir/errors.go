package configdir

import (
	setuperr "github.com/hoover/setup/pkg/errors"
)

func LinkError(target, canonical string, actual error) error {
	return &setuperr.Error{
		Type: setuperr.Materialization,
		Err:  actual,
		Help: `Could not link the settings file into the config directory

The settings path

    ` + target + `

could not be pointed at its canonical location

    ` + canonical + `

Check that both locations are writable. The operation is safe to run
again once the cause is fixed.
`,
	}
}
