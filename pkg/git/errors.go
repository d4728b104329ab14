package git

import (
	setuperr "github.com/hoover/setup/pkg/errors"
)

func CloningError(origin Remote, actual error) error {
	return &setuperr.Error{
		Type: setuperr.ExternalCommand,
		Err:  actual,
		Help: `Could not clone the repository

There was a problem cloning

    ` + origin.SafeURL() + `

This may be because the host is unreachable, or because the repository
has been moved, deleted, or never existed. Check that there is a
repository at the address above and that this machine can reach it,
then run the same operation again.
`,
	}
}
