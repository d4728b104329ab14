package params

import (
	"fmt"

	setuperr "github.com/hoover/setup/pkg/errors"
)

func MissingParameterError(s Spec) error {
	return &setuperr.Error{
		Type: setuperr.MissingParameter,
		Err:  fmt.Errorf("no value for required parameter %q", s.Name),
		Help: `No value for the parameter "` + s.Name + `"

The operation needs a value for this parameter and none of its sources
supplied one. Set the environment variable

    ` + s.Env + `

and run the same operation again; steps that already completed are safe
to repeat or will be skipped.
`,
	}
}

func InvalidValueError(s Spec, value, want string) error {
	return &setuperr.Error{
		Type: setuperr.User,
		Err:  fmt.Errorf("parameter %q: %q is not %s", s.Name, value, want),
		Help: `The value supplied for the parameter "` + s.Name + `" cannot be used

The value

    ` + value + `

was found (usually via the environment variable ` + s.Env + `), but the
parameter needs ` + want + `. Correct the value and run the same
operation again.
`,
	}
}

func BadParamsFileError(path string, actual error) error {
	return &setuperr.Error{
		Type: setuperr.User,
		Err:  actual,
		Help: `The params file could not be read

The file

    ` + path + `

could not be read as YAML. Check that the file exists and is valid
YAML, or drop the --params-file argument to resolve parameters from the
environment alone.
`,
	}
}

func WrongFileVersionError(path, got string) error {
	return &setuperr.Error{
		Type: setuperr.User,
		Err:  fmt.Errorf("params file %s has configVersion %q, expected %q", path, got, FileVersion),
		Help: `The params file is not marked for this version of the tool

A params file is expected to include the line

    configVersion: ` + FileVersion + `

to mark it as a params file; the file

    ` + path + `

carries a different version (or none). This guards against silently
misreading a file written for another version of the tool.
`,
	}
}
