package settings

import (
	setuperr "github.com/hoover/setup/pkg/errors"
)

func RenderError(path string, actual error) error {
	return &setuperr.Error{
		Type: setuperr.Materialization,
		Err:  actual,
		Help: `Could not render the settings file

The template for

    ` + path + `

failed to render. Nothing was written; the file (if it existed) is
unchanged. This usually indicates a bug rather than a configuration
problem.
`,
	}
}

func WriteError(path string, actual error) error {
	return &setuperr.Error{
		Type: setuperr.Materialization,
		Err:  actual,
		Help: `Could not write the settings file

Writing

    ` + path + `

failed. Check that the location is writable (and, if a config
directory is configured, that it is on a writable filesystem), then run
the same operation again; a partial file is never left behind.
`,
	}
}
