package setup

import (
	"fmt"
	"strings"

	setuperr "github.com/hoover/setup/pkg/errors"
)

func InvalidTargetError(home string, actual error) error {
	return &setuperr.Error{
		Type: setuperr.InvalidTarget,
		Err:  actual,
		Help: `The install target cannot be used

Installing checks the services out into

    ` + home + `

which already exists and is not an empty directory. Point the
HOOVER_HOME environment variable at a fresh location and run install
again, or move the existing contents out of the way.
`,
	}
}

func UnknownServiceError(name string) error {
	names := make([]string, len(Services))
	for i, svc := range Services {
		names[i] = svc.Name
	}
	return &setuperr.Error{
		Type: setuperr.User,
		Err:  fmt.Errorf("unknown service %q", name),
		Help: `There is no service called "` + name + `"

The services of this deployment are:

    ` + strings.Join(names, ", ") + `
`,
	}
}

func NoServerError(svc Service) error {
	return &setuperr.Error{
		Type: setuperr.User,
		Err:  fmt.Errorf("service %s does not run a server", svc.Name),
		Help: `The service "` + svc.Name + `" does not run a server

Only services with a WSGI application can be started this way. The ui
is built statically (during install and upgrade) and served by the
search service.
`,
	}
}

func NoManageError(svc Service) error {
	return &setuperr.Error{
		Type: setuperr.User,
		Err:  fmt.Errorf("service %s has no management command", svc.Name),
		Help: `The service "` + svc.Name + `" has no management command

Only the Python services (search, snoop) expose one.
`,
	}
}
