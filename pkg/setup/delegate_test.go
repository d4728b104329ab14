package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	setuperr "github.com/hoover/setup/pkg/errors"
)

func TestServerArgv(t *testing.T) {
	argv, dir := ServerArgv("/opt/hoover", Search, []string{"--port", "8888"})
	assert.Equal(t, []string{
		"/opt/hoover/venvs/search/bin/waitress-serve",
		"--port", "8888",
		"hoover.site.wsgi:application",
	}, argv)
	assert.Equal(t, "/opt/hoover/search", dir)

	argv, dir = ServerArgv("/opt/hoover", Snoop, nil)
	assert.Equal(t, []string{
		"/opt/hoover/venvs/snoop/bin/waitress-serve",
		"snoop.site.wsgi:application",
	}, argv)
	assert.Equal(t, "/opt/hoover/snoop", dir)
}

func TestManageArgv(t *testing.T) {
	argv := ManageArgv("/opt/hoover", Snoop, []string{"migrate", "--fake"})
	assert.Equal(t, []string{
		"/opt/hoover/venvs/snoop/bin/python",
		"/opt/hoover/snoop/manage.py",
		"migrate", "--fake",
	}, argv)
}

func TestRunServerNotAServer(t *testing.T) {
	_, cleanup := testHome(t)
	defer cleanup()

	err := testSetup().RunServer(UI, nil)
	require.Error(t, err)
	assert.True(t, setuperr.Is(err, setuperr.User))
	assert.Contains(t, err.Error(), "ui")
}

func TestRunServerMissingVenv(t *testing.T) {
	// the home is never installed, so the handoff fails at the
	// executable lookup instead of replacing the test process
	_, cleanup := testHome(t)
	defer cleanup()

	err := testSetup().RunServer(Search, nil)
	require.Error(t, err)
	assert.True(t, setuperr.Is(err, setuperr.ExternalCommand))
	assert.Contains(t, err.Error(), "waitress-serve")
}

func TestManageNotPython(t *testing.T) {
	_, cleanup := testHome(t)
	defer cleanup()

	err := testSetup().Manage(UI, []string{"migrate"})
	require.Error(t, err)
	assert.True(t, setuperr.Is(err, setuperr.User))
}
