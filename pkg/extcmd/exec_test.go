// +build !windows

package extcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	setuperr "github.com/hoover/setup/pkg/errors"
)

func TestExec(t *testing.T) {
	var gotPath string
	var gotArgv, gotEnv []string
	saved := execve
	execve = func(path string, argv []string, env []string) error {
		gotPath, gotArgv, gotEnv = path, argv, env
		return nil
	}
	defer func() { execve = saved }()

	err := Exec("", []string{"sh", "-c", "true"}, []string{"A=1"})
	require.NoError(t, err)
	assert.Contains(t, gotPath, "sh")
	assert.Equal(t, []string{"sh", "-c", "true"}, gotArgv)
	assert.Equal(t, []string{"A=1"}, gotEnv)
}

func TestExecInheritsEnvironment(t *testing.T) {
	var gotEnv []string
	saved := execve
	execve = func(path string, argv []string, env []string) error {
		gotEnv = env
		return nil
	}
	defer func() { execve = saved }()

	require.NoError(t, Exec("", []string{"sh"}, nil))
	assert.NotEmpty(t, gotEnv)
}

func TestExecUnknownExecutable(t *testing.T) {
	err := Exec("", []string{"hooverctl-no-such-binary"}, nil)
	require.Error(t, err)
	assert.True(t, setuperr.Is(err, setuperr.ExternalCommand))
}
