package setup

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	setuperr "github.com/hoover/setup/pkg/errors"
)

func TestCheckTarget(t *testing.T) {
	dir, err := ioutil.TempDir("", "hooverctl-target")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	// not there yet: fine, install will create it
	assert.NoError(t, checkTarget(filepath.Join(dir, "missing")))

	// there but empty: also fine
	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.Mkdir(empty, 0777))
	assert.NoError(t, checkTarget(empty))

	// populated: refused
	full := filepath.Join(dir, "full")
	require.NoError(t, os.Mkdir(full, 0777))
	require.NoError(t, ioutil.WriteFile(filepath.Join(full, "junk"), []byte("x"), 0600))
	err = checkTarget(full)
	require.Error(t, err)
	assert.True(t, setuperr.Is(err, setuperr.InvalidTarget))
	assert.Contains(t, err.Error(), full)
}

func TestInstallRefusesPopulatedTarget(t *testing.T) {
	home, cleanup := testHome(t)
	defer cleanup()

	require.NoError(t, os.MkdirAll(home, 0777))
	require.NoError(t, ioutil.WriteFile(filepath.Join(home, "junk"), []byte("x"), 0600))

	err := testSetup().Install(context.Background())
	require.Error(t, err)
	assert.True(t, setuperr.Is(err, setuperr.InvalidTarget))

	// nothing was provisioned into the populated directory
	_, err = os.Stat(filepath.Join(home, "bin"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteWrapper(t *testing.T) {
	home, cleanup := testHome(t)
	defer cleanup()

	s := testSetup()
	require.NoError(t, s.writeWrapper(home))

	path := filepath.Join(home, "bin", "hoover")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	content, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	script := string(content)
	assert.True(t, strings.HasPrefix(script, "#!/bin/sh\n"))
	assert.Contains(t, script, "export HOOVER_HOME='"+home+"'")
	assert.Contains(t, script, `"$@"`)

	self, err := os.Executable()
	require.NoError(t, err)
	assert.Contains(t, script, "exec '"+self+"'")
}

func TestWriteWrapperRestoresMode(t *testing.T) {
	home, cleanup := testHome(t)
	defer cleanup()

	path := filepath.Join(home, "bin", "hoover")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0777))
	require.NoError(t, ioutil.WriteFile(path, []byte("stale"), 0644))

	require.NoError(t, testSetup().writeWrapper(home))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	content, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(content))
}
