package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	setuperr "github.com/hoover/setup/pkg/errors"
	"github.com/hoover/setup/pkg/setup"
)

// testExecute runs the root command as a user would, capturing its
// output.
func testExecute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd := newRoot().Command()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func testInstallRoot(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", "hooverctl-cmd")
	require.NoError(t, err)
	home := filepath.Join(dir, "hoover")
	os.Setenv("HOOVER_HOME", home)
	os.Unsetenv(EnvVariableParamsFile)
	return home, func() {
		os.Unsetenv("HOOVER_HOME")
		os.RemoveAll(dir)
	}
}

func TestUnknownOperation(t *testing.T) {
	_, err := testExecute("frobnicate")
	require.Error(t, err)
	require.True(t, setuperr.Is(err, setuperr.UnknownOperation))
	assert.Contains(t, err.Error(), "frobnicate")

	serr := err.(*setuperr.Error)
	assert.Contains(t, serr.Help, "install")
	assert.Contains(t, serr.Help, "configure")
	assert.Contains(t, serr.Help, "upgrade")
}

func TestConfigureOperation(t *testing.T) {
	home, cleanup := testInstallRoot(t)
	defer cleanup()

	_, err := testExecute("configure")
	require.NoError(t, err)

	content, err := ioutil.ReadFile(filepath.Join(home, setup.Search.Artifact))
	require.NoError(t, err)
	assert.Contains(t, string(content), "HOOVER_ELASTICSEARCH_URL = 'http://localhost:9200'")
}

func TestReconfigureAliasWithForce(t *testing.T) {
	home, cleanup := testInstallRoot(t)
	defer cleanup()

	_, err := testExecute("configure")
	require.NoError(t, err)
	before, err := ioutil.ReadFile(filepath.Join(home, setup.Search.Artifact))
	require.NoError(t, err)

	_, err = testExecute("reconfigure", "--force")
	require.NoError(t, err)
	after, err := ioutil.ReadFile(filepath.Join(home, setup.Search.Artifact))
	require.NoError(t, err)
	assert.NotEqual(t, string(before), string(after))
}

func TestParamsFileFlag(t *testing.T) {
	home, cleanup := testInstallRoot(t)
	defer cleanup()

	paramsPath := filepath.Join(filepath.Dir(home), "params.yaml")
	require.NoError(t, ioutil.WriteFile(paramsPath, []byte(
		"configVersion: setup/v1\nes-url: http://files:9200\n",
	), 0600))

	_, err := testExecute("configure", "--params-file", paramsPath)
	require.NoError(t, err)

	content, err := ioutil.ReadFile(filepath.Join(home, setup.Search.Artifact))
	require.NoError(t, err)
	assert.Contains(t, string(content), "HOOVER_ELASTICSEARCH_URL = 'http://files:9200'")
}

func TestParamsFileWrongVersion(t *testing.T) {
	_, cleanup := testInstallRoot(t)
	defer cleanup()

	paramsPath := filepath.Join(os.TempDir(), "hooverctl-badparams.yaml")
	require.NoError(t, ioutil.WriteFile(paramsPath, []byte(
		"configVersion: setup/v9\n",
	), 0600))
	defer os.Remove(paramsPath)

	_, err := testExecute("configure", "--params-file", paramsPath)
	require.Error(t, err)
	assert.True(t, setuperr.Is(err, setuperr.User))
}

func TestRunWantsService(t *testing.T) {
	_, cleanup := testInstallRoot(t)
	defer cleanup()

	_, err := testExecute("run")
	require.Error(t, err)
	_, ok := err.(usageError)
	assert.True(t, ok)

	_, err = testExecute("run", "bogus")
	require.Error(t, err)
	assert.True(t, setuperr.Is(err, setuperr.User))
}

func TestRunPassesArgsThrough(t *testing.T) {
	// nothing is installed under the home, so the handoff stops at the
	// executable lookup; the error shows the args reached the delegate
	_, cleanup := testInstallRoot(t)
	defer cleanup()

	_, err := testExecute("run", "search", "--port", "8000")
	require.Error(t, err)
	assert.True(t, setuperr.Is(err, setuperr.ExternalCommand))
	assert.Contains(t, err.Error(), "waitress-serve")
}

func TestManageWantsService(t *testing.T) {
	_, cleanup := testInstallRoot(t)
	defer cleanup()

	_, err := testExecute("manage")
	require.Error(t, err)
	_, ok := err.(usageError)
	assert.True(t, ok)

	_, err = testExecute("manage", "ui", "migrate")
	require.Error(t, err)
	assert.True(t, setuperr.Is(err, setuperr.User))
}

func TestListParamsYAML(t *testing.T) {
	_, cleanup := testInstallRoot(t)
	defer cleanup()

	out, err := testExecute("list-params", "-o", "yaml")
	require.NoError(t, err)

	var statuses []struct {
		Name     string `yaml:"name"`
		Env      string `yaml:"env"`
		Required bool   `yaml:"required"`
		EnvSet   bool   `yaml:"envSet"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &statuses))
	require.NotEmpty(t, statuses)

	assert.Equal(t, "home", statuses[0].Name)
	assert.Equal(t, "HOOVER_HOME", statuses[0].Env)
	assert.True(t, statuses[0].Required)
	assert.True(t, statuses[0].EnvSet)

	var names []string
	for _, s := range statuses {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "es-url")
	assert.Contains(t, names, "config-dir")
	assert.Contains(t, names, "debug")
}

func TestListParamsBadFormat(t *testing.T) {
	_, cleanup := testInstallRoot(t)
	defer cleanup()

	_, err := testExecute("list-params", "-o", "json")
	require.Error(t, err)
	_, ok := err.(usageError)
	assert.True(t, ok)
}
