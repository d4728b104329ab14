package configdir

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDirs(t *testing.T) (home, root string, cleanup func()) {
	dir, err := ioutil.TempDir("", "hooverctl-configdir")
	require.NoError(t, err)
	home = filepath.Join(dir, "hoover")
	root = filepath.Join(dir, "config")
	require.NoError(t, os.MkdirAll(home, 0777))
	require.NoError(t, os.MkdirAll(root, 0777))
	return home, root, func() { os.RemoveAll(dir) }
}

func inode(t *testing.T, path string) uint64 {
	info, err := os.Lstat(path)
	require.NoError(t, err)
	st, ok := info.Sys().(*syscall.Stat_t)
	require.True(t, ok)
	return st.Ino
}

func TestEnsureLinkedNoRoot(t *testing.T) {
	home, _, cleanup := testDirs(t)
	defer cleanup()
	target := filepath.Join(home, "search", "local.py")

	got, err := EnsureLinked(target, "", "search")
	require.NoError(t, err)
	assert.Equal(t, target, got)

	// direct-write mode touches nothing
	_, err = os.Lstat(filepath.Join(home, "search"))
	assert.True(t, os.IsNotExist(err))
}

func TestEnsureLinked(t *testing.T) {
	home, root, cleanup := testDirs(t)
	defer cleanup()
	target := filepath.Join(home, "search", "local.py")

	canonical, err := EnsureLinked(target, root, "search")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "search", "local.py"), canonical)

	resolved, err := os.Readlink(target)
	require.NoError(t, err)
	assert.Equal(t, canonical, resolved)

	// content written at the canonical path reads back through the link
	require.NoError(t, ioutil.WriteFile(canonical, []byte("DEBUG = False\n"), 0600))
	content, err := ioutil.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "DEBUG = False\n", string(content))
}

func TestEnsureLinkedIdempotent(t *testing.T) {
	home, root, cleanup := testDirs(t)
	defer cleanup()
	target := filepath.Join(home, "search", "local.py")

	canonical, err := EnsureLinked(target, root, "search")
	require.NoError(t, err)
	require.NoError(t, ioutil.WriteFile(canonical, []byte("X = 1\n"), 0600))

	linkInode := inode(t, target)
	fileInode := inode(t, canonical)

	again, err := EnsureLinked(target, root, "search")
	require.NoError(t, err)
	assert.Equal(t, canonical, again)

	assert.Equal(t, linkInode, inode(t, target), "link was recreated")
	assert.Equal(t, fileInode, inode(t, canonical), "canonical file was touched")

	content, err := ioutil.ReadFile(canonical)
	require.NoError(t, err)
	assert.Equal(t, "X = 1\n", string(content))
}

func TestEnsureLinkedReplacesStaleFile(t *testing.T) {
	home, root, cleanup := testDirs(t)
	defer cleanup()
	target := filepath.Join(home, "search", "local.py")

	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0777))
	require.NoError(t, ioutil.WriteFile(target, []byte("# stale direct write\n"), 0600))

	canonical, err := EnsureLinked(target, root, "search")
	require.NoError(t, err)

	resolved, err := os.Readlink(target)
	require.NoError(t, err)
	assert.Equal(t, canonical, resolved)
}

func TestEnsureLinkedReplacesWrongLink(t *testing.T) {
	home, root, cleanup := testDirs(t)
	defer cleanup()
	target := filepath.Join(home, "search", "local.py")

	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0777))
	require.NoError(t, os.Symlink(filepath.Join(home, "elsewhere"), target))

	canonical, err := EnsureLinked(target, root, "search")
	require.NoError(t, err)

	resolved, err := os.Readlink(target)
	require.NoError(t, err)
	assert.Equal(t, canonical, resolved)
}
