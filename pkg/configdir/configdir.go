// Package configdir places settings artifacts in a persistent
// directory outside the service trees, leaving a symbolic link where
// the service expects its settings. A re-checkout or upgrade of a
// service tree then never destroys configuration, since the tree only
// ever holds a link.
package configdir

import (
	"os"
	"path/filepath"
)

// EnsureLinked makes target a symbolic link to the canonical location
// for service under root, and returns that canonical path, which is
// where the artifact should actually be written. An empty root means
// no indirection is configured: target is returned unchanged and the
// filesystem is not touched.
//
// When target is already the correct link, nothing is mutated. An
// existing file or a link pointing elsewhere is replaced atomically,
// by renaming a fresh link over it.
func EnsureLinked(target, root, service string) (string, error) {
	if root == "" {
		return target, nil
	}

	dir := filepath.Join(root, service)
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", LinkError(target, dir, err)
	}
	canonical := filepath.Join(dir, filepath.Base(target))

	if existing, err := os.Readlink(target); err == nil && existing == canonical {
		return canonical, nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0777); err != nil {
		return "", LinkError(target, canonical, err)
	}

	// Prepare the link under a temporary name, then move it over
	// whatever is at target.
	tmp := filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+".link")
	os.Remove(tmp) // a leftover from an interrupted run
	if err := os.Symlink(canonical, tmp); err != nil {
		return "", LinkError(target, canonical, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return "", LinkError(target, canonical, err)
	}
	return canonical, nil
}
