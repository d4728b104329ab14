// Package settings renders and writes the configuration artifact a
// service reads at startup. Writes are all-or-nothing: a failed render
// or interrupted write never leaves a truncated file at the target
// path.
package settings

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"text/template"
)

// Result reports what Write did.
type Result string

const (
	// Skipped means a file already existed and overwriting was not
	// requested; nothing was touched.
	Skipped Result = "skipped"
	// Written means the rendered artifact is now at the target path.
	Written Result = "written"
)

// Write renders tmpl with data and places the result at path, creating
// parent directories as needed. When overwrite is false and a file
// already exists at path, nothing is rendered or written and the
// result is Skipped; this makes re-running a configure operation safe.
//
// The render happens entirely in memory and the output is staged in
// the target directory, then moved into place, so a failure part way
// through leaves either the previous file or no file, never a partial
// one.
func Write(path string, tmpl *template.Template, data interface{}, overwrite bool) (Result, error) {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return Skipped, nil
		} else if !os.IsNotExist(err) {
			return "", WriteError(path, err)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", RenderError(path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return "", WriteError(path, err)
	}
	staging, err := ioutil.TempFile(filepath.Dir(path), "."+filepath.Base(path)+".")
	if err != nil {
		return "", WriteError(path, err)
	}
	defer os.Remove(staging.Name())
	if _, err := staging.Write(buf.Bytes()); err != nil {
		staging.Close()
		return "", WriteError(path, err)
	}
	if err := staging.Close(); err != nil {
		return "", WriteError(path, err)
	}
	if err := os.Rename(staging.Name(), path); err != nil {
		return "", WriteError(path, err)
	}
	return Written, nil
}
