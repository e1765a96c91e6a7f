// Package paths resolves paths against the directory holding the running executable,
// so resources shipped next to a binary are found whatever the working directory is.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/LeviLovie/std-utils/errors"
)

// executable reports the location of the running program.
var executable = os.Executable

// parent returns the directory containing path, or false at a filesystem root.
func parent(path string) (string, bool) {
	dir := filepath.Dir(path)
	if dir == path {
		return "", false
	}
	return dir, true
}

// ExecutableDir returns the directory containing the running executable.
func ExecutableDir() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", errors.Normalize(err)
	}
	return errors.OptionOf(parent(exe)).NormalizeMsg("executable has no parent directory").Get()
}

// RelPath splits path on '/' and joins the segments, in order, onto the executable's
// directory.
func RelPath(path string) (string, error) {
	dir, err := ExecutableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{dir}, strings.Split(path, "/")...)...), nil
}

// Path joins an OS path onto the executable's directory.
func Path(path string) (string, error) {
	dir, err := ExecutableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, path), nil
}
