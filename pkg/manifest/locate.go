package manifest

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/cargoadd/pkg/errors"
)

// File selects which of the two well-known manifest files to locate.
type File int

const (
	// ConfigFile is the primary manifest, Cargo.toml.
	ConfigFile File = iota
	// LockFile is the companion lock file, Cargo.lock.
	LockFile
)

// Filename returns the conventional filename for f.
func (f File) Filename() string {
	if f == LockFile {
		return "Cargo.lock"
	}
	return "Cargo.toml"
}

// Find resolves the path of the manifest file to operate on.
//
// If specified names an existing regular file, it is returned unchanged.
// If specified names a directory (or does not exist as a file), the upward
// search starts there. If specified is empty, the search starts at the
// process working directory.
//
// The search checks for <dir>/<filename> at each level and moves to the
// parent until the filesystem root is reached. It never descends and never
// examines siblings; cost is one stat per level. If the root is reached
// without a match, Find fails with ErrCodeManifestNotFound.
func Find(specified string, target File) (string, error) {
	start := specified
	if specified != "" {
		if info, err := os.Stat(specified); err == nil && info.Mode().IsRegular() {
			return specified, nil
		}
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeFileOpen, err, "resolve working directory")
		}
		start = wd
	}
	return search(start, target)
}

// search walks from dir toward the filesystem root looking for the target file.
func search(dir string, target File) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFileOpen, err, "resolve %s", dir)
	}

	name := target.Filename()
	for cur := abs; ; {
		candidate := filepath.Join(cur, name)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", errors.New(errors.ErrCodeManifestNotFound,
				"no %s found in %s or any parent directory", name, abs)
		}
		cur = parent
	}
}
