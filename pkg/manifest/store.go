package manifest

import (
	"os"

	"github.com/matzehuels/cargoadd/pkg/errors"
)

// FindFile locates Cargo.toml via [Find] and opens it for reading and
// writing without truncation. The handle is positioned at the start;
// ownership transfers to the caller, who must close it.
//
// Resolution failures surface as ErrCodeManifestNotFound; open failures
// (permission denied, raced deletion) as ErrCodeFileOpen.
func FindFile(path string) (*os.File, error) {
	return openRW(path, ConfigFile)
}

// FindLockFile locates Cargo.lock via [Find] and opens it for reading and
// writing, with the same contract as [FindFile].
func FindLockFile(path string) (*os.File, error) {
	return openRW(path, LockFile)
}

func openRW(path string, target File) (*os.File, error) {
	resolved, err := Find(path, target)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(resolved, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileOpen, err, "open %s", resolved)
	}
	return f, nil
}
