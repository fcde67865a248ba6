package provision

import (
	"os"

	"github.com/spf13/afero"
)

// Filesystem is the narrow set of filesystem operations the provisioner
// needs. afero.Fs satisfies it, so tests can run against afero.NewMemMapFs.
type Filesystem interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	OpenFile(name string, flag int, perm os.FileMode) (afero.File, error)
	Remove(name string) error
}

// OSFilesystem returns the real operating system filesystem.
func OSFilesystem() afero.Fs {
	return afero.NewOsFs()
}

// DryRunFilesystem layers an in-memory filesystem over base. Reads see base;
// every write lands in memory and is discarded with the returned value.
func DryRunFilesystem(base afero.Fs) afero.Fs {
	return afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(base), afero.NewMemMapFs())
}
