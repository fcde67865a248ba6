package texture

import (
	"os"
	"path"
	"path/filepath"
)

// displayFaces lists face textures in order of preference for a UI icon.
var displayFaces = []string{"side", "all", "top", "front", "bottom"}

// Stater is the subset of a filesystem DisplayPath needs.
type Stater interface {
	Stat(name string) (os.FileInfo, error)
}

// DisplayPath returns the slash-separated path, relative to baseDir, of the
// most representative texture for category. Face textures are preferred,
// then filename; when none exists yet it assumes filename will be provided.
func DisplayPath(fsys Stater, baseDir, category, filename string) string {
	names := make([]string, 0, len(displayFaces)+1)
	for _, face := range displayFaces {
		names = append(names, face+".png")
	}
	names = append(names, filename)

	for _, name := range names {
		if info, err := fsys.Stat(filepath.Join(baseDir, category, name)); err == nil && !info.IsDir() {
			return path.Join(category, name)
		}
	}
	return path.Join(category, filename)
}
