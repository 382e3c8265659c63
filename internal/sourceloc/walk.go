package sourceloc

import (
	"os"
	"path/filepath"

	"github.com/archguard/archguard/internal/manifest"
)

func statFile(path string) (fileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fileInfo{}, err
	}
	return fileInfo{isDir: info.IsDir()}, nil
}

// findNearestManifest walks upward from dir looking for a manifest file,
// stopping at the filesystem root.
func findNearestManifest(dir string) (manifestDir, manifestPath string, found bool) {
	current := dir
	for {
		candidate := filepath.Join(current, manifest.Name)
		if _, err := os.Stat(candidate); err == nil {
			return current, candidate, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", "", false
		}
		current = parent
	}
}
