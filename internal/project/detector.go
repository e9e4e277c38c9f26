// Package project locates the tracker workspace a command runs in.
package project

import (
	"os"
	"path/filepath"
)

// rootMarkers identify a workspace root. The climb stops at the first
// directory holding one of them.
var rootMarkers = []string{".lifescorerc.json", ".lifescorerc.yaml", ".lifescorerc.yml", ".git"}

// FindDataDir resolves dataDir. Absolute paths are returned unchanged. A
// relative path is looked up from startPath upward, stopping at the
// filesystem root or a workspace root; when nothing matches it resolves
// against startPath so the caller reports the expected location.
func FindDataDir(startPath, dataDir string) (string, error) {
	if filepath.IsAbs(dataDir) {
		return dataDir, nil
	}

	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", err
	}

	currentDir := absPath
	for {
		candidate := filepath.Join(currentDir, dataDir)
		if isDir(candidate) {
			return candidate, nil
		}
		if isWorkspaceRoot(currentDir) {
			break
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			break
		}
		currentDir = parent
	}

	return filepath.Join(absPath, dataDir), nil
}

func isWorkspaceRoot(path string) bool {
	for _, marker := range rootMarkers {
		if _, err := os.Stat(filepath.Join(path, marker)); err == nil {
			return true
		}
	}
	return false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
