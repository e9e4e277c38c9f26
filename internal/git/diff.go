package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/dotcommander/lifescore/internal/discovery"
)

// StagedRecords returns the staged record files under dataDir as
// slash-separated paths relative to dataDir. Outside a git repository it
// returns an empty slice.
func StagedRecords(dataDir string) ([]string, error) {
	return records(dataDir, "diff", "--name-only", "--staged")
}

// ChangedRecords returns every uncommitted record file under dataDir, staged
// or not. In a repository without commits every tracked file counts.
func ChangedRecords(dataDir string) ([]string, error) {
	if !IsRepo(dataDir) {
		return []string{}, nil
	}
	if _, err := run(dataDir, "rev-parse", "HEAD"); err != nil {
		return records(dataDir, "ls-files")
	}
	return records(dataDir, "diff", "--name-only", "HEAD")
}

// IsRepo checks if dir is inside a git work tree.
func IsRepo(dir string) bool {
	_, err := run(dir, "rev-parse", "--git-dir")
	return err == nil
}

func records(dataDir string, args ...string) ([]string, error) {
	if !IsRepo(dataDir) {
		return []string{}, nil
	}
	top, err := run(dataDir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("git rev-parse --show-toplevel failed: %w", err)
	}
	out, err := run(dataDir, args...)
	if err != nil {
		return nil, fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}

	root, err := filepath.EvalSymlinks(dataDir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve %s: %w", dataDir, err)
	}
	return filterRecordFiles(out, strings.TrimSpace(top), root), nil
}

func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// filterRecordFiles keeps the listed paths that still exist, sit under
// dataDir and name a known record kind.
func filterRecordFiles(gitOutput, repoRoot, dataDir string) []string {
	files := []string{}
	for _, line := range strings.Split(gitOutput, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		absPath := filepath.Join(repoRoot, filepath.FromSlash(line))
		// Deletions are listed too.
		if _, err := os.Stat(absPath); err != nil {
			continue
		}
		if _, err := discovery.DetectKind(absPath, dataDir); err != nil {
			continue
		}

		rel, err := filepath.Rel(dataDir, absPath)
		if err != nil {
			continue
		}
		files = append(files, filepath.ToSlash(rel))
	}
	return files
}
