package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dotcommander/lifescore/internal/types"
)

// KindPattern maps a glob pattern to a record kind for kind detection.
// Patterns are matched in order; first match wins.
type KindPattern struct {
	Pattern string
	Kind    string
}

// kindPatterns mirror the patterns used by DiscoverFiles. Order matters:
// exact filenames come before directory globs.
var kindPatterns = []KindPattern{
	{"goals.{yaml,yml,json}", types.KindGoals},
	{"principles.{yaml,yml,json}", types.KindPrinciples},
	{"export*.json", types.KindExport},

	{"daily/**/*.{yaml,yml,json}", types.KindDaily},
	{"weekly/**/*.{yaml,yml,json}", types.KindWeekly},
	{"monthly/**/*.{yaml,yml,json}", types.KindMonthly},
}

// KindEntry defines the discovery configuration for one record kind.
type KindEntry struct {
	Kind     string
	Patterns []string
}

// DefaultKinds is the registry of record kinds and their discovery patterns.
// Export files come first so per-kind files loaded later can be checked
// against them for duplicates.
var DefaultKinds = []KindEntry{
	{Kind: types.KindExport, Patterns: []string{"export*.json"}},
	{Kind: types.KindDaily, Patterns: []string{"daily/**/*.{yaml,yml,json}"}},
	{Kind: types.KindWeekly, Patterns: []string{"weekly/**/*.{yaml,yml,json}"}},
	{Kind: types.KindMonthly, Patterns: []string{"monthly/**/*.{yaml,yml,json}"}},
	{Kind: types.KindGoals, Patterns: []string{"goals.{yaml,yml,json}"}},
	{Kind: types.KindPrinciples, Patterns: []string{"principles.{yaml,yml,json}"}},
}

// DetectKind determines the record kind of a file from its path relative to
// the data directory.
func DetectKind(absPath, rootPath string) (string, error) {
	relPath, err := filepath.Rel(rootPath, absPath)
	if err != nil {
		return "", fmt.Errorf("cannot compute relative path from %s to %s: %w", rootPath, absPath, err)
	}
	relPath = filepath.ToSlash(relPath)

	if strings.HasPrefix(relPath, "..") {
		return "", fmt.Errorf("file is outside data directory: %s", absPath)
	}

	for _, kp := range kindPatterns {
		matched, err := doublestar.Match(kp.Pattern, relPath)
		if err != nil {
			continue
		}
		if matched {
			return kp.Kind, nil
		}
	}

	return "", fmt.Errorf(
		"cannot determine record kind: %s is not under daily/, weekly/, or monthly/ "+
			"and is not goals, principles, or an export file", relPath)
}

// File represents a discovered record file.
type File struct {
	Path    string
	RelPath string
	Size    int64
	Kind    string
}

// FileDiscovery finds record files under a data directory.
type FileDiscovery struct {
	rootPath string
}

// NewFileDiscovery creates a new FileDiscovery instance
func NewFileDiscovery(rootPath string) *FileDiscovery {
	return &FileDiscovery{rootPath: rootPath}
}

// DiscoverFiles finds every record file using the default registry.
func (fd *FileDiscovery) DiscoverFiles() ([]File, error) {
	return fd.DiscoverFilesWithRegistry(DefaultKinds)
}

// DiscoverFilesWithRegistry finds files using a custom registry. Files are
// grouped by registry order and sorted by relative path within a kind. A
// file matched by more than one pattern is reported once, under the first.
func (fd *FileDiscovery) DiscoverFilesWithRegistry(registry []KindEntry) ([]File, error) {
	info, err := os.Stat(fd.rootPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("data directory not found: %s", fd.rootPath)
		}
		return nil, fmt.Errorf("cannot access data directory %s: %w", fd.rootPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data path is not a directory: %s", fd.rootPath)
	}

	var files []File
	seen := make(map[string]bool)

	for _, entry := range registry {
		discovered, err := fd.findFilesByPattern(entry.Patterns)
		if err != nil {
			return nil, fmt.Errorf("error discovering %s files: %w", entry.Kind, err)
		}
		sort.Slice(discovered, func(i, j int) bool {
			return discovered[i].RelPath < discovered[j].RelPath
		})
		for _, f := range discovered {
			if seen[f.RelPath] {
				continue
			}
			seen[f.RelPath] = true
			f.Kind = entry.Kind
			files = append(files, f)
		}
	}

	return files, nil
}

// findFilesByPattern finds regular files matching the given glob patterns
func (fd *FileDiscovery) findFilesByPattern(patterns []string) ([]File, error) {
	var files []File

	for _, pattern := range patterns {
		matches, err := doublestar.Glob(os.DirFS(fd.rootPath), pattern)
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			fullPath := filepath.Join(fd.rootPath, filepath.FromSlash(match))
			info, err := os.Stat(fullPath)
			if err != nil || info.IsDir() {
				continue
			}
			files = append(files, File{
				Path:    fullPath,
				RelPath: match,
				Size:    info.Size(),
			})
		}
	}

	return files, nil
}
