package project

import (
	"os"
	"path/filepath"
	"testing"
)

func mkdir(t *testing.T, parts ...string) string {
	t.Helper()
	dir := filepath.Join(parts...)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
	return dir
}

// TestFindDataDir tests data directory lookup climbing up the directory tree
func TestFindDataDir(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(t *testing.T) (start, dataDir, want string)
	}{
		{
			name: "data directory in start path",
			setupFunc: func(t *testing.T) (string, string, string) {
				tmpDir := t.TempDir()
				data := mkdir(t, tmpDir, "data")
				return tmpDir, "data", data
			},
		},
		{
			name: "data directory in an ancestor",
			setupFunc: func(t *testing.T) (string, string, string) {
				tmpDir := t.TempDir()
				data := mkdir(t, tmpDir, "data")
				sub := mkdir(t, tmpDir, "notes", "2024")
				return sub, "data", data
			},
		},
		{
			name: "nested relative path",
			setupFunc: func(t *testing.T) (string, string, string) {
				tmpDir := t.TempDir()
				data := mkdir(t, tmpDir, "tracker", "records")
				sub := mkdir(t, tmpDir, "tracker", "records", "daily")
				return sub, filepath.Join("tracker", "records"), data
			},
		},
		{
			name: "climb stops at workspace root",
			setupFunc: func(t *testing.T) (string, string, string) {
				tmpDir := t.TempDir()
				mkdir(t, tmpDir, "data")
				root := mkdir(t, tmpDir, "inner")
				if err := os.WriteFile(filepath.Join(root, ".lifescorerc.yaml"), []byte("format: json\n"), 0644); err != nil {
					t.Fatalf("failed to write rc file: %v", err)
				}
				sub := mkdir(t, root, "deep")
				return sub, "data", filepath.Join(sub, "data")
			},
		},
		{
			name: "git directory marks the root",
			setupFunc: func(t *testing.T) (string, string, string) {
				tmpDir := t.TempDir()
				mkdir(t, tmpDir, "data")
				root := mkdir(t, tmpDir, "repo")
				mkdir(t, root, ".git")
				return root, "data", filepath.Join(root, "data")
			},
		},
		{
			name: "absolute path unchanged",
			setupFunc: func(t *testing.T) (string, string, string) {
				abs := filepath.Join(t.TempDir(), "anywhere")
				return ".", abs, abs
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, dataDir, want := tt.setupFunc(t)
			got, err := FindDataDir(start, dataDir)
			if err != nil {
				t.Fatalf("FindDataDir() error = %v", err)
			}
			if got != want {
				t.Errorf("FindDataDir() = %q, want %q", got, want)
			}
		})
	}
}

func TestFindDataDirNotFound(t *testing.T) {
	tmpDir := t.TempDir()
	mkdir(t, tmpDir, ".git")

	got, err := FindDataDir(tmpDir, "missing-data-dir")
	if err != nil {
		t.Fatalf("FindDataDir() error = %v", err)
	}
	if want := filepath.Join(tmpDir, "missing-data-dir"); got != want {
		t.Errorf("FindDataDir() = %q, want %q", got, want)
	}
}
