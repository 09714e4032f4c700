package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"hwbench/internal/logging"
)

func TestEnsureParentDir(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "creates nested directories",
			path: func(t *testing.T) string {
				t.Helper()
				return filepath.Join(t.TempDir(), "a", "b", "report.json")
			},
		},
		{
			name: "succeeds if directory exists",
			path: func(t *testing.T) string {
				t.Helper()
				return filepath.Join(t.TempDir(), "report.json")
			},
		},
		{
			name: "bare file name",
			path: func(t *testing.T) string {
				t.Helper()
				return "report.json"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path(t)
			if err := EnsureParentDir(path); err != nil {
				t.Fatalf("EnsureParentDir() error = %v", err)
			}

			info, err := os.Stat(filepath.Dir(path))
			if err != nil {
				t.Fatalf("directory not created: %v", err)
			}
			if !info.IsDir() {
				t.Errorf("path is not a directory")
			}
		})
	}
}

func TestAtomicWriteFile(t *testing.T) {
	logger := logging.NewLogger(logging.LevelError)

	tests := []struct {
		name  string
		setup func(t *testing.T) (string, []byte)
	}{
		{
			name: "writes new file atomically",
			setup: func(t *testing.T) (string, []byte) {
				t.Helper()
				return filepath.Join(t.TempDir(), "test.json"), []byte(`{"ok":true}`)
			},
		},
		{
			name: "overwrites existing file",
			setup: func(t *testing.T) (string, []byte) {
				t.Helper()
				path := filepath.Join(t.TempDir(), "existing.json")
				_ = os.WriteFile(path, []byte("old content"), 0o600)
				return path, []byte("new content")
			},
		},
		{
			name: "creates missing parent",
			setup: func(t *testing.T) (string, []byte) {
				t.Helper()
				return filepath.Join(t.TempDir(), "reports", "out.json"), []byte("data")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, data := tt.setup(t)

			if err := AtomicWriteFile(path, data, DefaultFilePermissions, logger); err != nil {
				t.Fatalf("AtomicWriteFile() error = %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read file: %v", err)
			}
			if string(got) != string(data) {
				t.Errorf("file content = %q, want %q", got, data)
			}

			leftovers, _ := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
			if len(leftovers) != 0 {
				t.Errorf("temp files left behind: %v", leftovers)
			}
		})
	}
}

func TestCloseWithError(t *testing.T) {
	logger := logging.NewLogger(logging.LevelError)

	tests := []struct {
		name   string
		closer func() error
	}{
		{"successful close", func() error { return nil }},
		{"close with error", func() error { return os.ErrClosed }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Should not panic
			CloseWithError(tt.closer, logger, "test_resource")
			CloseWithError(tt.closer, nil, "test_resource")
		})
	}
}
