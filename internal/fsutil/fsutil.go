package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"hwbench/internal/logging"
)

const (
	// DefaultDirPermissions is the permission used for directories created for output files
	DefaultDirPermissions = 0o750
	// DefaultFilePermissions is the default permission for report files
	DefaultFilePermissions = 0o644
)

// EnsureParentDir creates the directory that will contain path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// AtomicWriteFile writes data to a temp file next to path and renames it into
// place, so readers never observe a partially written file.
func AtomicWriteFile(path string, data []byte, perm os.FileMode, logger *logging.Logger) error {
	if err := EnsureParentDir(path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		if removeErr := os.Remove(tmpPath); removeErr != nil && !os.IsNotExist(removeErr) {
			logger.Warn("fsutil.cleanup.failed", "Failed to remove temp file", map[string]interface{}{
				"path":  tmpPath,
				"error": removeErr.Error(),
			})
		}
	}

	if _, err := tmp.Write(data); err != nil {
		CloseWithError(tmp.Close, logger, tmpPath)
		cleanup()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}

// CloseWithError closes a resource and logs any error if a logger is provided.
// This is useful for defer statements where close errors should be handled.
func CloseWithError(closer func() error, logger *logging.Logger, resource string) {
	if err := closer(); err != nil {
		logger.Warn("fsutil.close.failed", fmt.Sprintf("Failed to close %s", resource), map[string]interface{}{
			"error": err.Error(),
		})
	}
}
