package diag

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"hwbench/internal/fsutil"
	"hwbench/internal/logging"
)

// Packager creates diagnostic ZIP packages
type Packager struct {
	config    *Config
	collector *Collector
	logger    *logging.Logger
	now       func() time.Time
	// writeArchive encodes files into w; replaced in tests.
	writeArchive func(w io.Writer, files map[string][]byte) error
}

// NewPackager creates a new diagnostic packager
func NewPackager(config *Config, sources SourceFactory, logger *logging.Logger) *Packager {
	return &Packager{
		config:       config,
		collector:    NewCollector(config, sources, logger),
		logger:       logger,
		now:          time.Now,
		writeArchive: writeZIP,
	}
}

// CreatePackage collects every artifact and writes the ZIP. A failing
// collector is logged and the package is written with what remains.
func (p *Packager) CreatePackage(ctx context.Context) (string, error) {
	p.logger.Info("diag.package.start", "Creating diagnostic package", map[string]interface{}{
		"output": p.config.OutputPath,
	})

	allFiles := make(map[string][]byte)

	steps := []struct {
		name    string
		collect func() (map[string][]byte, error)
	}{
		{"logs", p.collector.CollectLogs},
		{"config", p.collector.CollectConfig},
		{"detection", func() (map[string][]byte, error) { return p.collector.CollectDetection(ctx) }},
	}

	for _, step := range steps {
		files, err := step.collect()
		if err != nil {
			p.logger.Error("diag.package."+step.name+"_error", "Failed to collect "+step.name, map[string]interface{}{
				"error": err.Error(),
			})
		}
		for path, content := range files {
			allFiles[path] = content
		}
	}

	manifestJSON, err := json.MarshalIndent(p.createManifest(allFiles), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}
	allFiles[ManifestFileName] = manifestJSON

	if err := p.createZIP(allFiles); err != nil {
		return "", fmt.Errorf("failed to create ZIP: %w", err)
	}

	p.logger.Info("diag.package.complete", "Diagnostic package created", map[string]interface{}{
		"output":     p.config.OutputPath,
		"file_count": len(allFiles),
	})

	return p.config.OutputPath, nil
}

// createManifest lists files sorted by path
func (p *Packager) createManifest(files map[string][]byte) *Manifest {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	manifest := &Manifest{
		Timestamp:      p.now().UTC().Format(time.RFC3339),
		Host:           p.collector.redactor.Redact(hostname),
		HwbenchVersion: p.config.Version,
		Files:          make([]ManifestFile, 0, len(files)),
	}

	for _, path := range sortedPaths(files) {
		content := files[path]
		manifest.Files = append(manifest.Files, ManifestFile{
			Path:      path,
			SizeBytes: int64(len(content)),
			SHA256:    CalculateSHA256(content),
		})
	}

	return manifest
}

// createZIP writes the archive to OutputPath. On failure the partial file is
// removed so no truncated package is left behind.
func (p *Packager) createZIP(files map[string][]byte) (err error) {
	if err := fsutil.EnsureParentDir(p.config.OutputPath); err != nil {
		return err
	}

	zipFile, err := os.Create(p.config.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		fsutil.CloseWithError(zipFile.Close, p.logger, p.config.OutputPath)
		if err == nil {
			return
		}
		if removeErr := os.Remove(p.config.OutputPath); removeErr != nil && !os.IsNotExist(removeErr) {
			p.logger.Warn("diag.package.cleanup_failed", "Failed to remove partial package", map[string]interface{}{
				"path":  p.config.OutputPath,
				"error": removeErr.Error(),
			})
		}
	}()

	return p.writeArchive(zipFile, files)
}

func writeZIP(w io.Writer, files map[string][]byte) error {
	zipWriter := zip.NewWriter(w)

	for _, path := range sortedPaths(files) {
		writer, err := zipWriter.Create(path)
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", path, err)
		}
		if _, err := writer.Write(files[path]); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("failed to finalize ZIP: %w", err)
	}
	return nil
}

func sortedPaths(files map[string][]byte) []string {
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
