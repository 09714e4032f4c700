package diag

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"hwbench/internal/logging"
)

// Collector gathers diagnostic artifacts
type Collector struct {
	config   *Config
	redactor *Redactor
	sources  SourceFactory
	logger   *logging.Logger
}

// NewCollector creates a new diagnostic collector. sources may be nil, in
// which case no detection artifacts are collected.
func NewCollector(config *Config, sources SourceFactory, logger *logging.Logger) *Collector {
	return &Collector{
		config:   config,
		redactor: NewRedactor(),
		sources:  sources,
		logger:   logger,
	}
}

// CollectLogs gathers the configured log files
func (c *Collector) CollectLogs() (map[string][]byte, error) {
	if !c.config.IncludeLogs {
		return nil, nil
	}

	files := make(map[string][]byte)
	var errs []error

	for _, path := range c.config.LogFiles {
		content, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				c.logger.Warn("diag.collect.logs.missing", "Log file not found", map[string]interface{}{
					"path": path,
				})
				continue
			}
			errs = append(errs, fmt.Errorf("failed to read log %s: %w", path, err))
			continue
		}
		files["logs/"+filepath.Base(path)] = []byte(c.redactor.Redact(string(content)))
	}

	c.logger.Info("diag.collect.logs.complete", "Log collection complete", map[string]interface{}{
		"file_count": len(files),
	})

	return files, errors.Join(errs...)
}

// CollectConfig gathers and redacts the configuration files that exist
func (c *Collector) CollectConfig() (map[string][]byte, error) {
	if !c.config.IncludeConfig {
		return nil, nil
	}

	files := make(map[string][]byte)
	var errs []error

	names := make([]string, 0, len(c.config.ConfigFiles))
	for name := range c.config.ConfigFiles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := c.config.ConfigFiles[name]
		content, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			errs = append(errs, fmt.Errorf("failed to read config %s: %w", path, err))
			continue
		}
		files["config/"+name] = []byte(c.redactor.Redact(string(content)))
	}

	c.logger.Info("diag.collect.config.complete", "Config collection complete", map[string]interface{}{
		"file_count": len(files),
	})

	return files, errors.Join(errs...)
}

// CollectDetection runs one detection pass with a debug trace logger and
// returns the profile, system info and the trace.
func (c *Collector) CollectDetection(ctx context.Context) (map[string][]byte, error) {
	if !c.config.IncludeDetection || c.sources == nil {
		return nil, nil
	}

	var trace bytes.Buffer
	traceLogger := logging.NewLoggerWithFormat(logging.LevelDebug, logging.FormatJSON, &trace)

	profileSource, infoSource := c.sources(traceLogger)

	files := make(map[string][]byte)

	if profileSource != nil {
		profile := profileSource.DetectAndConfigure(ctx)
		data, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return files, fmt.Errorf("failed to marshal profile: %w", err)
		}
		files["detection/profile.json"] = data
	}

	if infoSource != nil {
		info := infoSource.Collect(ctx)
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return files, fmt.Errorf("failed to marshal system info: %w", err)
		}
		files["detection/system_info.json"] = []byte(c.redactor.Redact(string(data)))
	}

	files["detection/trace.log"] = []byte(c.redactor.Redact(trace.String()))

	c.logger.Info("diag.collect.detection.complete", "Detection collection complete", map[string]interface{}{
		"file_count": len(files),
	})

	return files, nil
}

// CalculateSHA256 computes SHA256 hash of data
func CalculateSHA256(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
