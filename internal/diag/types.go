package diag

import (
	"context"
	"path/filepath"
	"time"

	"hwbench/internal/config"
	"hwbench/internal/hardware"
	"hwbench/internal/logging"
	"hwbench/internal/sysinfo"
)

// ManifestFileName is the archive entry that lists every other entry.
const ManifestFileName = "diag_manifest.json"

// Manifest represents the diagnostic package manifest
type Manifest struct {
	Timestamp      string         `json:"timestamp"`
	Host           string         `json:"host"`
	HwbenchVersion string         `json:"hwbench_version"`
	Files          []ManifestFile `json:"files"`
}

// ManifestFile represents a file in the diagnostic package
type ManifestFile struct {
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
	SHA256    string `json:"sha256"`
}

// ProfileSource runs a detection pass.
type ProfileSource interface {
	DetectAndConfigure(ctx context.Context) hardware.Profile
}

// InfoSource reads host facts.
type InfoSource interface {
	Collect(ctx context.Context) sysinfo.Info
}

// SourceFactory builds detection sources that log to trace, so the bundle
// records which probes ran and why they failed.
type SourceFactory func(trace *logging.Logger) (ProfileSource, InfoSource)

// Config configures diagnostic collection
type Config struct {
	// ConfigFiles maps archive names under config/ to files on disk.
	ConfigFiles      map[string]string
	LogFiles         []string
	OutputPath       string
	IncludeLogs      bool
	IncludeConfig    bool
	IncludeDetection bool
	Version          string
}

// NewConfig creates a default diagnostic config. stateDir holds the TUI log
// and may be empty.
func NewConfig(version, stateDir string) *Config {
	cfg := &Config{
		ConfigFiles: map[string]string{
			"system.yaml": config.SystemConfigPath(),
		},
		OutputPath:       generateOutputPath(time.Now()),
		IncludeLogs:      true,
		IncludeConfig:    true,
		IncludeDetection: true,
		Version:          version,
	}

	if userPath := config.UserConfigPath(); userPath != "" {
		cfg.ConfigFiles["user.yaml"] = userPath
	}
	if stateDir != "" {
		cfg.LogFiles = append(cfg.LogFiles, filepath.Join(stateDir, "tui.log"))
	}

	return cfg
}

func generateOutputPath(now time.Time) string {
	return "hwbench-diag-" + now.UTC().Format("20060102-150405") + ".zip"
}
