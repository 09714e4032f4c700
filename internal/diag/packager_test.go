package diag

import (
	"archive/zip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwbench/internal/hardware"
	"hwbench/internal/logging"
	"hwbench/internal/sysinfo"
)

type fakeProfileSource struct {
	logger *logging.Logger
}

func (f fakeProfileSource) DetectAndConfigure(_ context.Context) hardware.Profile {
	f.logger.Warn("hardware.probe.failed", "Probe failed", map[string]interface{}{"probe": "lspci"})
	return hardware.BuildProfile(
		hardware.IdentifyCPU("AMD Ryzen 9 9950X3D 16-Core Processor", 16, 32),
		hardware.IdentifyGPU(""),
	)
}

type fakeInfoSource struct{}

func (fakeInfoSource) Collect(_ context.Context) sysinfo.Info {
	return sysinfo.Info{Platform: "linux", LogicalCPUCount: 32}
}

func fakeSources(trace *logging.Logger) (ProfileSource, InfoSource) {
	return fakeProfileSource{logger: trace}, fakeInfoSource{}
}

func readZIP(t *testing.T, path string) map[string][]byte {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer func() { _ = zr.Close() }()

	entries := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries[f.Name] = data
	}
	return entries
}

func testConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()

	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("logging:\n  level: debug\n"), 0o600))
	logPath := filepath.Join(dir, "tui.log")
	require.NoError(t, os.WriteFile(logPath, []byte(`{"type":"app.started"}`+"\n"), 0o600))

	return &Config{
		ConfigFiles: map[string]string{
			"system.yaml": configPath,
			"user.yaml":   filepath.Join(dir, "absent.yaml"),
		},
		LogFiles:         []string{logPath, filepath.Join(dir, "missing.log")},
		OutputPath:       filepath.Join(dir, "out", "diag.zip"),
		IncludeLogs:      true,
		IncludeConfig:    true,
		IncludeDetection: true,
		Version:          "1.2.3",
	}
}

func TestPackager_CreatePackage(t *testing.T) {
	cfg := testConfig(t)
	packager := NewPackager(cfg, fakeSources, nil)
	packager.now = func() time.Time { return time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC) }

	path, err := packager.CreatePackage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cfg.OutputPath, path)

	entries := readZIP(t, path)
	for _, name := range []string{
		"config/system.yaml",
		"logs/tui.log",
		"detection/profile.json",
		"detection/system_info.json",
		"detection/trace.log",
		ManifestFileName,
	} {
		assert.Contains(t, entries, name)
	}
	assert.NotContains(t, entries, "config/user.yaml")

	var profile hardware.Profile
	require.NoError(t, json.Unmarshal(entries["detection/profile.json"], &profile))
	assert.Equal(t, "AMD Ryzen 9 9950X3D", profile.HardwareInfo.CPU.Name)
	assert.Equal(t, hardware.UnknownGPU, profile.HardwareInfo.GPU.Name)
	assert.Contains(t, string(entries["detection/trace.log"]), "hardware.probe.failed")

	var manifest Manifest
	require.NoError(t, json.Unmarshal(entries[ManifestFileName], &manifest))
	assert.Equal(t, "1.2.3", manifest.HwbenchVersion)
	assert.Equal(t, "2026-05-01T08:00:00Z", manifest.Timestamp)
	require.Len(t, manifest.Files, len(entries)-1)
	for i, f := range manifest.Files {
		if i > 0 {
			assert.Less(t, manifest.Files[i-1].Path, f.Path)
		}
		assert.Equal(t, CalculateSHA256(entries[f.Path]), f.SHA256)
		assert.Equal(t, int64(len(entries[f.Path])), f.SizeBytes)
	}
}

func TestPackager_SelectiveCollection(t *testing.T) {
	cfg := testConfig(t)
	cfg.IncludeLogs = false
	cfg.IncludeDetection = false

	path, err := NewPackager(cfg, fakeSources, nil).CreatePackage(context.Background())
	require.NoError(t, err)

	entries := readZIP(t, path)
	assert.Len(t, entries, 2)
	assert.Contains(t, entries, "config/system.yaml")
	assert.Contains(t, entries, ManifestFileName)
}

func TestPackager_NilSources(t *testing.T) {
	cfg := testConfig(t)

	path, err := NewPackager(cfg, nil, nil).CreatePackage(context.Background())
	require.NoError(t, err)

	entries := readZIP(t, path)
	assert.NotContains(t, entries, "detection/trace.log")
}

func TestPackager_FailedWriteRemovesPartialArchive(t *testing.T) {
	cfg := testConfig(t)
	packager := NewPackager(cfg, fakeSources, nil)
	packager.writeArchive = func(w io.Writer, files map[string][]byte) error {
		if _, err := w.Write([]byte("PK\x03\x04truncated")); err != nil {
			return err
		}
		return errors.New("disk full")
	}

	_, err := packager.CreatePackage(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	_, statErr := os.Stat(cfg.OutputPath)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestPackager_FailedWriteKeepsNoStaleArchive(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.OutputPath), 0o750))
	require.NoError(t, os.WriteFile(cfg.OutputPath, []byte("old package"), 0o600))

	packager := NewPackager(cfg, fakeSources, nil)
	packager.writeArchive = func(io.Writer, map[string][]byte) error {
		return errors.New("encoder failed")
	}

	_, err := packager.CreatePackage(context.Background())
	require.Error(t, err)

	_, statErr := os.Stat(cfg.OutputPath)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestCollector_UnreadableConfigIsReported(t *testing.T) {
	cfg := testConfig(t)
	cfg.ConfigFiles["dir.yaml"] = t.TempDir()

	files, err := NewCollector(cfg, nil, nil).CollectConfig()
	assert.Error(t, err)
	assert.Contains(t, files, "config/system.yaml")
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("0.1.0", "/var/tmp/state")

	assert.Equal(t, "0.1.0", cfg.Version)
	assert.True(t, cfg.IncludeLogs)
	assert.True(t, cfg.IncludeConfig)
	assert.True(t, cfg.IncludeDetection)
	assert.Contains(t, cfg.ConfigFiles, "system.yaml")
	assert.Equal(t, []string{filepath.Join("/var/tmp/state", "tui.log")}, cfg.LogFiles)
	assert.Regexp(t, `^hwbench-diag-\d{8}-\d{6}\.zip$`, cfg.OutputPath)
}

func TestCalculateSHA256(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		CalculateSHA256(nil))
}
