package configdir

import (
	"path/filepath"
	"testing"
)

func TestConfigDir_Default(t *testing.T) {
	t.Setenv("HWBENCH_CONFIG_DIR", "")

	if got := ConfigDir(); got != defaultConfigDir {
		t.Errorf("ConfigDir() = %s, want %s", got, defaultConfigDir)
	}
}

func TestConfigDir_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HWBENCH_CONFIG_DIR", dir)

	want, _ := filepath.Abs(dir)
	if got := ConfigDir(); got != want {
		t.Errorf("ConfigDir() = %s, want %s", got, want)
	}
}
