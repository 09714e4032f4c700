package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"hwbench/internal/configdir"
)

const (
	systemConfigFile = "config.yaml"
	userConfigDir    = ".hwbench"
	userConfigFile   = "config.yaml"
)

// Load loads and merges configuration from system and user files
// Priority: defaults < system config < user config
func Load() (Config, error) {
	cfg := DefaultConfig()

	systemPath := filepath.Join(configdir.ConfigDir(), systemConfigFile)
	if err := mergeConfigFile(&cfg, systemPath); err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to load system config: %w", err)
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		userPath := filepath.Join(homeDir, userConfigDir, userConfigFile)
		if err := mergeConfigFile(&cfg, userPath); err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("failed to load user config: %w", err)
			}
		}
	}

	if validationErrors := cfg.Validate(); len(validationErrors) > 0 {
		return cfg, fmt.Errorf("config.validation.error: %v", formatValidationErrors(validationErrors))
	}

	return cfg, nil
}

// LoadFrom loads configuration from a specific file path
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := mergeConfigFile(&cfg, path); err != nil {
		return cfg, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	if validationErrors := cfg.Validate(); len(validationErrors) > 0 {
		return cfg, fmt.Errorf("config.validation.error: %v", formatValidationErrors(validationErrors))
	}

	return cfg, nil
}

// mergeConfigFile reads a YAML file and merges it into the existing config
func mergeConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 -- path is constructed from trusted sources
	if err != nil {
		return err
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfig(cfg, &overlay)

	return nil
}

// mergeConfig merges non-zero values from src into dst
func mergeConfig(dst, src *Config) {
	if src.Logging.Level != "" {
		dst.Logging.Level = src.Logging.Level
	}
	if src.Logging.Format != "" {
		dst.Logging.Format = src.Logging.Format
	}

	if src.Detection.CommandTimeoutSeconds != 0 {
		dst.Detection.CommandTimeoutSeconds = src.Detection.CommandTimeoutSeconds
	}
	if src.Detection.GPUQueryTimeoutSeconds != 0 {
		dst.Detection.GPUQueryTimeoutSeconds = src.Detection.GPUQueryTimeoutSeconds
	}
	if src.Detection.DiagnosticsTimeoutSeconds != 0 {
		dst.Detection.DiagnosticsTimeoutSeconds = src.Detection.DiagnosticsTimeoutSeconds
	}
	if src.Detection.EnableNVML != nil {
		enabled := *src.Detection.EnableNVML
		dst.Detection.EnableNVML = &enabled
	}

	if src.Report.OutputPath != "" {
		dst.Report.OutputPath = src.Report.OutputPath
	}
}

// formatValidationErrors formats validation errors for display
func formatValidationErrors(errors []ValidationError) string {
	if len(errors) == 0 {
		return ""
	}
	if len(errors) == 1 {
		return errors[0].Error()
	}
	result := fmt.Sprintf("%d validation errors:\n", len(errors))
	for _, err := range errors {
		result += "  - " + err.Error() + "\n"
	}
	return result
}

// SystemConfigPath returns the path to the system configuration file
func SystemConfigPath() string {
	return filepath.Join(configdir.ConfigDir(), systemConfigFile)
}

// UserConfigPath returns the path to the user configuration file
func UserConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, userConfigDir, userConfigFile)
}
