package config

import "time"

// Config represents the complete hwbench configuration
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Detection DetectionConfig `yaml:"detection"`
	Report    ReportConfig    `yaml:"report"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DetectionConfig bounds the external probes run during hardware detection.
type DetectionConfig struct {
	CommandTimeoutSeconds     int   `yaml:"command_timeout_seconds"`
	GPUQueryTimeoutSeconds    int   `yaml:"gpu_query_timeout_seconds"`
	DiagnosticsTimeoutSeconds int   `yaml:"diagnostics_timeout_seconds"`
	EnableNVML                *bool `yaml:"enable_nvml,omitempty"`
}

// CommandTimeout is the budget for wmic, reg, sysctl and lspci probes.
func (d DetectionConfig) CommandTimeout() time.Duration {
	return time.Duration(d.CommandTimeoutSeconds) * time.Second
}

// GPUQueryTimeout is the budget for the wmic and PowerShell GPU queries.
func (d DetectionConfig) GPUQueryTimeout() time.Duration {
	return time.Duration(d.GPUQueryTimeoutSeconds) * time.Second
}

// DiagnosticsTimeout is the budget for the dxdiag dump.
func (d DetectionConfig) DiagnosticsTimeout() time.Duration {
	return time.Duration(d.DiagnosticsTimeoutSeconds) * time.Second
}

// NVMLEnabled reports whether the NVML probe should run. Unset means enabled.
func (d DetectionConfig) NVMLEnabled() bool {
	return d.EnableNVML == nil || *d.EnableNVML
}

// ReportConfig represents report output configuration
type ReportConfig struct {
	OutputPath string `yaml:"output_path"`
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Path + ": " + e.Message
}
