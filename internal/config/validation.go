package config

import (
	"fmt"
	"slices"
	"strings"
)

const (
	minTimeoutSeconds = 1
	maxTimeoutSeconds = 120
)

// Validate checks if the configuration is valid
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateDetection()...)
	errors = append(errors, c.validateReport()...)

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError
	validLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, c.Logging.Level) {
		errors = append(errors, ValidationError{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v, got '%s'", validLevels, c.Logging.Level),
		})
	}

	validFormats := []string{"json", "text"}
	if !slices.Contains(validFormats, c.Logging.Format) {
		errors = append(errors, ValidationError{
			Path:    "logging.format",
			Message: fmt.Sprintf("must be one of %v, got '%s'", validFormats, c.Logging.Format),
		})
	}

	return errors
}

func (c *Config) validateDetection() []ValidationError {
	var errors []ValidationError

	timeouts := []struct {
		path  string
		value int
	}{
		{"detection.command_timeout_seconds", c.Detection.CommandTimeoutSeconds},
		{"detection.gpu_query_timeout_seconds", c.Detection.GPUQueryTimeoutSeconds},
		{"detection.diagnostics_timeout_seconds", c.Detection.DiagnosticsTimeoutSeconds},
	}

	for _, timeout := range timeouts {
		if timeout.value < minTimeoutSeconds || timeout.value > maxTimeoutSeconds {
			errors = append(errors, ValidationError{
				Path:    timeout.path,
				Message: fmt.Sprintf("must be between %d and %d, got %d", minTimeoutSeconds, maxTimeoutSeconds, timeout.value),
			})
		}
	}

	return errors
}

func (c *Config) validateReport() []ValidationError {
	if strings.TrimSpace(c.Report.OutputPath) != "" {
		return nil
	}

	return []ValidationError{{
		Path:    "report.output_path",
		Message: "must not be empty",
	}}
}
