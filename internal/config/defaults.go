package config

// DefaultReportPath is where reports are written when nothing else is configured.
const DefaultReportPath = "benchmark_report.json"

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Detection: DetectionConfig{
			CommandTimeoutSeconds:     10,
			GPUQueryTimeoutSeconds:    15,
			DiagnosticsTimeoutSeconds: 20,
		},
		Report: ReportConfig{
			OutputPath: DefaultReportPath,
		},
	}
}
