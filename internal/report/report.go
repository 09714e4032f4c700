package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"hwbench/internal/fsutil"
	"hwbench/internal/hardware"
	"hwbench/internal/logging"
	"hwbench/internal/score"
	"hwbench/internal/sysinfo"
)

// ErrEmptyResults is returned when a results file holds no JSON document.
var ErrEmptyResults = errors.New("results file is empty")

// ErrNonFiniteValue is returned for results written with bare Infinity or NaN
// tokens, which JSON does not allow. Some benchmark runners emit them when a
// timed section measures zero elapsed time.
var ErrNonFiniteValue = errors.New("results contain a non-finite number (Infinity or NaN); rerun the benchmark with a larger workload")

// nonFiniteToken matches Infinity/NaN used as a JSON value, not inside a string.
var nonFiniteToken = regexp.MustCompile(`[:\[,]\s*-?(?:Infinity|NaN)\s*[,\]}]`)

// Results is a benchmark results document. Raw is embedded into reports
// unchanged; Parsed is the subset needed for scoring.
type Results struct {
	Raw    json.RawMessage
	Parsed score.Results
}

// Report is the persisted benchmark report. Field names are a stable
// contract shared with other consumers of the file.
type Report struct {
	GeneratedAt    time.Time                    `json:"generated_at"`
	SystemInfo     sysinfo.Info                 `json:"system_info"`
	HardwareInfo   *hardware.HardwareInfo       `json:"hardware_info,omitempty"`
	TestParameters *hardware.WorkloadParameters `json:"test_parameters,omitempty"`
	TestResults    json.RawMessage              `json:"test_results"`
	Scores         score.Scores                 `json:"scores"`
}

// LoadResults reads and parses a results JSON file.
func LoadResults(path string) (Results, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Results{}, fmt.Errorf("failed to read results file: %w", err)
	}
	return ParseResults(data)
}

// ParseResults parses a results JSON document.
func ParseResults(data []byte) (Results, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Results{}, ErrEmptyResults
	}

	var parsed score.Results
	if err := json.Unmarshal(data, &parsed); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) && nonFiniteToken.Match(data) {
			return Results{}, fmt.Errorf("failed to parse results at offset %d: %w", syntaxErr.Offset, ErrNonFiniteValue)
		}
		return Results{}, fmt.Errorf("failed to parse results: %w", err)
	}

	return Results{Raw: json.RawMessage(data), Parsed: parsed}, nil
}

// Build scores results and assembles a report. profile may be nil when
// hardware detection was skipped.
func Build(sys sysinfo.Info, profile *hardware.Profile, results Results, now time.Time) Report {
	raw := results.Raw
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}

	r := Report{
		GeneratedAt: now.UTC(),
		SystemInfo:  sys,
		TestResults: raw,
		Scores:      score.Calculate(results.Parsed),
	}
	if profile != nil {
		hw := profile.HardwareInfo
		params := profile.TestParameters
		r.HardwareInfo = &hw
		r.TestParameters = &params
	}
	return r
}

// Save writes the report as indented JSON, replacing path atomically.
func (r Report) Save(path string, logger *logging.Logger) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	data = append(data, '\n')

	if err := fsutil.AtomicWriteFile(path, data, fsutil.DefaultFilePermissions, logger); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.Info("report.saved", "Benchmark report saved", map[string]interface{}{
		"path":  path,
		"total": r.Scores.Total,
	})
	return nil
}

// Load reads a report previously written by Save.
func Load(path string) (Report, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Report{}, fmt.Errorf("failed to read report: %w", err)
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("failed to parse report: %w", err)
	}
	return r, nil
}
