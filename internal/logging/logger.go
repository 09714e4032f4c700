package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Level represents log severity
type Level string

const (
	// LevelDebug indicates fine-grained diagnostic logging.
	LevelDebug Level = "debug"
	// LevelInfo indicates informational logging.
	LevelInfo Level = "info"
	// LevelWarn indicates non-fatal warnings.
	LevelWarn Level = "warn"
	// LevelError indicates error logging requiring attention.
	LevelError Level = "error"
)

// Format selects how events are rendered.
type Format string

const (
	// FormatJSON renders one JSON object per line.
	FormatJSON Format = "json"
	// FormatText renders a short human-readable line.
	FormatText Format = "text"
)

var levelOrder = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ParseLevel converts a config string into a Level.
func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := levelOrder[level]; !ok {
		return LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// Event represents a structured log event
type Event struct {
	Timestamp string                 `json:"ts"`
	Level     Level                  `json:"level"`
	Type      string                 `json:"type"`
	Message   string                 `json:"message"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
}

// Logger provides structured logging
type Logger struct {
	minLevel Level
	format   Format
	output   io.Writer
	logFile  *os.File
}

// NewLogger creates a new JSON logger writing to stderr
func NewLogger(minLevel Level) *Logger {
	return &Logger{
		minLevel: minLevel,
		format:   FormatJSON,
		output:   os.Stderr,
	}
}

// NewLoggerWithFormat creates a logger writing to w in the given format.
func NewLoggerWithFormat(minLevel Level, format Format, w io.Writer) *Logger {
	if format != FormatText {
		format = FormatJSON
	}
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		minLevel: minLevel,
		format:   format,
		output:   w,
	}
}

// NewFileLogger creates a new logger writing to a file
func NewFileLogger(minLevel Level, logFilePath string) (*Logger, error) {
	logDir := filepath.Dir(logFilePath)
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(filepath.Clean(logFilePath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &Logger{
		minLevel: minLevel,
		format:   FormatJSON,
		output:   logFile,
		logFile:  logFile,
	}, nil
}

// Close closes the log file if open
func (l *Logger) Close() error {
	if l.logFile != nil {
		return l.logFile.Close()
	}
	return nil
}

// Log writes a structured log event
func (l *Logger) Log(level Level, eventType, message string, payload map[string]interface{}) {
	if l == nil || !l.shouldLog(level) {
		return
	}

	event := Event{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Type:      eventType,
		Message:   message,
		Payload:   payload,
	}

	var line string
	if l.format == FormatText {
		line = renderText(event)
	} else {
		data, err := json.Marshal(event)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to marshal log event: %v\n", err)
			return
		}
		line = string(data)
	}

	output := l.output
	if output == nil {
		output = os.Stderr
	}

	if _, err := fmt.Fprintln(output, line); err != nil {
		// Best-effort logging: fallback to stderr when the primary writer fails
		if output != os.Stderr {
			fmt.Fprintf(os.Stderr, "Failed to write log event: %v\n", err)
		}
	}
}

// Debug logs a debug-level event
func (l *Logger) Debug(eventType, message string, payload map[string]interface{}) {
	l.Log(LevelDebug, eventType, message, payload)
}

// Info logs an info-level event
func (l *Logger) Info(eventType, message string, payload map[string]interface{}) {
	l.Log(LevelInfo, eventType, message, payload)
}

// Warn logs a warn-level event
func (l *Logger) Warn(eventType, message string, payload map[string]interface{}) {
	l.Log(LevelWarn, eventType, message, payload)
}

// Error logs an error-level event
func (l *Logger) Error(eventType, message string, payload map[string]interface{}) {
	l.Log(LevelError, eventType, message, payload)
}

// shouldLog determines if a log level should be output
func (l *Logger) shouldLog(level Level) bool {
	return levelOrder[level] >= levelOrder[l.minLevel]
}

var levelStyles = map[Level]lipgloss.Style{
	LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
	LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("#5fafff")),
	LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd700")).Bold(true),
	LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true),
}

// renderText formats an event as "ts LEVEL type message key=value ..."
// with payload keys sorted for stable output.
func renderText(event Event) string {
	var b strings.Builder
	b.WriteString(event.Timestamp)
	b.WriteString(" ")
	b.WriteString(levelStyles[event.Level].Render(strings.ToUpper(string(event.Level))))
	b.WriteString(" ")
	b.WriteString(event.Type)
	b.WriteString(" ")
	b.WriteString(event.Message)

	keys := make([]string, 0, len(event.Payload))
	for k := range event.Payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, event.Payload[k])
	}
	return b.String()
}
