package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"hwbench/internal/hardware"
	"hwbench/internal/logging"
	"hwbench/internal/sysinfo"
	"hwbench/internal/tui"
)

const (
	stateDirName = ".hwbench"
	tuiLogName   = "tui.log"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the detected profile interactively",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(a)
		},
	}
}

// tuiStateDir returns ~/.hwbench, or "" when the home directory is unknown.
func tuiStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, stateDirName)
}

func runTUI(a *app) error {
	stateDir := tuiStateDir()

	// stderr belongs to the terminal UI; log to a file instead.
	logger := a.logger
	if stateDir != "" {
		level, err := logging.ParseLevel(a.cfg.Logging.Level)
		if err != nil {
			level = logging.LevelInfo
		}
		fileLogger, err := logging.NewFileLogger(level, filepath.Join(stateDir, tuiLogName))
		if err == nil {
			defer func() { _ = fileLogger.Close() }()
			logger = fileLogger
		}
	}

	startTime := time.Now()
	logger.Info("app.started", "Application started", map[string]interface{}{
		"version": version,
		"ts":      startTime.UTC().Format(time.RFC3339),
	})

	model := tui.NewModel(
		logger,
		hardware.NewDetector(a.cfg.Detection, logger),
		sysinfo.NewCollector(logger),
		stateDir,
	)

	exitReason := "normal"
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		exitReason = "error"
		logger.Error("app.error", "Application error", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	logger.Info("app.exited", "Application exited", map[string]interface{}{
		"ts":       time.Now().UTC().Format(time.RFC3339),
		"reason":   exitReason,
		"duration": time.Since(startTime).String(),
	})
	return nil
}
