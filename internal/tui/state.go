package tui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hwbench/internal/fsutil"
	"hwbench/internal/logging"
)

const (
	// UIStateFileName is the name of the UI state file
	UIStateFileName = "ui_state.json"
)

// UIStateManager persists the last screen and selection between sessions
type UIStateManager struct {
	stateDir string
	logger   *logging.Logger
}

// NewUIStateManager creates a new UI state manager. An empty stateDir
// disables persistence.
func NewUIStateManager(stateDir string, logger *logging.Logger) *UIStateManager {
	return &UIStateManager{
		stateDir: stateDir,
		logger:   logger,
	}
}

func (m *UIStateManager) statePath() string {
	return filepath.Join(m.stateDir, UIStateFileName)
}

func defaultUIState() *UIState {
	return &UIState{
		CurrentScreen: ScreenMenu,
		Updated:       time.Now().UTC(),
	}
}

// Load loads the UI state from disk. A missing file yields the default state;
// a screen unknown to this build resets to the menu.
func (m *UIStateManager) Load() (*UIState, error) {
	if m.stateDir == "" {
		return defaultUIState(), nil
	}

	data, err := os.ReadFile(m.statePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultUIState(), nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state UIState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}

	if !validScreen(state.CurrentScreen) {
		state.CurrentScreen = ScreenMenu
		state.Selection = 0
	}

	return &state, nil
}

// Save saves the UI state to disk
func (m *UIStateManager) Save(state *UIState) error {
	if m.stateDir == "" {
		return nil
	}

	state.Updated = time.Now().UTC()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := fsutil.AtomicWriteFile(m.statePath(), data, 0o600, m.logger); err != nil {
		return err
	}

	m.logger.Debug("tui.state.saved", "UI state saved", map[string]interface{}{
		"screen":    state.CurrentScreen,
		"selection": state.Selection,
	})

	return nil
}
