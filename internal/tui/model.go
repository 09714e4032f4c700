package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hwbench/internal/hardware"
	"hwbench/internal/logging"
	"hwbench/internal/sysinfo"
)

// Model represents the TUI application state
type Model struct {
	startTime time.Time
	quitting  bool

	logger  *logging.Logger
	profile ProfileSource
	info    InfoSource

	// UI State
	currentScreen Screen
	selection     int
	lastError     string
	stateManager  *UIStateManager

	// Detection State
	detected     hardware.Profile
	hasProfile   bool
	detecting    bool
	detectedAt   time.Time
	system       sysinfo.Info
	detectCtx    context.Context
	cancelDetect context.CancelFunc
}

const down = "down"

// detectionDoneMsg carries the result of a background detection pass.
type detectionDoneMsg struct {
	profile hardware.Profile
	system  sysinfo.Info
	at      time.Time
}

// NewModel creates a new TUI model. Detection starts from Init so the first
// frame renders immediately.
func NewModel(logger *logging.Logger, profile ProfileSource, info InfoSource, stateDir string) Model {
	m := Model{
		startTime:     time.Now(),
		logger:        logger,
		profile:       profile,
		info:          info,
		currentScreen: ScreenMenu,
		selection:     0,
		stateManager:  NewUIStateManager(stateDir, logger),
		detecting:     true,
	}
	m.detectCtx, m.cancelDetect = context.WithCancel(context.Background())

	if state, err := m.stateManager.Load(); err == nil {
		m.currentScreen = state.CurrentScreen
		m.selection = state.Selection
		m.lastError = state.LastError
	} else {
		logger.Warn("tui.state.load_failed", "Failed to load UI state", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if m.selection < 0 || m.selection >= len(DefaultMenuItems()) {
		m.selection = 0
	}

	return m
}

// Init starts the first detection pass
func (m Model) Init() tea.Cmd {
	return m.detectCmd(m.detectCtx)
}

// detectCmd runs one pass under ctx. Quitting cancels ctx, so detectors still
// waiting on external commands return early.
func (m Model) detectCmd(ctx context.Context) tea.Cmd {
	profile, info := m.profile, m.info
	return func() tea.Msg {
		msg := detectionDoneMsg{at: time.Now()}
		if profile != nil {
			msg.profile = profile.DetectAndConfigure(ctx)
		}
		if info != nil {
			msg.system = info.Collect(ctx)
		}
		return msg
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detectionDoneMsg:
		return m.applyDetection(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m Model) applyDetection(msg detectionDoneMsg) Model {
	m.stopDetection()
	m.detected = msg.profile
	m.system = msg.system
	m.hasProfile = m.profile != nil
	m.detecting = false
	m.detectedAt = msg.at

	m.logger.Debug("tui.detection.applied", "Detection result applied", map[string]interface{}{
		"cpu": m.detected.HardwareInfo.CPU.Name,
		"gpu": m.detected.HardwareInfo.GPU.Name,
	})
	return m
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	if next, handled, cmd := m.handleQuitKeys(key); handled {
		return next, cmd
	}

	if next, handled := m.handleEscapeKey(key); handled {
		return next, nil
	}

	if next, handled, cmd := m.handleRedetectKey(key); handled {
		return next, cmd
	}

	if next, handled := m.handleMenuNavigationKeys(key); handled {
		return next, nil
	}

	if next, handled := m.handleMenuSelectionKey(key); handled {
		return next, nil
	}

	if next, handled := m.handleShortcutKeys(key); handled {
		return next, nil
	}

	return m, nil
}

func (m Model) handleQuitKeys(key string) (tea.Model, bool, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		m.stopDetection()
		m.saveState()
		return m, true, tea.Quit
	}
	return m, false, nil
}

func (m Model) handleEscapeKey(key string) (tea.Model, bool) {
	if key == "esc" && m.currentScreen != ScreenMenu {
		m = m.returnToMenu()
		m.saveState()
		return m, true
	}
	return m, false
}

// handleRedetectKey reruns detection; ignored while a pass is in flight.
func (m Model) handleRedetectKey(key string) (tea.Model, bool, tea.Cmd) {
	if key != "r" {
		return m, false, nil
	}
	if m.detecting {
		return m, true, nil
	}
	m.detecting = true
	m.detectCtx, m.cancelDetect = context.WithCancel(context.Background())
	m.logger.Info("tui.detection.requested", "Re-running hardware detection", nil)
	return m, true, m.detectCmd(m.detectCtx)
}

// stopDetection cancels the in-flight pass, if any.
func (m *Model) stopDetection() {
	if m.cancelDetect != nil {
		m.cancelDetect()
		m.cancelDetect = nil
	}
}

func (m Model) handleMenuNavigationKeys(key string) (tea.Model, bool) {
	if m.currentScreen != ScreenMenu {
		return m, false
	}

	switch key {
	case "up", "k":
		return m.navigateUp(), true
	case down, "j":
		return m.navigateDown(), true
	}
	return m, false
}

func (m Model) handleMenuSelectionKey(key string) (tea.Model, bool) {
	if m.currentScreen != ScreenMenu {
		return m, false
	}

	if key == "enter" || key == " " {
		updated := m.selectMenuItem()
		updated.saveState()
		return updated, true
	}
	return m, false
}

func (m Model) handleShortcutKeys(key string) (tea.Model, bool) {
	for _, item := range DefaultMenuItems() {
		if item.Key == key {
			updated := m.selectMenuByKey(key)
			updated.saveState()
			return updated, true
		}
	}
	return m, false
}

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.currentScreen {
	case ScreenMenu:
		return m.renderMenu()
	case ScreenHardware:
		return m.renderHardwareScreen()
	case ScreenParameters:
		return m.renderParametersScreen()
	case ScreenSystem:
		return m.renderSystemScreen()
	case ScreenHelp:
		return m.renderHelpScreen()
	default:
		return m.renderMenu()
	}
}

// saveState persists the current UI state
func (m *Model) saveState() {
	state := &UIState{
		CurrentScreen: m.currentScreen,
		Selection:     m.selection,
		LastError:     m.lastError,
	}

	if err := m.stateManager.Save(state); err != nil {
		m.logger.Warn("tui.state.save_failed", "Failed to save UI state", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// navigateUp moves selection up in the menu
func (m Model) navigateUp() Model {
	if m.selection > 0 {
		m.selection--
	} else {
		m.selection = len(DefaultMenuItems()) - 1
	}
	return m
}

// navigateDown moves selection down in the menu
func (m Model) navigateDown() Model {
	if m.selection < len(DefaultMenuItems())-1 {
		m.selection++
	} else {
		m.selection = 0
	}
	return m
}

// selectMenuItem opens the highlighted menu item
func (m Model) selectMenuItem() Model {
	menuItems := DefaultMenuItems()
	if m.selection >= 0 && m.selection < len(menuItems) {
		m.currentScreen = menuItems[m.selection].Screen
		m.lastError = ""
	}
	return m
}

// selectMenuByKey opens the menu item bound to key
func (m Model) selectMenuByKey(key string) Model {
	for i, item := range DefaultMenuItems() {
		if item.Key == key {
			m.selection = i
			m.currentScreen = item.Screen
			m.lastError = ""
			break
		}
	}
	return m
}

// returnToMenu returns to the main menu
func (m Model) returnToMenu() Model {
	m.currentScreen = ScreenMenu
	m.lastError = ""
	return m
}
