package tui

import (
	"strings"
	"testing"
)

func TestModel_NavigateUp(t *testing.T) {
	m, _ := newTestModel(t)
	m.selection = 3

	m = m.navigateUp()

	if m.selection != 2 {
		t.Errorf("Expected selection 2, got %d", m.selection)
	}
}

func TestModel_NavigateUp_WrapAround(t *testing.T) {
	m, _ := newTestModel(t)
	m.selection = 0

	m = m.navigateUp()

	expected := len(DefaultMenuItems()) - 1
	if m.selection != expected {
		t.Errorf("Expected selection %d (wrap around), got %d", expected, m.selection)
	}
}

func TestModel_NavigateDown_WrapAround(t *testing.T) {
	m, _ := newTestModel(t)
	m.selection = len(DefaultMenuItems()) - 1

	m = m.navigateDown()

	if m.selection != 0 {
		t.Errorf("Expected selection 0 (wrap around), got %d", m.selection)
	}
}

func TestModel_SelectMenuByKey(t *testing.T) {
	tests := []struct {
		key            string
		expectedScreen Screen
	}{
		{"1", ScreenHardware},
		{"2", ScreenParameters},
		{"3", ScreenSystem},
		{"?", ScreenHelp},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, _ := newTestModel(t)
			m.lastError = "stale"

			m = m.selectMenuByKey(tt.key)

			if m.currentScreen != tt.expectedScreen {
				t.Errorf("Expected screen %s, got %s", tt.expectedScreen, m.currentScreen)
			}
			if m.lastError != "" {
				t.Errorf("Expected lastError to be cleared, got %q", m.lastError)
			}
		})
	}
}

func TestRenderMenu(t *testing.T) {
	m, _ := newTestModel(t)
	output := m.renderMenu()

	for _, want := range []string{"Main Menu", "Hardware", "Parameters", "System", "Help", "Detecting hardware"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected menu to contain %q", want)
		}
	}
}

func TestRenderMenu_ShowsError(t *testing.T) {
	m, _ := newTestModel(t)
	m.lastError = "probe exploded"

	if !strings.Contains(m.renderMenu(), "probe exploded") {
		t.Error("Expected menu to show last error")
	}
}

func TestRenderHardwareScreen(t *testing.T) {
	m, _ := newTestModel(t)

	if !strings.Contains(m.renderHardwareScreen(), "Detecting hardware") {
		t.Error("Expected pending message before detection completes")
	}

	m = runDetection(t, m)
	output := m.renderHardwareScreen()

	for _, want := range []string{"Intel Core i7-13700K", "2,126", "high", "RTX 3070 Ti", "14,000", "medium", "16 / 24"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected hardware screen to contain %q", want)
		}
	}
}

func TestRenderParametersScreen(t *testing.T) {
	m, _ := newTestModel(t)
	m = runDetection(t, m)
	output := m.renderParametersScreen()

	for _, want := range []string{"all (24)", "2,000,000", "70%", "300 MB", "30 MB", "100 MB"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected parameters screen to contain %q", want)
		}
	}
}

func TestRenderSystemScreen(t *testing.T) {
	m, _ := newTestModel(t)
	m = runDetection(t, m)
	output := m.renderSystemScreen()

	for _, want := range []string{"linux-ubuntu-24.04", "64bit x86_64", "32 GiB"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected system screen to contain %q", want)
		}
	}
}

func TestRenderPending_WithoutResult(t *testing.T) {
	m, _ := newTestModel(t)
	m.detecting = false

	if !strings.Contains(m.renderParametersScreen(), "Press 'r' to detect") {
		t.Error("Expected hint to run detection")
	}
}

func TestRenderHelpScreen(t *testing.T) {
	m, _ := newTestModel(t)
	output := m.renderHelpScreen()

	for _, want := range []string{"Keyboard Shortcuts", "Re-run hardware detection", "Return to main menu"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected help screen to contain %q", want)
		}
	}
}

func TestView_RoutesByScreen(t *testing.T) {
	m, _ := newTestModel(t)
	m = runDetection(t, m)

	m.currentScreen = ScreenHelp
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("Expected help view")
	}

	m.currentScreen = Screen("gone")
	if !strings.Contains(m.View(), "Main Menu") {
		t.Error("Expected unknown screen to fall back to menu")
	}
}
