package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hwbench/internal/logging"
)

func TestUIStateManager_SaveAndLoad(t *testing.T) {
	manager := NewUIStateManager(t.TempDir(), logging.NewLogger(logging.LevelError))

	state := &UIState{
		CurrentScreen: ScreenParameters,
		Selection:     1,
		LastError:     "test error",
		Updated:       time.Now().UTC(),
	}

	if err := manager.Save(state); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}

	loaded, err := manager.Load()
	if err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}

	if loaded.CurrentScreen != state.CurrentScreen {
		t.Errorf("Expected screen %s, got %s", state.CurrentScreen, loaded.CurrentScreen)
	}
	if loaded.Selection != state.Selection {
		t.Errorf("Expected selection %d, got %d", state.Selection, loaded.Selection)
	}
	if loaded.LastError != state.LastError {
		t.Errorf("Expected error %q, got %q", state.LastError, loaded.LastError)
	}
}

func TestUIStateManager_LoadMissingFile(t *testing.T) {
	manager := NewUIStateManager(t.TempDir(), nil)

	state, err := manager.Load()
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if state.CurrentScreen != ScreenMenu {
		t.Errorf("Expected default screen menu, got %s", state.CurrentScreen)
	}
}

func TestUIStateManager_UnknownScreenResets(t *testing.T) {
	dir := t.TempDir()
	content := `{"menu": "models", "selection": 4, "last_error": ""}`
	if err := os.WriteFile(filepath.Join(dir, UIStateFileName), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	state, err := NewUIStateManager(dir, nil).Load()
	if err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}
	if state.CurrentScreen != ScreenMenu || state.Selection != 0 {
		t.Errorf("Expected reset to menu/0, got %s/%d", state.CurrentScreen, state.Selection)
	}
}

func TestUIStateManager_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, UIStateFileName), []byte("{broken"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewUIStateManager(dir, nil).Load(); err == nil {
		t.Error("Expected error for corrupt state file")
	}
}

func TestUIStateManager_EmptyDirDisablesPersistence(t *testing.T) {
	manager := NewUIStateManager("", nil)

	if err := manager.Save(&UIState{CurrentScreen: ScreenHelp}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	state, err := manager.Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if state.CurrentScreen != ScreenMenu {
		t.Errorf("Expected default menu screen, got %s", state.CurrentScreen)
	}
}

func TestUIStateManager_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	if err := NewUIStateManager(dir, nil).Save(&UIState{CurrentScreen: ScreenMenu}); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, UIStateFileName))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("Expected permissions 0600, got %o", perm)
	}
}
