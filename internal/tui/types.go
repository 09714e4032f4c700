package tui

import (
	"context"
	"time"

	"hwbench/internal/hardware"
	"hwbench/internal/sysinfo"
)

// Screen represents different TUI screens
type Screen string

const (
	// ScreenMenu is the main menu screen
	ScreenMenu Screen = "menu"
	// ScreenHardware shows detected devices, scores and tiers
	ScreenHardware Screen = "hardware"
	// ScreenParameters shows the selected workload parameters
	ScreenParameters Screen = "parameters"
	// ScreenSystem shows host facts
	ScreenSystem Screen = "system"
	// ScreenHelp shows help overlay
	ScreenHelp Screen = "help"
)

// MenuItem represents a menu item
type MenuItem struct {
	Key         string // Number key or letter
	Label       string // Display label
	Description string // Short description
	Screen      Screen // Target screen
}

// UIState represents the persisted UI state
type UIState struct {
	CurrentScreen Screen    `json:"menu"`
	Selection     int       `json:"selection"`
	LastError     string    `json:"last_error"`
	Updated       time.Time `json:"updated"`
}

// ProfileSource runs a hardware detection pass.
type ProfileSource interface {
	DetectAndConfigure(ctx context.Context) hardware.Profile
}

// InfoSource reads host facts.
type InfoSource interface {
	Collect(ctx context.Context) sysinfo.Info
}

// DefaultMenuItems returns the default main menu items
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Key: "1", Label: "Hardware", Description: "Detected CPU/GPU, scores and tiers", Screen: ScreenHardware},
		{Key: "2", Label: "Parameters", Description: "Workload parameters chosen for this host", Screen: ScreenParameters},
		{Key: "3", Label: "System", Description: "Platform, memory and core counts", Screen: ScreenSystem},
		{Key: "?", Label: "Help", Description: "Show help", Screen: ScreenHelp},
	}
}

// validScreen reports whether s is a screen this build can render.
func validScreen(s Screen) bool {
	if s == ScreenMenu {
		return true
	}
	for _, item := range DefaultMenuItems() {
		if item.Screen == s {
			return true
		}
	}
	return false
}
