package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	WindowWidth  float32 = 560
	WindowHeight float32 = 260

	QualitySelectWidth float32 = 120
	LogoSize           float32 = 32

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 280
)

// Debounce durations
const (
	DefaultProbeDebounce = time.Second
	DefaultCancelGrace   = time.Second
)
