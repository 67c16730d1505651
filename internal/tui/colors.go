package tui

// Color constants for the tick TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#10211C" // Dark green
	ColorBorder         = "#3A5548" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E6F2EC" // Primary text (timer names, elapsed readouts)
	ColorSecondaryText = "#B1C7BC" // Secondary text - subtle green-tinted grey
	ColorDisabledText  = "#6D8378" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Green theme)
	ColorAccentMain   = "#10B981" // Logo, accent elements, selected rows
	ColorAccentBright = "#6EE7B7" // Hover, highlights, running timers

	// State Colors
	ColorError   = "#EF4444" // Sync failures
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Paused timers
)
