package tui

// Color constants for the punchclock clock theme
const (
	ColorBorder = "#2F3B3A" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E8F0EC" // Primary text
	ColorSecondaryText = "#AFC2B8" // Secondary text - muted green-grey
	ColorDisabledText  = "#67736D" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Green theme)
	ColorAccentMain   = "#10B981" // Accent elements, active borders
	ColorAccentBright = "#6EE7B7" // Highlights, the running clock

	// State Colors
	ColorError   = "#EF4444" // Failures surfaced in the footer
	ColorWarning = "#F59E0B" // Break indicator
	ColorSuccess = "#22C55E" // Punch-out confirmation
)
