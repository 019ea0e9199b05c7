package parameter

import "time"

// Layout & Margins
const (
	// TopMargin for status bar (1 line for session metrics)
	TopMargin = 1

	// BottomMargin for help line
	BottomMargin = 1

	// PageGridSpacingX is the column spacing of the synthetic page grid drawn under the zoom
	PageGridSpacingX = 0.05

	// PageGridSpacingY is the row spacing of the synthetic page grid drawn under the zoom
	PageGridSpacingY = 0.1
)

// Keyboard Overlay
const (
	// KeyboardFrameName identifies the floating frame owned by the keyboard action
	KeyboardFrameName = "keyboard"

	// KeyboardHeightPercent is the share of the surface height the keyboard frame covers
	KeyboardHeightPercent = 0.4

	// CrosshairRune marks the zoom coordinate
	CrosshairRune = '+'
)

// Pause
const (
	// PauseDimValue is the dim level of the whole surface while paused
	PauseDimValue = 0.6

	// PauseDimDuration is the time (seconds) the pause dimming takes to fade in or out
	PauseDimDuration = 0.3
)

// Status Bar
const (
	// StatusMessageTimeout is how long a pipeline result stays in the status bar
	StatusMessageTimeout = 3 * time.Second
)
