package constants

// Play Button (logical units, centered on screen)
const (
	PlayButtonWidth  = 200
	PlayButtonHeight = 50
	PlayButtonLabel  = "Play"
	PlayButtonColor  = "#00c800"
	PlayTextColor    = "#ffffff"
)

// Status Bar
const (
	// StatusBarHeight is the number of terminal rows reserved below the play field
	StatusBarHeight = 1

	StatusTextPaused   = " PAUSED "
	StatusTextGameOver = " GAME OVER "
	StatusTextReady    = " READY "
	StatusTextActive   = " ACTIVE "
)

// Entity Colors
const (
	ShipColor  = "#9bd1ff"
	AlienColor = "#7cfc00"
	StarColor  = "#c8c8dc"
)
