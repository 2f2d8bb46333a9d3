package config

// Layout constants for the tutorial screens.
// All coordinates are logical pixels; Ebitengine scales the logical screen
// to the window.

// Logical screen size returned by Layout.
const (
	GameWindowWidth  = 800
	GameWindowHeight = 600
)

// Panel layout.
const (
	// PanelPadding is the inset of every screen panel.
	PanelPadding = 24

	// PanelSpacing is the gap between stacked widgets.
	PanelSpacing = 12

	// ButtonWidth and ButtonHeight size menu and section buttons.
	ButtonWidth  = 260
	ButtonHeight = 40

	// NavButtonWidth sizes the Prev/Next/Menu row on the game screen.
	NavButtonWidth = 110

	// DialogHeight is the height of the speaker/message box.
	DialogHeight = 140

	// CenterImageMaxWidth and CenterImageMaxHeight bound the center image;
	// larger images are scaled down to fit.
	CenterImageMaxWidth  = 360
	CenterImageMaxHeight = 260
)

// Dice practice layout.
const (
	// DieSize is the edge length of one die face.
	DieSize = 96

	// DieSpacing is the gap between the two dice.
	DieSpacing = 32
)

// FullscreenResetDelayFrames is how many frames to wait after leaving
// fullscreen before resetting the window size.
const FullscreenResetDelayFrames = 3

// FitSize scales (w, h) down to fit (maxW, maxH) keeping the aspect ratio.
// Sizes that already fit are returned unchanged.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	if w <= maxW && h <= maxH {
		return w, h
	}
	scale := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	return int(float64(w) * scale), int(float64(h) * scale)
}
