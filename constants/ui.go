package constants

import "time"

// Wheel Layout
const (
	// MinWheelRadius is the smallest vertical wheel radius worth drawing, in rows
	MinWheelRadius = 5

	// CellAspect compensates terminal cells being roughly twice as tall as wide
	CellAspect = 2.0

	// SidePanelWidth is the fixed width of the legend and history panel
	SidePanelWidth = 26

	// MinWheelBoxWidth is the narrowest wheel area that still gets the side panel;
	// below it the panel is dropped before the wheel shrinks further
	MinWheelBoxWidth = 28

	// StatusBarHeight is the number of rows reserved at the bottom of the screen
	StatusBarHeight = 1

	// LegendMaxSwatches caps how many entries the legend lists before folding
	// the remainder into a single overflow line
	LegendMaxSwatches = 18
)

// Splash Timing
const (
	// SplashMaxDuration force-dismisses the intro if the spring never settles
	SplashMaxDuration = 4 * time.Second
)
