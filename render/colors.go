package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the wheel UI
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbPointer    = tcell.NewRGBColor(255, 255, 255) // White pointer arrow
	RgbHub        = tcell.NewRGBColor(220, 220, 220) // Light gray hub dot
	RgbEmptyWheel = tcell.NewRGBColor(58, 60, 74)    // Muted slate for empty disc

	RgbPanelBorder = tcell.NewRGBColor(90, 95, 120)   // Dim border column
	RgbPanelText   = tcell.NewRGBColor(200, 205, 215) // Primary panel text
	RgbPanelDim    = tcell.NewRGBColor(120, 125, 145) // Secondary panel text

	RgbWinnerGold = tcell.NewRGBColor(255, 215, 0) // Gold for winner name and title
	RgbBannerText = tcell.NewRGBColor(255, 255, 255)

	// Status bar backgrounds
	RgbStateIdleBg = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStateSpinBg = tcell.NewRGBColor(255, 165, 0)   // Orange while spinning
	RgbStatusText  = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
)
