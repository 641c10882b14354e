// Package colorutil provides shared colors for the paintr application.
package colorutil

import (
	"image/color"
)

// Common colors used throughout the application.
var (
	Transparent = color.RGBA{R: 0, G: 0, B: 0, A: 0}
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 201, B: 34, A: 255} // Brush color

	// SelectionOutline is the dashed marquee drawn around a selection.
	SelectionOutline = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// BadgeBackground sits behind the selection description text.
	BadgeBackground = color.RGBA{R: 0x80, G: 0x4C, B: 0x80, A: 0xE0}
)
