package app

import (
	"image/color"

	"paintr/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PaintrTheme is the application theme: a teal workspace behind the
// canvas and the brush color as the accent.
type PaintrTheme struct{}

var _ fyne.Theme = (*PaintrTheme)(nil)

// WorkspaceColor fills the area around the canvas.
var WorkspaceColor = color.NRGBA{R: 0x00, G: 0x77, B: 0x88, A: 0xFF}

func (t *PaintrTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return colorutil.Yellow
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0xFF, G: 0xC9, B: 0x22, A: 0x60}
	case theme.ColorNameError:
		return color.NRGBA{R: 0xD3, G: 0x2F, B: 0x2F, A: 0xFF}
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *PaintrTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *PaintrTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *PaintrTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameScrollBar:
		return 14
	case theme.SizeNameScrollBarSmall:
		return 10
	default:
		return theme.DefaultTheme().Size(name)
	}
}
