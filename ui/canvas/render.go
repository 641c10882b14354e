package canvas

import (
	"image"

	"paintr/internal/app"
	pcanvas "paintr/internal/canvas"
	"paintr/pkg/geometry"

	"github.com/fogleman/gg"
)

const checkerSize = 8

var (
	checkerLight = [3]float64{0.94, 0.94, 0.94}
	checkerDark  = [3]float64{0.80, 0.80, 0.80}
)

// ViewPoint converts widget coordinates to document view coordinates.
func ViewPoint(x, y, zoom float64) geometry.Point {
	return geometry.Pt(x/zoom, y/zoom)
}

// Render draws d into a w×h image at the given scale: the workspace
// background, a checkerboard where the canvas is transparent, and the
// document on top. A nil document renders the background only.
func Render(d *pcanvas.Data, w, h int, scale float64) *image.RGBA {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	dc := gg.NewContext(w, h)
	dc.SetColor(app.WorkspaceColor)
	dc.Clear()

	if d != nil {
		dc.Push()
		dc.Scale(scale, scale)
		paintChecker(dc, d.Position(), d.Size())
		d.Paint(dc)
		dc.Pop()
	}
	return dc.Image().(*image.RGBA)
}

// paintChecker fills the canvas area with the transparency pattern.
func paintChecker(dc *gg.Context, at geometry.Point, size geometry.Size) {
	dc.Push()
	defer dc.Pop()

	dc.DrawRectangle(at.X, at.Y, size.Width, size.Height)
	dc.Clip()

	dc.SetRGB(checkerLight[0], checkerLight[1], checkerLight[2])
	dc.DrawRectangle(at.X, at.Y, size.Width, size.Height)
	dc.Fill()

	dc.SetRGB(checkerDark[0], checkerDark[1], checkerDark[2])
	for y := 0.0; y < size.Height; y += checkerSize {
		for x := 0.0; x < size.Width; x += checkerSize {
			if (int(x/checkerSize)+int(y/checkerSize))%2 == 1 {
				dc.DrawRectangle(at.X+x, at.Y+y, checkerSize, checkerSize)
			}
		}
	}
	dc.Fill()
	dc.ResetClip()
}
