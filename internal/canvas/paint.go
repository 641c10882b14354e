package canvas

import (
	"sync"

	"paintr/pkg/colorutil"
	"paintr/pkg/geometry"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	badgeFontSize = 11.0
	badgePadding  = 3.0
)

var (
	badgeOnce sync.Once
	badgeFace font.Face
)

// loadBadgeFace parses the embedded Go Mono font once. A nil face disables
// the badge.
func loadBadgeFace() font.Face {
	badgeOnce.Do(func() {
		f, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return
		}
		badgeFace = truetype.NewFace(f, &truetype.Options{
			Size:    badgeFontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return badgeFace
}

// Paint draws the planes under the canvas translation, then the selection
// outline with its description badge.
func (d *Data) Paint(dc *gg.Context) {
	dc.Push()
	dc.Translate(d.transform.X, d.transform.Y)
	d.planes.Paint(dc)
	dc.Pop()

	sel, ok := d.Selection()
	if !ok {
		return
	}
	sel.Paint(dc)
	paintBadge(dc, sel.Description(), sel.Position())
}

// PaintSize returns the canvas size.
func (d *Data) PaintSize() (geometry.Size, bool) {
	return d.size, true
}

// paintBadge draws text on a filled label just above at, or just inside
// the top edge when there is no room above.
func paintBadge(dc *gg.Context, text string, at geometry.Point) {
	face := loadBadgeFace()
	if face == nil {
		return
	}

	dc.Push()
	defer dc.Pop()

	dc.SetFontFace(face)
	w, h := dc.MeasureString(text)
	bw, bh := w+2*badgePadding, h+2*badgePadding

	x, y := at.X, at.Y-bh
	if y < 0 {
		y = at.Y
	}

	dc.SetColor(colorutil.BadgeBackground)
	dc.DrawRectangle(x, y, bw, bh)
	dc.Fill()

	dc.SetColor(colorutil.White)
	dc.DrawStringAnchored(text, x+badgePadding, y+bh/2, 0, 0.35)
}
