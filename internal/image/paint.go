package image

import (
	"image"

	"paintr/pkg/geometry"

	"github.com/fogleman/gg"
)

// Paintable is anything that can draw itself onto a render context.
// PaintSize reports the extent it covers, or false when it has none.
type Paintable interface {
	Paint(dc *gg.Context)
	PaintSize() (geometry.Size, bool)
}

// PaintImage blits img at the context's current origin.
func PaintImage(dc *gg.Context, img image.Image) {
	dc.DrawImage(img, 0, 0)
}

// Render paints p onto a fresh transparent context sized to its PaintSize.
// It returns nil when p has no extent.
func Render(p Paintable) *image.RGBA {
	size, ok := p.PaintSize()
	if !ok {
		return nil
	}
	w, h := size.ImageSize()
	if w <= 0 || h <= 0 {
		return nil
	}
	dc := gg.NewContext(w, h)
	p.Paint(dc)
	return ToRGBA(dc.Image())
}
