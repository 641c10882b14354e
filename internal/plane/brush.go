package plane

import (
	"image"
	"image/color"

	"paintr/pkg/colorutil"
)

// Brush parameters. The brush is a plain filled disc without antialiasing
// or pressure.
const BrushRadius = 5

// BrushColor is the color stamped by DrawWithBrush.
var BrushColor = colorutil.Yellow

// stampCircle fills the disc of radius r centred on c, clipped to img.
func stampCircle(img *image.RGBA, c image.Point, r int, col color.RGBA) {
	bounds := img.Bounds()
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			p := image.Pt(c.X+dx, c.Y+dy)
			if p.In(bounds) {
				img.SetRGBA(p.X, p.Y, col)
			}
		}
	}
}
