package selection

import (
	"fmt"
	"image"

	pimage "paintr/internal/image"
	"paintr/pkg/geometry"

	"golang.org/x/image/draw"
)

func rectDescription(r geometry.Rect) string {
	return fmt.Sprintf("X: %d, Y: %d, W: %d, H: %d",
		int(r.X), int(r.Y), int(r.Width), int(r.Height))
}

func rectCopy(r geometry.Rect, img *image.RGBA, mode CopyMode) (*image.RGBA, bool) {
	in, ok := intersect(r, img)
	if !ok {
		return nil, false
	}

	section := in.ImageRect()
	out := pimage.Transparent(section.Dx(), section.Dy())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min.Add(section.Min), draw.Src)

	if mode == Shrink || in.Size() == r.Size() {
		return out, true
	}

	expanded := pimage.TransparentSize(r.Size())
	pos := in.Origin().Sub(r.Origin()).ImagePoint()
	draw.Draw(expanded, out.Bounds().Add(pos), out, image.Point{}, draw.Src)
	return expanded, true
}

func rectCutout(r geometry.Rect, img *image.RGBA) (*image.RGBA, bool) {
	in, ok := intersect(r, img)
	if !ok {
		return nil, false
	}

	out := pimage.Clone(img)
	pimage.Clear(out, in.ImageRect().Add(img.Bounds().Min))
	return out, true
}

// intersect clips r to the bounds of img, reporting false when nothing is left.
func intersect(r geometry.Rect, img *image.RGBA) (geometry.Rect, bool) {
	in := pimage.Bounds(img).Intersect(r)
	if in.Area() == 0 {
		return geometry.Rect{}, false
	}
	return in, true
}
