package image

import (
	"image"
	"image/color"

	"paintr/pkg/colorutil"
	"paintr/pkg/geometry"

	"golang.org/x/image/draw"
)

// Solid returns a w×h RGBA image filled with c.
func Solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

// Transparent returns a fully transparent w×h RGBA image.
func Transparent(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// TransparentSize is Transparent for a geometry.Size, truncating to whole pixels.
func TransparentSize(size geometry.Size) *image.RGBA {
	w, h := size.ImageSize()
	return Transparent(w, h)
}

// ToRGBA returns img as a zero-origin *image.RGBA, converting if needed.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// Clone returns a deep copy of img.
func Clone(img *image.RGBA) *image.RGBA {
	out := &image.RGBA{
		Pix:    make([]uint8, len(img.Pix)),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
	copy(out.Pix, img.Pix)
	return out
}

// Size returns the dimensions of img.
func Size(img image.Image) geometry.Size {
	b := img.Bounds()
	return geometry.NewSize(float64(b.Dx()), float64(b.Dy()))
}

// Bounds returns the rectangle covered by img in its own coordinate space.
func Bounds(img image.Image) geometry.Rect {
	return geometry.RectFromOriginSize(geometry.Point{}, Size(img))
}

// Merge blends src onto dst with its top-left corner at offset.
// Pixels are composited with source-over alpha blending; the part of src
// falling outside dst is clipped.
func Merge(dst *image.RGBA, src image.Image, offset geometry.Vec2) {
	at := offset.ImagePoint()
	sb := src.Bounds()

	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, src, sb.Min.Add(r.Min.Sub(at)), draw.Over)
}

// Fill replaces the pixels of dst inside r with c, without blending.
func Fill(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r.Intersect(dst.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// Clear sets the pixels of dst inside r to fully transparent.
func Clear(dst *image.RGBA, r image.Rectangle) {
	Fill(dst, r, colorutil.Transparent)
}
