// Package selection implements the geometric regions a user can select,
// copy from, and cut out of a raster.
package selection

import (
	"image"

	"paintr/pkg/colorutil"
	"paintr/pkg/geometry"

	"github.com/fogleman/gg"
)

// Shape identifies the selection variant.
type Shape int

const (
	ShapeRect Shape = iota
)

func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "Rect"
	default:
		return "Unknown"
	}
}

// CopyMode controls how Copy treats the part of a selection that lies
// outside the source image.
type CopyMode int

const (
	// Shrink returns only the intersection with the source.
	Shrink CopyMode = iota
	// Expand returns the full selection size, padding with transparency.
	Expand
)

func (m CopyMode) String() string {
	switch m {
	case Shrink:
		return "Shrink"
	case Expand:
		return "Expand"
	default:
		return "Unknown"
	}
}

// Selection is a region over canvas or plane coordinates.
// It is a value type; every operation returns a new Selection.
type Selection struct {
	shape Shape
	rect  geometry.Rect
}

// FromRect creates a rectangular selection.
func FromRect(r geometry.Rect) Selection {
	return Selection{shape: ShapeRect, rect: r}
}

// FromPoints creates the rectangular selection spanned by two drag points.
func FromPoints(a, b geometry.Point) Selection {
	return FromRect(geometry.RectFromPoints(a, b))
}

// Shape returns the selection variant.
func (s Selection) Shape() Shape {
	return s.shape
}

// Bounds returns the bounding rectangle of the selection.
func (s Selection) Bounds() geometry.Rect {
	switch s.shape {
	case ShapeRect:
		return s.rect
	}
	return geometry.Rect{}
}

// Description returns "X: x, Y: y, W: w, H: h" with coordinates truncated
// toward zero.
func (s Selection) Description() string {
	switch s.shape {
	case ShapeRect:
		return rectDescription(s.rect)
	}
	return ""
}

// Size returns the selection's bounding size.
func (s Selection) Size() geometry.Size {
	return s.Bounds().Size()
}

// Area returns the covered area. A zero area means "no selection".
func (s Selection) Area() float64 {
	switch s.shape {
	case ShapeRect:
		return s.rect.Area()
	}
	return 0
}

// Position returns the top-left corner of the bounding box.
func (s Selection) Position() geometry.Point {
	return s.Bounds().Origin()
}

// Contains reports whether pt lies inside the selection.
func (s Selection) Contains(pt geometry.Point) bool {
	switch s.shape {
	case ShapeRect:
		return s.rect.Contains(pt)
	}
	return false
}

// Transform returns the selection translated by offset.
func (s Selection) Transform(offset geometry.Vec2) Selection {
	switch s.shape {
	case ShapeRect:
		return FromRect(s.rect.Translate(offset))
	}
	return s
}

// Copy extracts the pixels of img under the selection.
// It returns false when the selection does not overlap img.
func (s Selection) Copy(img *image.RGBA, mode CopyMode) (*image.RGBA, bool) {
	switch s.shape {
	case ShapeRect:
		return rectCopy(s.rect, img, mode)
	}
	return nil, false
}

// Cutout returns a copy of img with the selected pixels made transparent.
// img itself is never modified. It returns false when the selection does
// not overlap img.
func (s Selection) Cutout(img *image.RGBA) (*image.RGBA, bool) {
	switch s.shape {
	case ShapeRect:
		return rectCutout(s.rect, img)
	}
	return nil, false
}

// Equal reports whether two selections have the same shape and geometry.
func (s Selection) Equal(other Selection) bool {
	return s.shape == other.shape && s.rect == other.rect
}

// Paint strokes the selection outline as a dashed line.
func (s Selection) Paint(dc *gg.Context) {
	r := s.Bounds()

	dc.Push()
	defer dc.Pop()

	dc.SetColor(colorutil.SelectionOutline)
	dc.SetLineWidth(1)
	dc.SetDash(2, 2)
	dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	dc.Stroke()
}

// PaintSize returns the selection size.
func (s Selection) PaintSize() (geometry.Size, bool) {
	return s.Size(), true
}
