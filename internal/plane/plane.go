// Package plane implements the ordered stack of raster planes that make up
// a canvas, each with its own translation offset.
package plane

import (
	"fmt"
	"image"

	pimage "paintr/internal/image"
	"paintr/pkg/geometry"

	"github.com/fogleman/gg"
)

// Kind distinguishes committed image planes from the live brush plane.
type Kind int

const (
	KindImage Kind = iota // Immutable, shared between snapshots
	KindDraw              // Scratch buffer accumulating brush stamps
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "Image"
	case KindDraw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// Plane is one layer of raster content.
//
// An Image plane never changes after construction, so any number of
// snapshots may hold the same *Plane. A Draw plane owns a drawBuffer that
// is only stamped while no snapshot shares it; see Planes.DrawWithBrush.
type Plane struct {
	kind Kind
	img  *image.RGBA
	draw *drawBuffer
}

// drawBuffer is the pixel buffer behind a Draw plane together with the
// brush points already stamped into it.
type drawBuffer struct {
	img     *image.RGBA
	stamped map[geometry.Vec2]struct{}
	shared  bool // Referenced by a snapshot; copy before stamping
}

func newDrawBuffer(size geometry.Size) *drawBuffer {
	return &drawBuffer{
		img:     pimage.TransparentSize(size),
		stamped: make(map[geometry.Vec2]struct{}),
	}
}

// clone returns an unshared deep copy.
func (b *drawBuffer) clone() *drawBuffer {
	stamped := make(map[geometry.Vec2]struct{}, len(b.stamped))
	for p := range b.stamped {
		stamped[p] = struct{}{}
	}
	return &drawBuffer{img: pimage.Clone(b.img), stamped: stamped}
}

// NewImage wraps a committed image. The plane takes ownership of img;
// callers must not modify it afterwards.
func NewImage(img *image.RGBA) *Plane {
	return &Plane{kind: KindImage, img: img}
}

func newDraw(size geometry.Size) *Plane {
	return &Plane{kind: KindDraw, draw: newDrawBuffer(size)}
}

// Kind returns the plane kind.
func (p *Plane) Kind() Kind {
	return p.kind
}

// Image returns the plane's pixels. The result is read-only.
func (p *Plane) Image() *image.RGBA {
	if p.kind == KindDraw {
		return p.draw.img
	}
	return p.img
}

// Size returns the plane's pixel dimensions.
func (p *Plane) Size() geometry.Size {
	return pimage.Size(p.Image())
}

// finalized returns an Image plane with the same pixels.
func (p *Plane) finalized() *Plane {
	if p.kind == KindImage {
		return p
	}
	p.draw.shared = true
	return NewImage(p.draw.img)
}

// Paint blits the plane at the context's current origin.
func (p *Plane) Paint(dc *gg.Context) {
	pimage.PaintImage(dc, p.Image())
}

// PaintSize returns the plane size.
func (p *Plane) PaintSize() (geometry.Size, bool) {
	return p.Size(), true
}

func (p *Plane) String() string {
	b := p.Image().Bounds()
	return fmt.Sprintf("Plane { %s : RGBA[%d, %d] }", p.kind, b.Dx(), b.Dy())
}
