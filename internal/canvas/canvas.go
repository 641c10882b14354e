// Package canvas implements the editable document: a stack of planes, an
// optional selection, and the translation applied to the whole canvas.
package canvas

import (
	"fmt"
	"image"

	pimage "paintr/internal/image"
	"paintr/internal/plane"
	"paintr/internal/selection"
	"paintr/pkg/geometry"
)

// binding tracks whether the selection has been lifted into its own plane.
// Values are replaced, never mutated, so snapshots may share them.
type binding struct {
	sel   selection.Selection
	idx   plane.Index
	bound bool
}

// Data is one open document.
//
// The selection is kept in view coordinates, i.e. already shifted by the
// canvas transform. Plane offsets are kept in canvas coordinates.
type Data struct {
	path      string
	planes    plane.Planes
	binding   *binding
	transform geometry.Vec2
	size      geometry.Size
}

// New creates a document holding img as its only plane. The canvas size is
// fixed to the size of img.
func New(path string, img *image.RGBA) *Data {
	d := &Data{
		path: path,
		size: pimage.Size(img),
	}
	d.planes.PushImage(img)
	return d
}

// Path returns the file the document was loaded from or last saved to.
func (d *Data) Path() string {
	return d.path
}

// Size returns the canvas size.
func (d *Data) Size() geometry.Size {
	return d.size
}

// Planes returns the plane stack. Callers must not modify it.
func (d *Data) Planes() *plane.Planes {
	return &d.planes
}

// Position returns the canvas translation as a point.
func (d *Data) Position() geometry.Point {
	return d.transform.ToPoint()
}

// Selection returns the current selection, if any.
func (d *Data) Selection() (selection.Selection, bool) {
	if d.binding == nil {
		return selection.Selection{}, false
	}
	return d.binding.sel, true
}

// Bound reports whether the selection has been lifted into a plane.
func (d *Data) Bound() bool {
	return d.binding != nil && d.binding.bound
}

// Select replaces the selection with an unbound sel. A zero-area selection
// clears it.
func (d *Data) Select(sel selection.Selection) {
	if sel.Area() == 0 {
		d.binding = nil
		return
	}
	d.binding = &binding{sel: sel}
}

// ClearSelection drops the selection. Pixels already lifted stay where
// they were moved.
func (d *Data) ClearSelection() {
	d.binding = nil
}

// Paste pushes img as a new top plane positioned at the visible top-left
// corner of the canvas.
func (d *Data) Paste(img *image.RGBA) {
	idx := d.planes.PushImage(img)
	d.planes.MoveWithIndex(idx, d.transform.Neg())
}

// MoveCanvas shifts the whole canvas. The selection follows it.
func (d *Data) MoveCanvas(offset geometry.Vec2) {
	d.transform = d.transform.Add(offset)
	if d.binding != nil {
		b := *d.binding
		b.sel = b.sel.Transform(offset)
		d.binding = &b
	}
}

// MoveSelection moves the selected pixels by offset. The first move lifts
// them into their own plane. Without a selection it does nothing.
func (d *Data) MoveSelection(offset geometry.Vec2) {
	if d.binding == nil {
		return
	}

	b := *d.binding
	if !b.bound {
		b.idx = d.planes.BindSelection(b.sel.Transform(d.transform.Neg()))
		b.bound = true
	}

	d.planes.MoveWithIndex(b.idx, offset)
	b.sel = b.sel.Transform(offset)
	d.binding = &b
}

// DrawWithBrush stamps brush points given in canvas coordinates.
func (d *Data) DrawWithBrush(points []geometry.Vec2) {
	d.planes.DrawWithBrush(points)
}

// Merged flattens the document into a single raster as it appears in the
// view. With a non-zero transform the result is always canvas-sized, with
// transparency where the planes have moved away.
func (d *Data) Merged() *image.RGBA {
	if d.transform.IsZero() {
		img, ok := d.planes.Merged()
		if !ok {
			panic("canvas: document has no planes")
		}
		return img
	}
	return d.planes.MergedTo(pimage.TransparentSize(d.size), d.transform)
}

// Save writes the merged raster to path, choosing the encoder from the
// extension. The document path only changes when the write succeeds.
func (d *Data) Save(path string) error {
	if err := pimage.Save(path, d.Merged()); err != nil {
		return fmt.Errorf("failed to save canvas: %w", err)
	}
	d.path = path
	return nil
}

// Clone returns a snapshot sharing every committed image with d.
func (d Data) Clone() Data {
	d.planes = d.planes.Clone()
	return d
}

// Same reports whether two documents are indistinguishable without
// comparing pixels: same path, transform, and selection, and the identical
// planes.
func (d *Data) Same(other *Data) bool {
	if d.path != other.path || d.transform != other.transform || d.size != other.size {
		return false
	}
	if (d.binding == nil) != (other.binding == nil) {
		return false
	}
	if d.binding != nil {
		a, b := d.binding, other.binding
		if !a.sel.Equal(b.sel) || a.bound != b.bound || a.idx != b.idx {
			return false
		}
	}
	return d.planes.Same(&other.planes)
}

func (d *Data) String() string {
	sel := "none"
	if d.binding != nil {
		sel = fmt.Sprintf("%s %s", d.binding.sel.Shape(), d.binding.sel.Description())
	}
	return fmt.Sprintf("Canvas { %s, %v, selection: %s, %s }", d.path, d.Position(), sel, d.planes.String())
}
