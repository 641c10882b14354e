package plane

import (
	"image"
	"strings"

	pimage "paintr/internal/image"
	"paintr/internal/selection"
	"paintr/pkg/geometry"

	"github.com/fogleman/gg"
)

// Index addresses one plane in a Planes stack. Indices stay valid for the
// life of the stack because planes are only appended or replaced in place.
type Index int

// entry pairs a plane with its offset from the canvas origin.
type entry struct {
	plane  *Plane
	offset geometry.Vec2
}

// Planes is an ordered stack of planes, bottom first.
// The zero value is an empty stack ready to use.
type Planes struct {
	entries []entry
}

// Len returns the number of planes.
func (p *Planes) Len() int {
	return len(p.entries)
}

// At returns the plane at idx.
func (p *Planes) At(idx Index) *Plane {
	return p.entries[idx].plane
}

// Offset returns the offset of the plane at idx.
func (p *Planes) Offset(idx Index) geometry.Vec2 {
	return p.entries[idx].offset
}

// Top returns the index of the topmost plane, or false if the stack is empty.
func (p *Planes) Top() (Index, bool) {
	if len(p.entries) == 0 {
		return 0, false
	}
	return Index(len(p.entries) - 1), true
}

// Clone returns a stack sharing every plane with p. Offsets are copied, so
// moving a plane in one stack never affects the other.
func (p *Planes) Clone() Planes {
	entries := make([]entry, len(p.entries))
	copy(entries, p.entries)
	for _, e := range entries {
		if e.plane.kind == KindDraw {
			e.plane.draw.shared = true
		}
	}
	return Planes{entries: entries}
}

// Same reports whether both stacks hold the identical planes in the same
// order. Pixel content is never compared.
func (p *Planes) Same(other *Planes) bool {
	if len(p.entries) != len(other.entries) {
		return false
	}
	for i := range p.entries {
		if p.entries[i].plane != other.entries[i].plane {
			return false
		}
	}
	return true
}

// Push appends pl at zero offset and returns its index. A live Draw plane
// on top is committed to an Image plane first.
func (p *Planes) Push(pl *Plane) Index {
	if n := len(p.entries); n > 0 {
		p.entries[n-1].plane = p.entries[n-1].plane.finalized()
	}
	p.entries = append(p.entries, entry{plane: pl})
	return Index(len(p.entries) - 1)
}

// PushImage is Push(NewImage(img)).
func (p *Planes) PushImage(img *image.RGBA) Index {
	return p.Push(NewImage(img))
}

// MoveWithIndex adds offset to the plane at idx. Paint order is unchanged.
func (p *Planes) MoveWithIndex(idx Index, offset geometry.Vec2) {
	e := &p.entries[idx]
	e.offset = e.offset.Add(offset)
}

// MaxSize returns the component-wise maximum of all plane sizes.
func (p *Planes) MaxSize() (geometry.Size, bool) {
	if len(p.entries) == 0 {
		return geometry.Size{}, false
	}
	size := p.entries[0].plane.Size()
	for _, e := range p.entries[1:] {
		size = size.Max(e.plane.Size())
	}
	return size, true
}

// Merged composites every plane bottom-to-top onto a transparent buffer of
// MaxSize. Content at negative offsets or beyond the buffer is clipped.
// It returns false when the stack is empty.
func (p *Planes) Merged() (*image.RGBA, bool) {
	size, ok := p.MaxSize()
	if !ok {
		return nil, false
	}
	return p.MergedTo(pimage.TransparentSize(size), geometry.Vec2{}), true
}

// MergedTo composites every plane onto base with each offset shifted by
// extra, and returns base.
func (p *Planes) MergedTo(base *image.RGBA, extra geometry.Vec2) *image.RGBA {
	for _, e := range p.entries {
		pimage.Merge(base, e.plane.Image(), e.offset.Add(extra))
	}
	return base
}

// BindSelection lifts the pixels under sel into a new top plane.
//
// The merged appearance under sel is copied at the selection's full size,
// the selection's footprint is cut out of every existing plane, and the
// copy is pushed positioned at the selection's top-left corner.
// It panics if the stack is empty.
func (p *Planes) BindSelection(sel selection.Selection) Index {
	merged, ok := p.Merged()
	if !ok {
		panic("plane: BindSelection requires at least one plane")
	}

	lifted, ok := sel.Copy(merged, selection.Expand)
	if !ok {
		// Nothing visible under the selection; it still moves as a plane.
		lifted = pimage.TransparentSize(sel.Size())
	}

	for i := range p.entries {
		e := &p.entries[i]
		target := sel.Transform(e.offset.Neg())
		if img, ok := target.Cutout(e.plane.Image()); ok {
			e.plane = NewImage(img)
		}
	}

	idx := p.PushImage(lifted)
	p.MoveWithIndex(idx, sel.Position().ToVec2())
	return idx
}

// DrawWithBrush stamps each point onto the Draw plane at the top of the
// stack, creating one sized to MaxSize when the top plane is an Image.
// Points already stamped are skipped. Nothing happens on an empty stack.
func (p *Planes) DrawWithBrush(points []geometry.Vec2) {
	size, ok := p.MaxSize()
	if !ok {
		return
	}

	if top := p.entries[len(p.entries)-1].plane; top.kind == KindImage {
		p.Push(newDraw(size))
	}

	top := &p.entries[len(p.entries)-1]
	buf := top.plane.draw
	if buf.shared {
		buf = buf.clone()
		top.plane = &Plane{kind: KindDraw, draw: buf}
	}

	for _, pt := range points {
		if _, done := buf.stamped[pt]; done {
			continue
		}
		stampCircle(buf.img, pt.ImagePoint(), BrushRadius, BrushColor)
		buf.stamped[pt] = struct{}{}
	}
}

// Paint draws every plane translated by its offset.
func (p *Planes) Paint(dc *gg.Context) {
	for _, e := range p.entries {
		dc.Push()
		dc.Translate(e.offset.X, e.offset.Y)
		e.plane.Paint(dc)
		dc.Pop()
	}
}

// PaintSize returns MaxSize.
func (p *Planes) PaintSize() (geometry.Size, bool) {
	return p.MaxSize()
}

func (p *Planes) String() string {
	var sb strings.Builder
	sb.WriteString("Planes [")
	for i, e := range p.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.plane.String())
	}
	sb.WriteString("]")
	return sb.String()
}
