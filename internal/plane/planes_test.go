package plane

import (
	"image/color"
	"testing"

	pimage "paintr/internal/image"
	"paintr/internal/selection"
	"paintr/pkg/colorutil"
	"paintr/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidPlanes(w, h int, c color.Color) *Planes {
	var p Planes
	p.PushImage(pimage.Solid(w, h, c))
	return &p
}

func TestMergedEmpty(t *testing.T) {
	var p Planes
	_, ok := p.Merged()
	assert.False(t, ok)
	_, ok = p.MaxSize()
	assert.False(t, ok)
}

func TestPushReturnsStableIndices(t *testing.T) {
	p := solidPlanes(8, 8, colorutil.White)
	a := p.PushImage(pimage.Solid(2, 2, colorutil.Black))
	b := p.PushImage(pimage.Solid(2, 2, colorutil.Black))

	assert.Equal(t, Index(1), a)
	assert.Equal(t, Index(2), b)
	assert.Equal(t, 3, p.Len())
	assert.True(t, p.Offset(b).IsZero())
}

func TestMergedPaintsBottomToTop(t *testing.T) {
	p := solidPlanes(8, 8, colorutil.White)
	idx := p.PushImage(pimage.Solid(2, 2, colorutil.Black))
	p.MoveWithIndex(idx, geometry.NewVec2(3, 3))

	merged, ok := p.Merged()
	require.True(t, ok)
	assert.Equal(t, 8, merged.Bounds().Dx())
	assert.Equal(t, colorutil.White, merged.RGBAAt(2, 2))
	assert.Equal(t, colorutil.Black, merged.RGBAAt(3, 3))
	assert.Equal(t, colorutil.Black, merged.RGBAAt(4, 4))
	assert.Equal(t, colorutil.White, merged.RGBAAt(5, 5))
}

func TestMergedAlphaBlends(t *testing.T) {
	p := solidPlanes(4, 4, colorutil.White)
	p.PushImage(pimage.Solid(4, 4, color.RGBA{A: 128}))

	merged, ok := p.Merged()
	require.True(t, ok)
	px := merged.RGBAAt(1, 1)
	assert.InDelta(t, 127, int(px.R), 1)
	assert.Equal(t, uint8(255), px.A)
}

func TestMergedClipsNegativeOffsets(t *testing.T) {
	p := solidPlanes(8, 8, colorutil.White)
	idx := p.PushImage(pimage.Solid(4, 4, colorutil.Black))
	p.MoveWithIndex(idx, geometry.NewVec2(-2, -2))

	merged, ok := p.Merged()
	require.True(t, ok)
	assert.Equal(t, colorutil.Black, merged.RGBAAt(1, 1))
	assert.Equal(t, colorutil.White, merged.RGBAAt(2, 2))
}

func TestMergedToShiftsEveryPlane(t *testing.T) {
	p := solidPlanes(4, 4, colorutil.Black)
	base := pimage.Transparent(8, 8)

	out := p.MergedTo(base, geometry.NewVec2(4, 4))
	assert.Same(t, base, out)
	assert.Equal(t, colorutil.Transparent, out.RGBAAt(3, 3))
	assert.Equal(t, colorutil.Black, out.RGBAAt(4, 4))
	assert.True(t, p.Offset(0).IsZero(), "plane offsets are not mutated")
}

func TestMoveWithIndexAccumulates(t *testing.T) {
	p := solidPlanes(4, 4, colorutil.Black)
	p.MoveWithIndex(0, geometry.NewVec2(1, 2))
	p.MoveWithIndex(0, geometry.NewVec2(3, -1))
	assert.Equal(t, geometry.NewVec2(4, 1), p.Offset(0))
}

func TestBindSelection(t *testing.T) {
	p := solidPlanes(16, 16, colorutil.Black)
	sel := selection.FromRect(geometry.NewRect(2, 2, 4, 4))

	idx := p.BindSelection(sel)
	assert.Equal(t, Index(1), idx)
	assert.Equal(t, geometry.NewVec2(2, 2), p.Offset(idx))

	bottom := p.At(0).Image()
	assert.Equal(t, colorutil.Transparent, bottom.RGBAAt(3, 3))
	assert.Equal(t, colorutil.Black, bottom.RGBAAt(8, 8))

	lifted := p.At(idx).Image()
	assert.Equal(t, 4, lifted.Bounds().Dx())
	assert.Equal(t, colorutil.Black, lifted.RGBAAt(0, 0))

	// Appearance is unchanged until the bound plane moves.
	merged, _ := p.Merged()
	assert.Equal(t, colorutil.Black, merged.RGBAAt(3, 3))
}

func TestBindSelectionRespectsPlaneOffsets(t *testing.T) {
	p := solidPlanes(16, 16, colorutil.White)
	idx := p.PushImage(pimage.Solid(4, 4, colorutil.Black))
	p.MoveWithIndex(idx, geometry.NewVec2(8, 8))

	p.BindSelection(selection.FromRect(geometry.NewRect(6, 6, 4, 4)))

	black := p.At(idx).Image()
	assert.Equal(t, colorutil.Transparent, black.RGBAAt(0, 0))
	assert.Equal(t, colorutil.Transparent, black.RGBAAt(1, 1))
	assert.Equal(t, colorutil.Black, black.RGBAAt(2, 2))
}

func TestBindSelectionOutsideCanvasLiftsTransparentPlane(t *testing.T) {
	p := solidPlanes(8, 8, colorutil.White)
	idx := p.BindSelection(selection.FromRect(geometry.NewRect(20, 20, 3, 3)))

	lifted := p.At(idx).Image()
	assert.Equal(t, 3, lifted.Bounds().Dx())
	assert.Equal(t, colorutil.Transparent, lifted.RGBAAt(1, 1))
	assert.Equal(t, colorutil.White, p.At(0).Image().RGBAAt(7, 7))
}

func TestBindSelectionPanicsOnEmptyStack(t *testing.T) {
	var p Planes
	assert.Panics(t, func() {
		p.BindSelection(selection.FromRect(geometry.NewRect(0, 0, 2, 2)))
	})
}

func TestDrawWithBrushCreatesOneDrawPlane(t *testing.T) {
	p := solidPlanes(32, 32, colorutil.White)

	p.DrawWithBrush([]geometry.Vec2{geometry.NewVec2(10, 10)})
	require.Equal(t, 2, p.Len())
	assert.Equal(t, KindDraw, p.At(1).Kind())

	p.DrawWithBrush([]geometry.Vec2{geometry.NewVec2(20, 20)})
	assert.Equal(t, 2, p.Len(), "live draw plane is reused")

	merged, _ := p.Merged()
	assert.Equal(t, BrushColor, merged.RGBAAt(10, 10))
	assert.Equal(t, BrushColor, merged.RGBAAt(10+BrushRadius, 10))
	assert.Equal(t, BrushColor, merged.RGBAAt(20, 20))
	assert.Equal(t, colorutil.White, merged.RGBAAt(10+BrushRadius+1, 10))
	assert.Equal(t, colorutil.White, merged.RGBAAt(14, 14), "disc corners stay clear")
}

func TestDrawWithBrushOnEmptyStack(t *testing.T) {
	var p Planes
	p.DrawWithBrush([]geometry.Vec2{geometry.NewVec2(1, 1)})
	assert.Zero(t, p.Len())
}

func TestDrawWithBrushSkipsStampedPoints(t *testing.T) {
	p := solidPlanes(16, 16, colorutil.White)
	pt := geometry.NewVec2(8, 8)

	p.DrawWithBrush([]geometry.Vec2{pt, pt})
	buf := p.At(1).draw
	assert.Len(t, buf.stamped, 1)

	p.DrawWithBrush([]geometry.Vec2{pt})
	assert.Len(t, p.At(1).draw.stamped, 1)
}

func TestPushFinalizesDrawPlane(t *testing.T) {
	p := solidPlanes(16, 16, colorutil.White)
	p.DrawWithBrush([]geometry.Vec2{geometry.NewVec2(8, 8)})
	p.PushImage(pimage.Solid(2, 2, colorutil.Black))

	assert.Equal(t, KindImage, p.At(1).Kind())
	assert.Equal(t, BrushColor, p.At(1).Image().RGBAAt(8, 8))

	p.DrawWithBrush([]geometry.Vec2{geometry.NewVec2(2, 2)})
	assert.Equal(t, 4, p.Len(), "a new draw plane goes above the pushed image")
}

func TestCloneIsolatesSnapshotFromLaterStrokes(t *testing.T) {
	p := solidPlanes(16, 16, colorutil.White)
	p.DrawWithBrush([]geometry.Vec2{geometry.NewVec2(2, 2)})

	snapshot := p.Clone()
	p.DrawWithBrush([]geometry.Vec2{geometry.NewVec2(12, 12)})

	old, _ := snapshot.Merged()
	assert.Equal(t, BrushColor, old.RGBAAt(2, 2))
	assert.Equal(t, colorutil.White, old.RGBAAt(12, 12))

	cur, _ := p.Merged()
	assert.Equal(t, BrushColor, cur.RGBAAt(12, 12))
	assert.False(t, p.Same(&snapshot), "stroking a shared buffer replaces the plane")
}

func TestCloneIsolatesOffsets(t *testing.T) {
	p := solidPlanes(4, 4, colorutil.Black)
	snapshot := p.Clone()
	p.MoveWithIndex(0, geometry.NewVec2(1, 1))

	assert.True(t, snapshot.Offset(0).IsZero())
	assert.True(t, p.Same(&snapshot), "moving keeps plane identity")
}

func TestSameIsIdentityNotContent(t *testing.T) {
	a := solidPlanes(4, 4, colorutil.Black)
	b := solidPlanes(4, 4, colorutil.Black)
	assert.False(t, a.Same(b))

	c := a.Clone()
	assert.True(t, a.Same(&c))

	c.PushImage(pimage.Solid(1, 1, colorutil.White))
	assert.False(t, a.Same(&c))
}
