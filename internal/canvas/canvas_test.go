package canvas

import (
	"image/color"
	"path/filepath"
	"testing"

	pimage "paintr/internal/image"
	"paintr/internal/plane"
	"paintr/internal/selection"
	"paintr/pkg/colorutil"
	"paintr/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canvasFixture(w, h int, c color.Color) *Data {
	return New("fixture.png", pimage.Solid(w, h, c))
}

func TestNew(t *testing.T) {
	d := canvasFixture(16, 8, colorutil.White)

	assert.Equal(t, "fixture.png", d.Path())
	assert.Equal(t, geometry.NewSize(16, 8), d.Size())
	assert.Equal(t, 1, d.Planes().Len())
	assert.Equal(t, geometry.Point{}, d.Position())
	_, ok := d.Selection()
	assert.False(t, ok)
}

func TestPasteCompositesOnTop(t *testing.T) {
	d := canvasFixture(16, 16, colorutil.White)
	d.Paste(pimage.Solid(4, 4, colorutil.Black))

	merged := d.Merged()
	assert.Equal(t, colorutil.Black, merged.RGBAAt(0, 0))
	assert.Equal(t, colorutil.White, merged.RGBAAt(8, 8))
}

func TestMoveThenPasteStaysAnchored(t *testing.T) {
	for _, shift := range []float64{2, 4} {
		d := canvasFixture(16, 16, colorutil.White)
		d.MoveCanvas(geometry.NewVec2(shift, shift))
		d.Paste(pimage.Solid(4, 4, colorutil.Black))

		merged := d.Merged()
		assert.Equal(t, 16, merged.Bounds().Dx())
		assert.Equal(t, colorutil.Black, merged.RGBAAt(0, 0))
		assert.Equal(t, colorutil.Black, merged.RGBAAt(3, 3))
		assert.Equal(t, colorutil.White, merged.RGBAAt(8, 8))
		assert.Equal(t, colorutil.Transparent, merged.RGBAAt(0, 8))
		assert.Equal(t, colorutil.Transparent, merged.RGBAAt(8, 0))
	}
}

func TestMoveCanvasCarriesSelection(t *testing.T) {
	d := canvasFixture(16, 16, colorutil.White)
	d.Select(selection.FromRect(geometry.NewRect(1, 1, 2, 2)))
	d.MoveCanvas(geometry.NewVec2(3, 4))

	sel, ok := d.Selection()
	require.True(t, ok)
	assert.Equal(t, geometry.NewRect(4, 5, 2, 2), sel.Bounds())
	assert.Equal(t, geometry.Pt(3, 4), d.Position())
	assert.False(t, d.Bound())
}

func TestSelectZeroAreaClears(t *testing.T) {
	d := canvasFixture(8, 8, colorutil.White)
	d.Select(selection.FromRect(geometry.NewRect(1, 1, 2, 2)))
	d.Select(selection.FromRect(geometry.NewRect(1, 1, 0, 5)))

	_, ok := d.Selection()
	assert.False(t, ok)
}

func TestMoveSelectionWithoutSelection(t *testing.T) {
	d := canvasFixture(8, 8, colorutil.White)
	d.MoveSelection(geometry.NewVec2(2, 2))

	assert.Equal(t, 1, d.Planes().Len())
	assert.Equal(t, colorutil.White, d.Merged().RGBAAt(0, 0))
}

func TestMoveSelection(t *testing.T) {
	d := canvasFixture(16, 16, colorutil.White)
	d.Paste(pimage.Solid(4, 4, colorutil.Black))
	d.Select(selection.FromRect(geometry.NewRect(0, 0, 4, 4)))

	d.MoveSelection(geometry.NewVec2(8, 8))
	assert.True(t, d.Bound())
	assert.Equal(t, 3, d.Planes().Len())

	d.MoveSelection(geometry.NewVec2(1, 0))
	assert.Equal(t, 3, d.Planes().Len(), "bound selection reuses its plane")

	sel, _ := d.Selection()
	assert.Equal(t, geometry.NewRect(9, 8, 4, 4), sel.Bounds())

	merged := d.Merged()
	assert.Equal(t, colorutil.Transparent, merged.RGBAAt(0, 0))
	assert.Equal(t, colorutil.Black, merged.RGBAAt(9, 8))
	assert.Equal(t, colorutil.Black, merged.RGBAAt(12, 11))
	assert.Equal(t, colorutil.White, merged.RGBAAt(8, 8))
}

func TestMoveSelectionAfterMoveCanvas(t *testing.T) {
	d := canvasFixture(16, 16, colorutil.White)
	d.Paste(pimage.Solid(4, 4, colorutil.Black))
	d.MoveCanvas(geometry.NewVec2(2, 2))

	// The black square is on screen at (2,2); select it there.
	d.Select(selection.FromRect(geometry.NewRect(2, 2, 4, 4)))
	d.MoveSelection(geometry.NewVec2(4, 0))

	merged := d.Merged()
	assert.Equal(t, colorutil.Transparent, merged.RGBAAt(3, 3))
	assert.Equal(t, colorutil.Black, merged.RGBAAt(6, 2))
	assert.Equal(t, colorutil.Black, merged.RGBAAt(9, 5))
}

func TestMoveSelectionDoesNotResurrectCutPixels(t *testing.T) {
	d := canvasFixture(16, 16, colorutil.White)

	d.Select(selection.FromRect(geometry.NewRect(0, 0, 4, 4)))
	d.MoveSelection(geometry.NewVec2(8, 0))

	d.Select(selection.FromRect(geometry.NewRect(0, 0, 6, 6)))
	d.MoveSelection(geometry.NewVec2(0, 8))

	merged := d.Merged()
	assert.Equal(t, colorutil.Transparent, merged.RGBAAt(0, 0))
	assert.Equal(t, colorutil.Transparent, merged.RGBAAt(3, 3))
	assert.Equal(t, colorutil.Transparent, merged.RGBAAt(5, 5))
	assert.Equal(t, colorutil.White, merged.RGBAAt(9, 1))
	assert.Equal(t, colorutil.White, merged.RGBAAt(5, 13))
	assert.Equal(t, colorutil.White, merged.RGBAAt(15, 15))
}

func TestDrawWithBrush(t *testing.T) {
	d := canvasFixture(32, 32, colorutil.White)
	d.DrawWithBrush([]geometry.Vec2{geometry.NewVec2(16, 16)})

	assert.Equal(t, plane.KindDraw, d.Planes().At(1).Kind())
	assert.Equal(t, plane.BrushColor, d.Merged().RGBAAt(16, 16))
}

func TestClonedSnapshotIsIsolated(t *testing.T) {
	d := canvasFixture(16, 16, colorutil.White)
	d.Select(selection.FromRect(geometry.NewRect(0, 0, 4, 4)))
	snapshot := d.Clone()

	d.MoveSelection(geometry.NewVec2(8, 8))
	d.MoveCanvas(geometry.NewVec2(1, 1))

	assert.Equal(t, colorutil.White, snapshot.Merged().RGBAAt(0, 0))
	assert.Equal(t, geometry.Point{}, snapshot.Position())
	sel, _ := snapshot.Selection()
	assert.Equal(t, geometry.NewRect(0, 0, 4, 4), sel.Bounds())
	assert.False(t, snapshot.Bound())
}

func TestSame(t *testing.T) {
	d := canvasFixture(8, 8, colorutil.White)
	c := d.Clone()
	assert.True(t, d.Same(&c))

	d.MoveCanvas(geometry.NewVec2(1, 0))
	assert.False(t, d.Same(&c))

	e := canvasFixture(8, 8, colorutil.White)
	assert.False(t, e.Same(&c), "equal pixels are not the same planes")
}

func TestSaveRoundTrip(t *testing.T) {
	d := canvasFixture(8, 8, colorutil.White)
	d.Paste(pimage.Solid(2, 2, colorutil.Black))

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, d.Save(path))
	assert.Equal(t, path, d.Path())

	loaded, err := pimage.Load(path)
	require.NoError(t, err)
	assert.Equal(t, colorutil.Black, loaded.RGBAAt(1, 1))
	assert.Equal(t, colorutil.White, loaded.RGBAAt(5, 5))
}

func TestSaveFailureKeepsPath(t *testing.T) {
	d := canvasFixture(4, 4, colorutil.White)

	err := d.Save(filepath.Join(t.TempDir(), "out.xyz"))
	assert.ErrorIs(t, err, pimage.ErrUnsupportedFormat)
	assert.Equal(t, "fixture.png", d.Path())

	err = d.Save(filepath.Join(t.TempDir(), "missing", "out.png"))
	assert.Error(t, err)
	assert.Equal(t, "fixture.png", d.Path())
}

func TestPaintHonoursTransform(t *testing.T) {
	d := canvasFixture(16, 16, colorutil.White)
	d.MoveCanvas(geometry.NewVec2(4, 4))

	img := pimage.Render(d)
	require.NotNil(t, img)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, uint8(0), img.RGBAAt(1, 1).A)
	assert.Equal(t, colorutil.White, img.RGBAAt(10, 10))
}

func TestStringDescribesSelection(t *testing.T) {
	d := canvasFixture(4, 4, colorutil.White)
	assert.Contains(t, d.String(), "selection: none")

	d.Select(selection.FromRect(geometry.NewRect(1, 1, 2, 2)))
	assert.Contains(t, d.String(), "selection: Rect X: 1, Y: 1, W: 2, H: 2")
	assert.Contains(t, d.String(), "RGBA[4, 4]")
}
