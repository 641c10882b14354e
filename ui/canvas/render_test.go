package canvas

import (
	"image/color"
	"testing"

	"paintr/internal/app"
	pcanvas "paintr/internal/canvas"
	pimage "paintr/internal/image"
	"paintr/pkg/colorutil"
	"paintr/pkg/geometry"

	"github.com/stretchr/testify/assert"
)

func workspace() color.RGBA {
	c := app.WorkspaceColor
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func TestRenderWithoutDocument(t *testing.T) {
	img := Render(nil, 10, 5, 1)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, workspace(), img.RGBAAt(9, 4))

	assert.True(t, Render(nil, 0, 5, 1).Bounds().Empty())
}

func TestRenderScalesDocument(t *testing.T) {
	d := pcanvas.New("doc.png", pimage.Solid(4, 4, colorutil.White))

	img := Render(d, 16, 16, 2)
	assert.Equal(t, colorutil.White, img.RGBAAt(4, 4))
	assert.Equal(t, workspace(), img.RGBAAt(12, 12))
}

func TestRenderShowsCheckerUnderTransparency(t *testing.T) {
	d := pcanvas.New("doc.png", pimage.Transparent(16, 16))

	img := Render(d, 16, 16, 1)
	assert.NotEqual(t, workspace(), img.RGBAAt(4, 4))
	assert.NotEqual(t, img.RGBAAt(4, 4), img.RGBAAt(12, 4), "alternating squares")
}

func TestViewPoint(t *testing.T) {
	assert.Equal(t, geometry.Pt(5, 10), ViewPoint(10, 20, 2))
	assert.Equal(t, geometry.Pt(10, 20), ViewPoint(10, 20, 1))
}
