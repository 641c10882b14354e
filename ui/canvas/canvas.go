// Package canvas provides the editor widget: it renders the open document
// with zoom and routes pointer gestures to the active tool.
package canvas

import (
	"image"

	"paintr/internal/app"
	pcanvas "paintr/internal/canvas"
	"paintr/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const (
	minZoom  = 0.1
	maxZoom  = 10.0
	zoomStep = 1.25
)

// EditorCanvas displays the document held by an app.State.
type EditorCanvas struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster
	zoom   float64

	pressed bool

	// Callbacks
	onZoomChange  func(zoom float64)
	onPointerMove func(pt geometry.Point)
}

var (
	_ fyne.Draggable    = (*EditorCanvas)(nil)
	_ fyne.Scrollable   = (*EditorCanvas)(nil)
	_ desktop.Mouseable = (*EditorCanvas)(nil)
	_ desktop.Hoverable = (*EditorCanvas)(nil)
)

// NewEditorCanvas creates a canvas widget bound to state. It refreshes on
// every document change.
func NewEditorCanvas(state *app.State) *EditorCanvas {
	ec := &EditorCanvas{state: state, zoom: 1.0}
	ec.raster = fynecanvas.NewRaster(ec.draw)
	ec.raster.ScaleMode = fynecanvas.ImageScalePixels
	ec.ExtendBaseWidget(ec)

	refresh := func(interface{}) { ec.Refresh() }
	state.On(app.EventCanvasChanged, refresh)
	state.On(app.EventDocumentOpened, func(interface{}) {
		ec.pressed = false
		ec.Refresh()
	})
	return ec
}

// SetZoom sets the zoom level, clamped to the supported range.
func (ec *EditorCanvas) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	ec.zoom = zoom
	ec.Refresh()
	if ec.onZoomChange != nil {
		ec.onZoomChange(zoom)
	}
}

// Zoom returns the zoom level.
func (ec *EditorCanvas) Zoom() float64 {
	return ec.zoom
}

// ZoomIn zooms in by one step.
func (ec *EditorCanvas) ZoomIn() {
	ec.SetZoom(ec.zoom * zoomStep)
}

// ZoomOut zooms out by one step.
func (ec *EditorCanvas) ZoomOut() {
	ec.SetZoom(ec.zoom / zoomStep)
}

// ResetZoom returns to 100%.
func (ec *EditorCanvas) ResetZoom() {
	ec.SetZoom(1.0)
}

// OnZoomChange sets the callback for zoom changes.
func (ec *EditorCanvas) OnZoomChange(callback func(zoom float64)) {
	ec.onZoomChange = callback
}

// OnPointerMove sets the callback reporting the pointer in view
// coordinates.
func (ec *EditorCanvas) OnPointerMove(callback func(pt geometry.Point)) {
	ec.onPointerMove = callback
}

// toView converts a widget position to view coordinates.
func (ec *EditorCanvas) toView(pos fyne.Position) geometry.Point {
	return ViewPoint(float64(pos.X), float64(pos.Y), ec.zoom)
}

// MouseDown implements desktop.Mouseable.
func (ec *EditorCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	ec.pressed = true
	ec.state.PointerDown(ec.toView(ev.Position))
}

// MouseUp implements desktop.Mouseable.
func (ec *EditorCanvas) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary || !ec.pressed {
		return
	}
	ec.pressed = false
	ec.state.PointerUp(ec.toView(ev.Position))
}

// Dragged implements fyne.Draggable.
func (ec *EditorCanvas) Dragged(ev *fyne.DragEvent) {
	if !ec.pressed {
		return
	}
	pt := ec.toView(ev.Position)
	ec.state.PointerMove(pt)
	if ec.onPointerMove != nil {
		ec.onPointerMove(pt)
	}
}

// DragEnd implements fyne.Draggable. The release itself arrives as MouseUp.
func (ec *EditorCanvas) DragEnd() {}

// MouseIn implements desktop.Hoverable.
func (ec *EditorCanvas) MouseIn(ev *desktop.MouseEvent) {}

// MouseMoved implements desktop.Hoverable.
func (ec *EditorCanvas) MouseMoved(ev *desktop.MouseEvent) {
	if ec.onPointerMove != nil {
		ec.onPointerMove(ec.toView(ev.Position))
	}
}

// MouseOut implements desktop.Hoverable.
func (ec *EditorCanvas) MouseOut() {}

// Scrolled implements fyne.Scrollable: the wheel zooms.
func (ec *EditorCanvas) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		ec.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		ec.ZoomOut()
	}
}

// draw is the raster drawing function. w and h are in device pixels.
func (ec *EditorCanvas) draw(w, h int) image.Image {
	scale := ec.zoom
	if size := ec.Size(); size.Width > 0 {
		scale *= float64(w) / float64(size.Width)
	}
	var img image.Image
	ec.state.View(func(d *pcanvas.Data) {
		img = Render(d, w, h, scale)
	})
	return img
}

// CreateRenderer implements fyne.Widget.
func (ec *EditorCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &editorCanvasRenderer{canvas: ec}
}

type editorCanvasRenderer struct {
	canvas *EditorCanvas
}

func (r *editorCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.raster.Resize(size)
}

func (r *editorCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *editorCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *editorCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.raster}
}

func (r *editorCanvasRenderer) Destroy() {}
