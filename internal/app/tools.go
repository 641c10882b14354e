package app

import (
	"paintr/internal/actions"
	"paintr/internal/edit"
	"paintr/internal/selection"
	"paintr/pkg/geometry"
)

// Tool is the pointer tool selected in the toolbar.
type Tool int

const (
	ToolMove Tool = iota
	ToolSelect
	ToolBrush
)

// Tools lists every tool in toolbar order.
var Tools = []Tool{ToolMove, ToolSelect, ToolBrush}

func (t Tool) String() string {
	switch t {
	case ToolMove:
		return "Move"
	case ToolSelect:
		return "Select"
	case ToolBrush:
		return "Brush"
	default:
		return "Unknown"
	}
}

// ParseTool returns the tool named s, as produced by Tool.String.
func ParseTool(s string) (Tool, bool) {
	for _, t := range Tools {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}

// gesture is the state of one press-drag-release interaction. moved
// reports whether the document changed.
type gesture interface {
	moved(e *Editor, pt geometry.Point, kind edit.Kind) bool
}

// Tool returns the active tool.
func (e *Editor) Tool() Tool {
	return e.tool
}

// SetTool switches tools, abandoning any gesture in progress.
func (e *Editor) SetTool(t Tool) {
	e.tool = t
	e.CancelGesture()
}

// PointerDown starts a gesture at pt, in view coordinates.
func (e *Editor) PointerDown(pt geometry.Point) bool {
	if e.canvas == nil {
		return false
	}
	switch e.tool {
	case ToolMove:
		e.gesture = newMoveGesture(e, pt)
	case ToolSelect:
		e.gesture = newSelectGesture(e, pt)
	case ToolBrush:
		e.gesture = &brushGesture{}
	}
	return false
}

// PointerMove continues the current gesture. It reports whether the
// document changed.
func (e *Editor) PointerMove(pt geometry.Point) bool {
	if e.gesture == nil {
		return false
	}
	return e.gesture.moved(e, pt, edit.Mergeable)
}

// PointerUp finishes the current gesture.
func (e *Editor) PointerUp(pt geometry.Point) bool {
	g := e.gesture
	if g == nil {
		return false
	}
	e.gesture = nil
	return g.moved(e, pt, edit.NonMergeable)
}

// CancelGesture drops the gesture in progress. Edits it already made stay
// as one closed undo step.
func (e *Editor) CancelGesture() {
	e.gesture = nil
	if e.editing {
		e.history.Commit()
		e.editing = false
	}
}

// moveGesture drags either the selection or the whole canvas. Each step
// sends the distance from the last position so merged steps add up to the
// whole drag.
type moveGesture struct {
	selection bool
	down      geometry.Point
	origin    geometry.Point
	curr      geometry.Point
	sent      bool
}

func newMoveGesture(e *Editor, pt geometry.Point) *moveGesture {
	g := &moveGesture{down: pt, origin: e.canvas.Position()}
	if sel, ok := e.canvas.Selection(); ok && sel.Contains(pt) {
		g.selection = true
		g.origin = sel.Position()
	}
	g.curr = g.origin
	return g
}

func (g *moveGesture) moved(e *Editor, pt geometry.Point, kind edit.Kind) bool {
	if e.canvas == nil {
		return false
	}
	target := g.origin.Add(pt.Sub(g.down))
	offset := target.Sub(g.curr)
	if offset.IsZero() && (!g.sent || kind == edit.Mergeable) {
		// Nothing to add; a release still closes an open step.
		return false
	}

	if g.selection {
		if _, ok := e.canvas.Selection(); !ok {
			if kind == edit.NonMergeable {
				e.CancelGesture()
			}
			return false
		}
		e.Do(actions.MoveSelection(offset), kind)
	} else {
		e.Do(actions.MoveCanvas(offset), kind)
	}
	g.curr = target
	g.sent = true
	return true
}

// selectGesture draws a new rectangle from the press point, or drags the
// existing selection when pressed inside it.
type selectGesture struct {
	down geometry.Point
	old  *selection.Selection
}

func newSelectGesture(e *Editor, pt geometry.Point) *selectGesture {
	g := &selectGesture{down: pt}
	if sel, ok := e.canvas.Selection(); ok && sel.Contains(pt) {
		g.old = &sel
	}
	return g
}

func (g *selectGesture) moved(e *Editor, pt geometry.Point, _ edit.Kind) bool {
	if g.old != nil {
		return e.reselect(g.old.Transform(pt.Sub(g.down)))
	}
	return e.reselect(selection.FromPoints(g.down, pt))
}

// brushGesture stamps the brush under the pointer. Points are converted
// from view to canvas coordinates.
type brushGesture struct{}

func (g *brushGesture) moved(e *Editor, pt geometry.Point, kind edit.Kind) bool {
	if e.canvas == nil {
		return false
	}
	local := pt.Sub(e.canvas.Position())
	return e.Do(actions.DrawBrush([]geometry.Vec2{local}), kind)
}
