package app

import (
	"paintr/internal/actions"
	"paintr/internal/canvas"
	"paintr/internal/edit"
	"paintr/internal/selection"
)

// Editor couples the open document with its undo history and the pointer
// gesture in progress.
type Editor struct {
	canvas  *canvas.Data
	history *actions.History
	tool    Tool
	gesture gesture
	editing bool
}

// NewEditor returns an editor with no document. A positive historyLimit
// caps the number of undo steps.
func NewEditor(historyLimit int) *Editor {
	h := actions.NewHistory()
	h.SetLimit(historyLimit)
	return &Editor{history: h, tool: ToolSelect}
}

// Canvas returns the open document, or nil.
func (e *Editor) Canvas() *canvas.Data {
	return e.canvas
}

// SetCanvas replaces the open document and forgets the previous history.
func (e *Editor) SetCanvas(d *canvas.Data) {
	e.canvas = d
	e.history.Clear()
	e.gesture = nil
	e.editing = false
}

// History returns the undo history.
func (e *Editor) History() *actions.History {
	return e.history
}

// Editing reports whether the last edit was Mergeable, i.e. a gesture is
// still adding to the current undo step.
func (e *Editor) Editing() bool {
	return e.editing
}

// Do records a on the open document. It returns false without a document.
func (e *Editor) Do(a actions.Action, kind edit.Kind) bool {
	e.editing = kind == edit.Mergeable
	if e.canvas == nil {
		return false
	}
	e.history.Edit(e.canvas, a, kind)
	return true
}

// Undo reverts the newest undo step. Nothing happens mid-gesture.
func (e *Editor) Undo() (edit.Desc, bool) {
	if e.editing || e.canvas == nil {
		return "", false
	}
	return e.history.Undo(e.canvas)
}

// Redo re-applies the newest undone step. Nothing happens mid-gesture.
func (e *Editor) Redo() (edit.Desc, bool) {
	if e.editing || e.canvas == nil {
		return "", false
	}
	return e.history.Redo(e.canvas)
}

// Select replaces the selection, ending any gesture in progress.
// Selection changes are not undo steps.
func (e *Editor) Select(sel selection.Selection) bool {
	if e.canvas == nil {
		return false
	}
	e.CancelGesture()
	e.canvas.Select(sel)
	return true
}

// ClearSelection drops the selection, ending any gesture in progress.
func (e *Editor) ClearSelection() bool {
	if e.canvas == nil {
		return false
	}
	e.CancelGesture()
	e.canvas.ClearSelection()
	return true
}

// reselect replaces the selection from within the select gesture.
func (e *Editor) reselect(sel selection.Selection) bool {
	if e.canvas == nil {
		return false
	}
	e.canvas.Select(sel)
	return true
}
