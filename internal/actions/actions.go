// Package actions defines the document edits recorded in the undo history.
package actions

import (
	"fmt"
	"image"

	"paintr/internal/canvas"
	"paintr/internal/edit"
	"paintr/pkg/geometry"
)

// Kind identifies the variant of an Action.
type Kind int

const (
	KindPaste Kind = iota
	KindMoveCanvas
	KindMoveSelection
	KindDrawBrush
)

var kindNames = [...]string{
	KindPaste:         "Paste",
	KindMoveCanvas:    "Move",
	KindMoveSelection: "Move Selection",
	KindDrawBrush:     "Draw Brush",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Action is a single edit of a canvas. Only the payload matching its kind
// is set. Actions are immutable values.
type Action struct {
	kind   Kind
	img    *image.RGBA
	offset geometry.Vec2
	points []geometry.Vec2
}

// History is the undo history of a canvas.
type History = edit.History[canvas.Data, Action]

// NewHistory returns an empty canvas history.
func NewHistory() *History {
	return edit.New[canvas.Data, Action]()
}

// Paste adds img as a new plane. The image must not be modified afterwards.
func Paste(img *image.RGBA) Action {
	return Action{kind: KindPaste, img: img}
}

// MoveCanvas translates the whole canvas.
func MoveCanvas(offset geometry.Vec2) Action {
	return Action{kind: KindMoveCanvas, offset: offset}
}

// MoveSelection moves the selected pixels.
func MoveSelection(offset geometry.Vec2) Action {
	return Action{kind: KindMoveSelection, offset: offset}
}

// DrawBrush stamps the brush at each point, in canvas coordinates.
func DrawBrush(points []geometry.Vec2) Action {
	return Action{kind: KindDrawBrush, points: points}
}

// Kind returns the action variant.
func (a Action) Kind() Kind {
	return a.kind
}

// Offset returns the translation of a move action.
func (a Action) Offset() geometry.Vec2 {
	return a.offset
}

// Points returns the brush points of a DrawBrush action.
func (a Action) Points() []geometry.Vec2 {
	return a.points
}

// Apply performs the action on d.
func (a Action) Apply(d *canvas.Data) {
	switch a.kind {
	case KindPaste:
		d.Paste(a.img)
	case KindMoveCanvas:
		d.MoveCanvas(a.offset)
	case KindMoveSelection:
		d.MoveSelection(a.offset)
	case KindDrawBrush:
		d.DrawWithBrush(a.points)
	}
}

// Description returns the undo menu label.
func (a Action) Description() edit.Desc {
	return edit.Desc(a.kind.String())
}

// mergers holds, per kind, how a previous action folds into the next one
// of the same kind. Kinds without an entry never merge.
var mergers = map[Kind]func(prev, next Action) Action{
	KindMoveCanvas:    mergeOffsets,
	KindMoveSelection: mergeOffsets,
	KindDrawBrush:     mergePoints,
}

func mergeOffsets(prev, next Action) Action {
	next.offset = next.offset.Add(prev.offset)
	return next
}

func mergePoints(prev, next Action) Action {
	points := make([]geometry.Vec2, 0, len(prev.points)+len(next.points))
	points = append(points, prev.points...)
	next.points = append(points, next.points...)
	return next
}

// Merge folds a into next when both are the same mergeable kind.
func (a Action) Merge(next Action) (Action, bool) {
	if a.kind != next.kind {
		return next, false
	}
	merge, ok := mergers[a.kind]
	if !ok {
		return next, false
	}
	return merge(a, next), true
}

func (a Action) String() string {
	switch a.kind {
	case KindPaste:
		b := a.img.Bounds()
		return fmt.Sprintf("Paste { RGBA[%d, %d] }", b.Dx(), b.Dy())
	case KindMoveCanvas, KindMoveSelection:
		return fmt.Sprintf("%s { %v, %v }", a.kind, a.offset.X, a.offset.Y)
	default:
		return fmt.Sprintf("%s { %d points }", a.kind, len(a.points))
	}
}
