package main

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"paintr/internal/actions"
	"paintr/internal/canvas"
	"paintr/internal/edit"
	"paintr/internal/selection"
	"paintr/pkg/geometry"
)

type opKind int

const (
	opPaste opKind = iota
	opMove
	opMoveSelection
	opSelect
	opDeselect
	opBrush
	opUndo
	opRedo
)

// op is one parsed script line.
type op struct {
	line   int
	kind   opKind
	text   string
	path   string
	offset geometry.Vec2
	rect   geometry.Rect
	points []geometry.Vec2
}

// parseScript reads one command per line. Blank lines and lines starting
// with '#' are ignored.
//
//	paste FILE
//	move DX DY
//	movesel DX DY
//	select X Y W H
//	deselect
//	brush X,Y [X,Y ...]
//	undo
//	redo
func parseScript(r io.Reader) ([]op, error) {
	var ops []op
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		o, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		o.line = line
		o.text = text
		ops = append(ops, o)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ops, nil
}

func parseLine(text string) (op, error) {
	fields := strings.Fields(text)
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "paste":
		if len(args) != 1 {
			return op{}, fmt.Errorf("paste takes a file name")
		}
		return op{kind: opPaste, path: args[0]}, nil
	case "move", "movesel":
		v, err := parseFloats(args, 2)
		if err != nil {
			return op{}, fmt.Errorf("%s: %w", name, err)
		}
		kind := opMove
		if name == "movesel" {
			kind = opMoveSelection
		}
		return op{kind: kind, offset: geometry.NewVec2(v[0], v[1])}, nil
	case "select":
		v, err := parseFloats(args, 4)
		if err != nil {
			return op{}, fmt.Errorf("select: %w", err)
		}
		return op{kind: opSelect, rect: geometry.NewRect(v[0], v[1], v[2], v[3])}, nil
	case "brush":
		if len(args) == 0 {
			return op{}, fmt.Errorf("brush needs at least one point")
		}
		points := make([]geometry.Vec2, 0, len(args))
		for _, a := range args {
			x, y, ok := strings.Cut(a, ",")
			if !ok {
				return op{}, fmt.Errorf("brush: point %q is not X,Y", a)
			}
			v, err := parseFloats([]string{x, y}, 2)
			if err != nil {
				return op{}, fmt.Errorf("brush: %w", err)
			}
			points = append(points, geometry.NewVec2(v[0], v[1]))
		}
		return op{kind: opBrush, points: points}, nil
	case "deselect", "undo", "redo":
		if len(args) != 0 {
			return op{}, fmt.Errorf("%s takes no arguments", name)
		}
		switch name {
		case "deselect":
			return op{kind: opDeselect}, nil
		case "undo":
			return op{kind: opUndo}, nil
		default:
			return op{kind: opRedo}, nil
		}
	default:
		return op{}, fmt.Errorf("unknown command %q", fields[0])
	}
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("want %d numbers, got %d", n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", a)
		}
		out[i] = f
	}
	return out, nil
}

// stepResult records what a script line did to the document.
type stepResult struct {
	op      op
	applied bool
	detail  string
}

// runner applies parsed ops to a document through its history.
type runner struct {
	doc     *canvas.Data
	history *actions.History
	load    func(path string) (*image.RGBA, error)
}

func (r *runner) run(ops []op) ([]stepResult, error) {
	results := make([]stepResult, 0, len(ops))
	for _, o := range ops {
		res, err := r.step(o)
		if err != nil {
			return results, fmt.Errorf("line %d: %w", o.line, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *runner) step(o op) (stepResult, error) {
	res := stepResult{op: o, applied: true}
	switch o.kind {
	case opPaste:
		img, err := r.load(o.path)
		if err != nil {
			return res, err
		}
		r.edit(actions.Paste(img), &res)
	case opMove:
		r.edit(actions.MoveCanvas(o.offset), &res)
	case opMoveSelection:
		if _, ok := r.doc.Selection(); !ok {
			res.applied, res.detail = false, "no selection"
			break
		}
		r.edit(actions.MoveSelection(o.offset), &res)
	case opBrush:
		r.edit(actions.DrawBrush(o.points), &res)
	case opSelect:
		r.doc.Select(selection.FromRect(o.rect))
		if sel, ok := r.doc.Selection(); ok {
			res.detail = sel.Description()
		} else {
			res.applied, res.detail = false, "empty selection"
		}
	case opDeselect:
		r.doc.ClearSelection()
	case opUndo:
		desc, ok := r.history.Undo(r.doc)
		res.applied, res.detail = ok, undoDetail("Undo", desc, ok)
	case opRedo:
		desc, ok := r.history.Redo(r.doc)
		res.applied, res.detail = ok, undoDetail("Redo", desc, ok)
	}
	return res, nil
}

func (r *runner) edit(a actions.Action, res *stepResult) {
	r.history.Edit(r.doc, a, edit.NonMergeable)
	res.detail = a.Description().String()
}

func undoDetail(verb string, desc edit.Desc, ok bool) string {
	if !ok {
		return "nothing to " + strings.ToLower(verb)
	}
	return verb + " " + desc.String()
}
