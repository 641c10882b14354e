package main

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"paintr/internal/actions"
	"paintr/internal/canvas"
	pimage "paintr/internal/image"
	"paintr/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	script := `
# comment
paste logo.png
move 3 -4
select 0 0 10 5
movesel 1.5 2
brush 1,2 3,4
deselect
undo
REDO
`
	ops, err := parseScript(strings.NewReader(script))
	require.NoError(t, err)
	require.Len(t, ops, 8)

	assert.Equal(t, opPaste, ops[0].kind)
	assert.Equal(t, "logo.png", ops[0].path)
	assert.Equal(t, 3, ops[0].line)

	assert.Equal(t, opMove, ops[1].kind)
	assert.Equal(t, geometry.NewVec2(3, -4), ops[1].offset)

	assert.Equal(t, opSelect, ops[2].kind)
	assert.Equal(t, geometry.NewRect(0, 0, 10, 5), ops[2].rect)

	assert.Equal(t, opMoveSelection, ops[3].kind)
	assert.Equal(t, geometry.NewVec2(1.5, 2), ops[3].offset)

	assert.Equal(t, opBrush, ops[4].kind)
	assert.Equal(t, []geometry.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}}, ops[4].points)

	assert.Equal(t, opDeselect, ops[5].kind)
	assert.Equal(t, opUndo, ops[6].kind)
	assert.Equal(t, opRedo, ops[7].kind)
	assert.Equal(t, "REDO", ops[7].text)
}

func TestParseScriptErrors(t *testing.T) {
	cases := map[string]string{
		"unknown":       "line 1: unknown command \"fill\"",
		"paste":         "paste takes a file name",
		"move 1":        "want 2 numbers, got 1",
		"move a b":      "bad number \"a\"",
		"select 1 2 3":  "want 4 numbers, got 3",
		"brush":         "brush needs at least one point",
		"brush 1;2":     "is not X,Y",
		"undo now":      "undo takes no arguments",
		"movesel 1 2 3": "want 2 numbers, got 3",
	}
	for script, want := range cases {
		if script == "unknown" {
			script = "fill"
		}
		_, err := parseScript(strings.NewReader(script))
		if assert.Error(t, err, script) {
			assert.Contains(t, err.Error(), want, script)
		}
	}
}

func newRunner(t *testing.T, images map[string]*image.RGBA) *runner {
	t.Helper()
	return &runner{
		doc:     canvas.New("base.png", pimage.Solid(8, 8, color.RGBA{255, 255, 255, 255})),
		history: actions.NewHistory(),
		load: func(path string) (*image.RGBA, error) {
			if img, ok := images[path]; ok {
				return img, nil
			}
			return nil, errors.New("not found")
		},
	}
}

func TestRunnerAppliesScript(t *testing.T) {
	red := pimage.Solid(2, 2, color.RGBA{255, 0, 0, 255})
	r := newRunner(t, map[string]*image.RGBA{"red.png": red})

	ops, err := parseScript(strings.NewReader("paste red.png\nmovesel 1 1\nselect 0 0 2 2\nmovesel 4 4\nundo\nredo\nredo"))
	require.NoError(t, err)

	results, err := r.run(ops)
	require.NoError(t, err)
	require.Len(t, results, 7)

	assert.True(t, results[0].applied)
	assert.Equal(t, "Paste", results[0].detail)
	assert.False(t, results[1].applied, "move selection without a selection")
	assert.True(t, results[2].applied)
	assert.Equal(t, "Undo Move Selection", results[4].detail)
	assert.Equal(t, "Redo Move Selection", results[5].detail)
	assert.False(t, results[6].applied)
	assert.Equal(t, "nothing to redo", results[6].detail)

	merged := r.doc.Merged()
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, merged.RGBAAt(4, 4))
	assert.Equal(t, color.RGBA{}, merged.RGBAAt(0, 0), "lifted pixels leave a hole")
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, merged.RGBAAt(2, 2))
	assert.Equal(t, 2, r.history.Len())
}

func TestRunnerStopsOnLoadFailure(t *testing.T) {
	r := newRunner(t, nil)
	ops, err := parseScript(strings.NewReader("move 1 1\npaste missing.png\nmove 1 1"))
	require.NoError(t, err)

	results, err := r.run(ops)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Len(t, results, 1)
}

func TestRenderReport(t *testing.T) {
	r := newRunner(t, nil)
	ops, err := parseScript(strings.NewReader("move 2 0\nundo"))
	require.NoError(t, err)
	results, err := r.run(ops)
	require.NoError(t, err)

	out := renderReport(results, r.history, r.doc)
	assert.Contains(t, out, "move 2 0")
	assert.Contains(t, out, "Undo Move")
	assert.Contains(t, out, "8x8")
	assert.Contains(t, out, "redo     Move")
}
