package main

import (
	"fmt"
	"strings"

	"paintr/internal/actions"
	"paintr/internal/canvas"

	"github.com/charmbracelet/lipgloss"
)

var styles = struct {
	header  lipgloss.Style
	line    lipgloss.Style
	ok      lipgloss.Style
	skipped lipgloss.Style
	summary lipgloss.Style
}{
	header:  lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	line:    lipgloss.NewStyle().Width(5).Align(lipgloss.Right).Foreground(lipgloss.Color("243")),
	ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	skipped: lipgloss.NewStyle().Faint(true),
	summary: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
}

// renderReport lists each script step followed by a summary of the
// resulting document.
func renderReport(results []stepResult, history *actions.History, doc *canvas.Data) string {
	var b strings.Builder
	b.WriteString(styles.header.Render("compose"))
	b.WriteString("\n")

	width := 0
	for _, res := range results {
		width = max(width, lipgloss.Width(res.op.text))
	}
	cmd := lipgloss.NewStyle().Width(width + 2)

	for _, res := range results {
		detail := styles.ok.Render(res.detail)
		if !res.applied {
			detail = styles.skipped.Render(res.detail)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			styles.line.Render(fmt.Sprint(res.op.line)), "  ",
			cmd.Render(res.op.text),
			detail,
		))
		b.WriteString("\n")
	}

	w, h := doc.Size().ImageSize()
	lines := []string{
		fmt.Sprintf("size     %dx%d", w, h),
		fmt.Sprintf("planes   %d", doc.Planes().Len()),
		fmt.Sprintf("history  %d steps", history.Len()),
	}
	if desc, ok := history.UndoDesc(); ok {
		lines = append(lines, "undo     "+desc.String())
	}
	if desc, ok := history.RedoDesc(); ok {
		lines = append(lines, "redo     "+desc.String())
	}
	b.WriteString(styles.summary.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")
	return b.String()
}
