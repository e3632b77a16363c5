package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/wikicloud/pkg/panel"
)

const (
	panelMinWidth = 28
	panelMaxWidth = 48
	closeLabel    = "[x]"
)

// panelFrame is the rendered detail panel anchored to the right edge,
// directly below the top bar.
type panelFrame struct {
	col, row int
	width    int
	lines    []string
}

func (f panelFrame) contains(col, row int) bool {
	return col >= f.col && col < f.col+f.width && row >= f.row && row < f.row+len(f.lines)
}

// onClose reports whether (col, row) is on the [x] label: first content row,
// right-aligned inside border and padding.
func (f panelFrame) onClose(col, row int) bool {
	right := f.col + f.width - 3
	return row == f.row+1 && col <= right && col > right-len(closeLabel)
}

// framePanel renders st for a terminal of termW x termH cells.
func framePanel(st panel.State, termW, termH int) panelFrame {
	pw := min(max(termW/2, panelMinWidth), panelMaxWidth, termW)
	inner := max(pw-4, len(closeLabel)+2)

	title := ansi.Truncate(st.Title, inner-len(closeLabel)-1, "…")
	gap := max(inner-ansi.StringWidth(title)-len(closeLabel), 1)
	header := stylePanelHead.Render(title) + strings.Repeat(" ", gap) + styleClose.Render(closeLabel)

	parts := []string{header, "", st.Text}
	if st.ImageURL != "" {
		parts = append(parts, "", styleDim.Render("image ")+styleLink.Render(ansi.Truncate(st.ImageURL, inner-6, "…")))
	}
	parts = append(parts, styleDim.Render("search ")+styleLink.Render(ansi.Truncate(st.Link, inner-7, "…")))

	box := stylePanel.Width(pw - 2).Render(strings.Join(parts, "\n"))
	lines := strings.Split(box, "\n")
	if maxH := termH - 2; maxH >= 2 && len(lines) > maxH {
		lines = append(lines[:maxH-1:maxH-1], lines[len(lines)-1])
	}
	return panelFrame{col: termW - pw, row: 1, width: pw, lines: lines}
}
