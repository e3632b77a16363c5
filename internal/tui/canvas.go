package tui

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/wikicloud/pkg/cloud"
	"github.com/matzehuels/wikicloud/pkg/viewport"
)

// canvas holds the committed placements of the current generation. It is
// the session's render surface; rows are mapped to the screen through view.
type canvas struct {
	placements []cloud.Placement
	view       *viewport.Controller
	padX, padY int
}

var _ cloud.Surface = (*canvas)(nil)

func newCanvas() *canvas {
	return &canvas{view: viewport.New(nil)}
}

func (c *canvas) Clear() { c.placements = c.placements[:0] }

func (c *canvas) Render(p cloud.Placement) { c.placements = append(c.placements, p) }

// cell is a placement snapped to whole cells in screen coordinates.
type cell struct {
	col, row int
	w, h     int
}

func (r cell) contains(col, row int) bool {
	return col >= r.col && col < r.col+r.w && row >= r.row && row < r.row+r.h
}

// cellOf snaps p's box to the screen grid at the current translation.
func (c *canvas) cellOf(p cloud.Placement) cell {
	return cell{
		col: int(math.Round(p.Box.X)),
		row: int(math.Round(c.view.ToScreen(p.Box.Y))),
		w:   int(math.Round(p.Box.W)),
		h:   int(math.Round(p.Box.H)),
	}
}

// hit returns the placement drawn at screen cell (col, row).
func (c *canvas) hit(col, row int) (cloud.Placement, bool) {
	for i := len(c.placements) - 1; i >= 0; i-- {
		if c.cellOf(c.placements[i]).contains(col, row) {
			return c.placements[i], true
		}
	}
	return cloud.Placement{}, false
}

type segment struct {
	col  int
	text string
}

// lines draws the visible window of the surface, height rows of at most
// width cells. The title equal to active is highlighted.
func (c *canvas) lines(width, height int, active string) []string {
	rows := make([][]segment, height)
	for _, p := range c.placements {
		r := c.cellOf(p)
		row, col := r.row+c.padY, r.col+c.padX
		if row < 0 || row >= height || col >= width {
			continue
		}
		style := styleTitle
		if p.Title == active {
			style = styleActive
		}
		text := ansi.Truncate(p.Title, width-col, "…")
		rows[row] = append(rows[row], segment{col: col, text: style.Render(text)})
	}

	out := make([]string, height)
	for i, segs := range rows {
		sort.Slice(segs, func(a, b int) bool { return segs[a].col < segs[b].col })
		var b strings.Builder
		cursor := 0
		for _, s := range segs {
			if s.col < cursor {
				continue
			}
			b.WriteString(strings.Repeat(" ", s.col-cursor))
			b.WriteString(s.text)
			cursor = s.col + ansi.StringWidth(s.text)
		}
		out[i] = b.String()
	}
	return out
}

// overlay replaces the cells of line from col onward with seg.
func overlay(line string, col int, seg string) string {
	left := ansi.Truncate(line, col, "")
	if pad := col - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	return left + seg
}
