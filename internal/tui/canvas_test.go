package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/wikicloud/pkg/cloud"
	"github.com/matzehuels/wikicloud/pkg/geom"
	"github.com/matzehuels/wikicloud/pkg/panel"
)

func testCanvas() *canvas {
	c := newCanvas()
	c.padX = 1
	c.Render(cloud.Placement{Title: "Rome", Box: geom.Box{X: 2, Y: 1, W: 6, H: 1}})
	c.Render(cloud.Placement{Title: "Carthage", Box: geom.Box{X: 10, Y: 1, W: 10, H: 1}})
	c.Render(cloud.Placement{Title: "Athens", Box: geom.Box{X: 0, Y: 3, W: 8, H: 1}})
	return c
}

func TestCanvasLines(t *testing.T) {
	c := testCanvas()
	lines := c.lines(30, 5, "")

	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	row1 := ansi.Strip(lines[1])
	if row1 != "   Rome    Carthage" {
		t.Errorf("row 1 = %q", row1)
	}
	if got := ansi.Strip(lines[3]); got != " Athens" {
		t.Errorf("row 3 = %q", got)
	}
	if lines[0] != "" || lines[2] != "" {
		t.Error("rows without titles should be empty")
	}
}

func TestCanvasScrollTranslation(t *testing.T) {
	c := testCanvas()
	c.view.Scroll(1)

	lines := c.lines(30, 5, "")
	if !strings.Contains(ansi.Strip(lines[0]), "Rome") {
		t.Errorf("row 0 after scrolling = %q, want Rome", ansi.Strip(lines[0]))
	}
	if _, ok := c.hit(4, 1); ok {
		t.Error("old position should no longer hit")
	}
	if p, ok := c.hit(4, 0); !ok || p.Title != "Rome" {
		t.Errorf("hit(4,0) = %q, %v", p.Title, ok)
	}
}

func TestCanvasHit(t *testing.T) {
	c := testCanvas()
	tests := []struct {
		col, row int
		want     string
	}{
		{2, 1, "Rome"},
		{7, 1, "Rome"},
		{8, 1, ""},
		{10, 1, "Carthage"},
		{19, 1, "Carthage"},
		{0, 3, "Athens"},
		{5, 2, ""},
	}
	for _, tt := range tests {
		p, ok := c.hit(tt.col, tt.row)
		if got := map[bool]string{true: p.Title, false: ""}[ok]; got != tt.want {
			t.Errorf("hit(%d,%d) = %q, want %q", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := testCanvas()
	c.Clear()
	if len(c.placements) != 0 {
		t.Error("Clear should drop all placements")
	}
}

func TestCanvasTruncatesAtRightEdge(t *testing.T) {
	c := newCanvas()
	c.Render(cloud.Placement{Title: "Constantinople", Box: geom.Box{X: 6, Y: 0, W: 14, H: 1}})
	line := ansi.Strip(c.lines(12, 1, "")[0])
	if ansi.StringWidth(line) > 12 {
		t.Errorf("line %q wider than 12 cells", line)
	}
}

func TestOverlay(t *testing.T) {
	if got := overlay("abcdefgh", 3, "XY"); got != "abcXY" {
		t.Errorf("overlay = %q", got)
	}
	if got := overlay("ab", 4, "XY"); got != "ab  XY" {
		t.Errorf("overlay short line = %q", got)
	}
}

func TestPanelFrameHitAreas(t *testing.T) {
	f := framePanel(panel.LoadingState("Rome"), 100, 30)
	if f.col+f.width != 100 || f.row != 1 {
		t.Fatalf("frame = col %d width %d row %d", f.col, f.width, f.row)
	}
	if !f.onClose(f.col+f.width-4, f.row+1) {
		t.Error("[x] center should close")
	}
	if f.onClose(f.col+2, f.row+1) {
		t.Error("title should not close")
	}
	if !f.contains(f.col, f.row) || f.contains(f.col-1, f.row) {
		t.Error("contains edges wrong")
	}
	if len(f.lines) > 28 {
		t.Errorf("panel taller than available rows: %d", len(f.lines))
	}
}
