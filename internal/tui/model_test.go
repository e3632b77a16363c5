package tui

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/wikicloud/pkg/cloud"
	"github.com/matzehuels/wikicloud/pkg/config"
	"github.com/matzehuels/wikicloud/pkg/panel"
)

const (
	testCols = 120
	testRows = 40
)

type fakeProvider struct {
	searches  int
	searched  string
	searchErr error
}

func (f *fakeProvider) RandomTitles(_ context.Context, n int) ([]string, error) {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Title %d", i)
	}
	return out, nil
}

func (f *fakeProvider) SearchTitles(_ context.Context, kw string, n int) ([]string, error) {
	f.searches++
	f.searched = kw
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	out := make([]string, min(n, 40))
	for i := range out {
		out[i] = fmt.Sprintf("%s %d", kw, i)
	}
	return out, nil
}

func (f *fakeProvider) Summary(_ context.Context, title string) (*panel.Summary, error) {
	return &panel.Summary{Extract: title + " is an article."}, nil
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func newLoaded(t *testing.T, p *fakeProvider) Model {
	t.Helper()
	m := New(context.Background(), Options{Config: config.Default(), Titles: p, Summaries: p, Seed: 7})
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: testCols, Height: testRows})
	if cmd == nil {
		t.Fatal("resize should start a title fetch")
	}
	m, _ = update(t, m, cmd())
	if len(m.canvas.placements) == 0 {
		t.Fatalf("no placements after load, status %q", m.status)
	}
	return m
}

// clickable returns a placement fully visible left of maxCol, and the
// center cell of its box.
func clickable(t *testing.T, m Model, maxCol int) (cloud.Placement, int, int) {
	t.Helper()
	for _, p := range m.canvas.placements {
		r := m.canvas.cellOf(p)
		if r.row >= 1 && r.row+r.h < m.height-1 && r.col+r.w < maxCol {
			return p, r.col + r.w/2, r.row + r.h/2
		}
	}
	t.Fatal("no clickable placement")
	return cloud.Placement{}, 0, 0
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func leftClick(col, row int) tea.MouseMsg {
	return tea.MouseMsg{X: col, Y: row, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func wheel(b tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{Button: b, Action: tea.MouseActionPress}
}

func TestResizeLoadsCloud(t *testing.T) {
	m := newLoaded(t, &fakeProvider{})

	if m.statusErr {
		t.Errorf("unexpected error status %q", m.status)
	}
	if m.profile.Name != "terminal-wide" {
		t.Errorf("profile = %q, want terminal-wide", m.profile.Name)
	}
	if m.Offset() != 0 {
		t.Errorf("offset = %v, want 0", m.Offset())
	}
	for _, p := range m.canvas.placements {
		if p.Box.X < 0 || p.Box.Right() > testCols {
			t.Errorf("placement %q outside surface: %v", p.Title, p.Box)
		}
	}
	if !strings.Contains(m.View(), "wikicloud") {
		t.Error("view should show the top bar")
	}
}

func TestNarrowTerminalProfile(t *testing.T) {
	m := New(context.Background(), Options{Config: config.Default(), Titles: &fakeProvider{}, Seed: 1})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 99, Height: 30})
	if m.profile.Name != "terminal-narrow" {
		t.Errorf("profile at 99 cols = %q, want terminal-narrow", m.profile.Name)
	}
}

func TestWheelScroll(t *testing.T) {
	m := newLoaded(t, &fakeProvider{})
	p := m.canvas.placements[0]
	before := m.canvas.cellOf(p).row

	m, _ = update(t, m, wheel(tea.MouseButtonWheelDown))
	if m.Offset() != -wheelStep {
		t.Errorf("offset after wheel down = %v, want %v", m.Offset(), -wheelStep)
	}
	if got := m.canvas.cellOf(p).row; got != before-wheelStep {
		t.Errorf("row after wheel down = %d, want %d", got, before-wheelStep)
	}

	m, _ = update(t, m, wheel(tea.MouseButtonWheelUp))
	m, _ = update(t, m, wheel(tea.MouseButtonWheelUp))
	if m.Offset() != wheelStep {
		t.Errorf("offset after two wheel ups = %v, want %v", m.Offset(), wheelStep)
	}
}

func TestClickTitleOpensPanel(t *testing.T) {
	m := newLoaded(t, &fakeProvider{})
	p, col, row := clickable(t, m, testCols)

	m, cmd := update(t, m, leftClick(col, row))
	st := m.Panel()
	if st.Phase != panel.Loading || st.Title != p.Title {
		t.Fatalf("panel after click = %+v", st)
	}
	if st.Link != panel.SearchLink(p.Title) {
		t.Errorf("link = %q", st.Link)
	}
	if cmd == nil {
		t.Fatal("click should start a summary fetch")
	}

	m, _ = update(t, m, cmd())
	st = m.Panel()
	if st.Phase != panel.Loaded || st.Text != p.Title+" is an article." {
		t.Errorf("panel after fetch = %+v", st)
	}
	view := m.View()
	if !strings.Contains(view, closeLabel) {
		t.Error("view should show the close label")
	}
}

func TestCloseButton(t *testing.T) {
	m := newLoaded(t, &fakeProvider{})
	_, col, row := clickable(t, m, testCols)
	m, _ = update(t, m, leftClick(col, row))

	f := framePanel(m.Panel(), m.width, m.height)
	m, _ = update(t, m, leftClick(f.col+f.width-4, f.row+1))
	if m.Panel().Visible() {
		t.Error("clicking [x] should hide the panel")
	}
}

func TestClickInsidePanelKeepsIt(t *testing.T) {
	m := newLoaded(t, &fakeProvider{})
	_, col, row := clickable(t, m, testCols)
	m, _ = update(t, m, leftClick(col, row))

	f := framePanel(m.Panel(), m.width, m.height)
	m, cmd := update(t, m, leftClick(f.col+2, f.row+2))
	if !m.Panel().Visible() || cmd != nil {
		t.Error("clicking inside the panel should do nothing")
	}
}

func TestClickOutsideHidesPanel(t *testing.T) {
	m := newLoaded(t, &fakeProvider{})
	_, col, row := clickable(t, m, testCols)
	m, _ = update(t, m, leftClick(col, row))

	f := framePanel(m.Panel(), m.width, m.height)
	for r := 1; r < m.height-1; r++ {
		for c := 0; c < f.col; c++ {
			if _, ok := m.canvas.hit(c, r); ok {
				continue
			}
			m, _ = update(t, m, leftClick(c, r))
			if m.Panel().Visible() {
				t.Errorf("click on empty cell (%d,%d) should hide the panel", c, r)
			}
			return
		}
	}
	t.Fatal("no empty cell found")
}

func TestLastResolverWins(t *testing.T) {
	m := newLoaded(t, &fakeProvider{})
	px, col, row := clickable(t, m, testCols)
	m, cmdX := update(t, m, leftClick(col, row))

	f := framePanel(m.Panel(), m.width, m.height)
	var (
		py   cloud.Placement
		cmdY tea.Cmd
	)
	for _, p := range m.canvas.placements {
		r := m.canvas.cellOf(p)
		if p.Title != px.Title && r.row >= 1 && r.row < m.height-1 && r.col+r.w < f.col {
			py = p
			m, cmdY = update(t, m, leftClick(r.col+r.w/2, r.row))
			break
		}
	}
	if cmdY == nil {
		t.Fatal("no second title to click")
	}

	m, _ = update(t, m, cmdY())
	m, _ = update(t, m, cmdX())
	st := m.Panel()
	if st.Title != py.Title {
		t.Errorf("title = %q, want last clicked %q", st.Title, py.Title)
	}
	if st.Text != px.Title+" is an article." {
		t.Errorf("text = %q, want last resolved summary of %q", st.Text, px.Title)
	}
}

func TestResizeDropsStaleSummary(t *testing.T) {
	p := &fakeProvider{}
	m := newLoaded(t, p)
	_, col, row := clickable(t, m, testCols)
	m, stale := update(t, m, leftClick(col, row))

	m, reload := update(t, m, tea.WindowSizeMsg{Width: testCols, Height: testRows})
	if m.Panel().Visible() {
		t.Fatal("resize should hide the panel")
	}
	m, _ = update(t, m, reload())

	_, col, row = clickable(t, m, testCols)
	m, _ = update(t, m, leftClick(col, row))
	m, _ = update(t, m, stale())
	if m.Panel().Phase != panel.Loading {
		t.Errorf("stale summary applied: %+v", m.Panel())
	}
}

func TestResizeDropsStaleTitles(t *testing.T) {
	m := New(context.Background(), Options{Config: config.Default(), Titles: &fakeProvider{}, Seed: 3})
	m, first := update(t, m, tea.WindowSizeMsg{Width: testCols, Height: testRows})
	m, second := update(t, m, tea.WindowSizeMsg{Width: 90, Height: testRows})

	m, _ = update(t, m, first())
	if len(m.canvas.placements) != 0 || !m.loading {
		t.Fatal("titles from a previous generation should be dropped")
	}
	m, _ = update(t, m, second())
	if len(m.canvas.placements) == 0 {
		t.Fatal("current generation should load")
	}
	for _, p := range m.canvas.placements {
		if p.Box.Right() > 90 {
			t.Errorf("placement %q exceeds new width: %v", p.Title, p.Box)
		}
	}
}

func TestSearch(t *testing.T) {
	p := &fakeProvider{}
	m := newLoaded(t, p)

	m, _ = update(t, m, key("/"))
	if !m.Searching() {
		t.Fatal("/ should open the search input")
	}
	m, _ = update(t, m, key("  volcano "))
	m, cmd := update(t, m, key("enter"))
	if cmd == nil {
		t.Fatal("enter should start a search")
	}
	m, _ = update(t, m, cmd())

	if p.searched != "volcano" {
		t.Errorf("searched %q, want trimmed keyword", p.searched)
	}
	if m.Searching() {
		t.Error("search input should close after the search completes")
	}
	if m.Offset() != 0 {
		t.Errorf("offset = %v, want reset to 0", m.Offset())
	}
	for _, pl := range m.canvas.placements {
		if !strings.HasPrefix(pl.Title, "volcano ") {
			t.Errorf("placement %q is not a search result", pl.Title)
		}
	}
}

func TestEmptySearchIgnored(t *testing.T) {
	p := &fakeProvider{}
	m := newLoaded(t, p)

	m, _ = update(t, m, key("/"))
	m, _ = update(t, m, key("   "))
	m, cmd := update(t, m, key("enter"))
	if cmd != nil {
		t.Error("blank keyword should not start a search")
	}
	if !m.Searching() || p.searches != 0 {
		t.Errorf("searching = %v, searches = %d", m.Searching(), p.searches)
	}
}

func TestSearchFailureKeepsSurface(t *testing.T) {
	p := &fakeProvider{searchErr: errors.New("upstream down")}
	m := newLoaded(t, p)
	before := append([]cloud.Placement(nil), m.canvas.placements...)

	m, _ = update(t, m, key("/"))
	m, _ = update(t, m, key("volcano"))
	m, cmd := update(t, m, key("enter"))
	m, _ = update(t, m, cmd())

	if !m.statusErr {
		t.Error("failed search should set an error status")
	}
	if m.Searching() {
		t.Error("search input should close after a failed search")
	}
	if !reflect.DeepEqual(before, m.canvas.placements) {
		t.Error("failed search should keep the previous surface")
	}
}

func TestEscapeHidesPanelAndSearch(t *testing.T) {
	m := newLoaded(t, &fakeProvider{})
	_, col, row := clickable(t, m, testCols)
	m, _ = update(t, m, leftClick(col, row))
	m, _ = update(t, m, key("/"))
	m, _ = update(t, m, key("lava"))

	m, _ = update(t, m, key("esc"))
	if m.Panel().Visible() || m.Searching() {
		t.Errorf("panel visible %v, searching %v", m.Panel().Visible(), m.Searching())
	}
	if m.search.Value() != "" {
		t.Errorf("search value = %q, want cleared", m.search.Value())
	}
}

func TestKeyXClosesPanel(t *testing.T) {
	m := newLoaded(t, &fakeProvider{})
	_, col, row := clickable(t, m, testCols)
	m, _ = update(t, m, leftClick(col, row))
	m, _ = update(t, m, key("x"))
	if m.Panel().Visible() {
		t.Error("x should close the panel")
	}
}

func TestClickTopBarOpensSearch(t *testing.T) {
	m := newLoaded(t, &fakeProvider{})
	m, _ = update(t, m, leftClick(5, 0))
	if !m.Searching() {
		t.Error("clicking the top bar should open the search input")
	}
}

func TestQuit(t *testing.T) {
	m := newLoaded(t, &fakeProvider{})
	_, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
	if m.genCtx.Err() == nil {
		t.Error("quit should cancel in-flight fetches")
	}
}
