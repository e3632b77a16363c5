package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"github.com/matzehuels/wikicloud/pkg/cloud"
	"github.com/matzehuels/wikicloud/pkg/config"
	"github.com/matzehuels/wikicloud/pkg/errors"
	"github.com/matzehuels/wikicloud/pkg/panel"
	"github.com/matzehuels/wikicloud/pkg/pipeline"
	"github.com/matzehuels/wikicloud/pkg/textmetrics"
	"github.com/matzehuels/wikicloud/pkg/viewport"
)

const (
	// wheelStep is the number of rows one wheel notch scrolls.
	wheelStep = 3
	// minRows is the smallest terminal that can show bar, map and status.
	minRows = 3
)

// Options configures [New].
type Options struct {
	Config    config.Config
	Titles    cloud.TitleProvider
	Summaries panel.Fetcher
	Logger    *log.Logger // nil discards
	Keyword   string      // initial search; blank means random titles
	Seed      uint64      // zero draws a fresh seed per generation
}

// Model is the browse view.
type Model struct {
	ctx       context.Context
	cfg       config.Config
	titles    cloud.TitleProvider
	summaries panel.Fetcher
	logger    *log.Logger
	keyword   string
	seed      uint64

	width, height int

	epoch   uuid.UUID
	genCtx  context.Context
	cancel  context.CancelFunc
	profile config.Profile
	runner  *cloud.Runner
	session *cloud.Session

	canvas *canvas
	scroll *viewport.Controller
	panel  *panel.Controller

	search    textinput.Model
	searching bool
	shown     string // keyword of the displayed map
	loading   bool
	status    string
	statusErr bool
}

// New returns a browse model. Nothing is fetched until the first window
// size arrives.
func New(ctx context.Context, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	in := textinput.New()
	in.Prompt = "search: "
	in.Placeholder = "keyword"
	in.CharLimit = errors.MaxKeywordLength

	c := newCanvas()
	return Model{
		ctx:       ctx,
		cfg:       opts.Config,
		titles:    opts.Titles,
		summaries: opts.Summaries,
		logger:    logger,
		keyword:   strings.TrimSpace(opts.Keyword),
		seed:      opts.Seed,
		canvas:    c,
		scroll:    c.view,
		panel:     panel.NewController(),
		search:    in,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.reload(msg.Width, msg.Height)

	case titlesMsg:
		return m.applyTitles(msg), nil

	case summaryMsg:
		if msg.epoch != m.epoch {
			m.logger.Debug("dropped stale summary", "title", msg.result.Ticket.Title)
			return m, nil
		}
		if m.panel.Complete(msg.result) {
			m.logger.Debug("resolved summary", "title", msg.result.Ticket.Title, "phase", m.panel.State().Phase)
		}
		return m, nil

	case tea.MouseMsg:
		return m.mouse(msg)

	case tea.KeyMsg:
		if m.searching {
			return m.searchKey(msg)
		}
		return m.key(msg)
	}
	return m, nil
}

// reload starts a new generation for a terminal of w x h cells.
func (m Model) reload(w, h int) (Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	m.width, m.height = w, h
	m.epoch = uuid.New()
	m.genCtx, m.cancel = context.WithCancel(m.ctx)
	m.panel.Close()
	m.search.Width = max(w-len(m.search.Prompt)-4, 8)

	m.profile = m.cfg.SelectTerminal(w)
	m.canvas.padX, m.canvas.padY = int(m.profile.PaddingX), int(m.profile.PaddingY)
	seed := m.seed
	if seed == 0 {
		seed = pipeline.NewSeed()
	}
	metrics := textmetrics.Cells{PadX: m.canvas.padX, PadY: m.canvas.padY}
	session, err := cloud.NewSession(m.profile.Params(), metrics, pipeline.NewRand(seed), float64(w),
		cloud.WithSurface(m.canvas), cloud.WithViewport(m.scroll))
	if err != nil {
		m.session = nil
		m.setError(err)
		return m, nil
	}
	session.Clear()
	m.session = session
	m.runner = cloud.NewRunner(m.titles, m.profile.NodeCount, m.logger)

	m.logger.Info("reload", "cols", w, "rows", h, "profile", m.profile.Name, "seed", seed)
	cmd := m.load(m.keyword, false)
	return m, cmd
}

// load fetches titles for keyword into the current generation.
func (m *Model) load(keyword string, search bool) tea.Cmd {
	m.loading = true
	m.statusErr = false
	if keyword == "" {
		m.status = "Loading random titles…"
	} else {
		m.status = fmt.Sprintf("Searching %q…", keyword)
	}
	return fetchTitles(m.genCtx, m.runner, m.epoch, keyword, search, m.cfg.API.Timeout.Duration)
}

func (m Model) applyTitles(msg titlesMsg) Model {
	if msg.epoch != m.epoch {
		m.logger.Debug("dropped stale titles", "keyword", msg.keyword)
		return m
	}
	m.loading = false
	if msg.search {
		m.closeSearch()
	}
	if msg.err != nil {
		m.logger.Warn("title fetch failed", "keyword", msg.keyword, "error", msg.err)
		m.setError(msg.err)
		return m
	}

	gen, err := m.session.Generate(m.genCtx, msg.titles)
	if err != nil {
		m.setError(err)
		return m
	}
	m.shown = msg.keyword
	m.statusErr = false
	m.status = fmt.Sprintf("%d placed · %d skipped · %s", len(gen.Placements()), len(gen.Skipped()), m.profile.Name)
	m.logger.Info("generated layout", "keyword", msg.keyword, "bands", len(gen.Bands), "placed", len(gen.Placements()))
	return m
}

func (m Model) mouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll.Scroll(-wheelStep)
	case tea.MouseButtonWheelDown:
		m.scroll.Scroll(wheelStep)
	case tea.MouseButtonLeft:
		return m.click(msg.X, msg.Y)
	}
	return m, nil
}

// click routes a left click: the open panel first, then the top bar, then
// titles; anything else closes the panel.
func (m Model) click(col, row int) (tea.Model, tea.Cmd) {
	if m.panel.Visible() {
		f := framePanel(m.panel.State(), m.width, m.height)
		if f.onClose(col, row) {
			m.panel.Close()
			return m, nil
		}
		if f.contains(col, row) {
			return m, nil
		}
	}
	if row == 0 {
		cmd := m.openSearch()
		return m, cmd
	}
	if row < m.height-1 {
		if p, ok := m.canvas.hit(col, row); ok {
			cmd := m.openPanel(p.Title)
			return m, cmd
		}
	}
	m.panel.ClickOutside()
	return m, nil
}

func (m *Model) openPanel(title string) tea.Cmd {
	ticket := m.panel.Open(title)
	m.logger.Debug("open panel", "title", title, "seq", ticket.Seq)
	return fetchSummary(m.genCtx, m.summaries, m.epoch, ticket, m.cfg.API.Timeout.Duration)
}

func (m Model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	case "/":
		cmd := m.openSearch()
		return m, cmd
	case "esc":
		m.escape()
	case "x":
		m.panel.Close()
	case "r":
		if m.session != nil && !m.loading {
			cmd := m.load("", false)
			return m, cmd
		}
	case "up", "k":
		m.scroll.Scroll(-1)
	case "down", "j":
		m.scroll.Scroll(1)
	case "pgup":
		m.scroll.Scroll(-float64(max(m.height-2, 1)))
	case "pgdown", " ":
		m.scroll.Scroll(float64(max(m.height-2, 1)))
	}
	return m, nil
}

func (m Model) searchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	case "esc":
		m.escape()
		return m, nil
	case "enter":
		kw := strings.TrimSpace(m.search.Value())
		if kw == "" || m.session == nil {
			return m, nil
		}
		if err := errors.ValidateKeyword(kw); err != nil {
			m.setError(err)
			return m, nil
		}
		cmd := m.load(kw, true)
		return m, cmd
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) openSearch() tea.Cmd {
	m.searching = true
	return m.search.Focus()
}

func (m *Model) closeSearch() {
	m.searching = false
	m.search.Blur()
}

// escape hides the search input and the panel and clears the input.
func (m *Model) escape() {
	m.closeSearch()
	m.search.SetValue("")
	m.panel.Close()
}

func (m *Model) setError(err error) {
	m.status = errors.UserMessage(err)
	m.statusErr = true
}

func (m Model) View() string {
	if m.width == 0 || m.height < minRows {
		return ""
	}

	active := ""
	if m.panel.Visible() {
		active = m.panel.State().Title
	}
	lines := m.canvas.lines(m.width, m.height, active)
	lines[0] = m.topBar()
	lines[m.height-1] = m.statusLine()

	if m.panel.Visible() {
		f := framePanel(m.panel.State(), m.width, m.height)
		for i, l := range f.lines {
			if row := f.row + i; row < m.height-1 {
				lines[row] = overlay(lines[row], f.col, l)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) topBar() string {
	left := styleBrand.Render("wikicloud") + "  "
	if m.searching {
		return left + m.search.View()
	}
	hint := "/ search"
	if m.shown != "" {
		hint = fmt.Sprintf("%q  / search", m.shown)
	}
	return ansi.Truncate(left+styleBar.Render(hint), m.width, "…")
}

func (m Model) statusLine() string {
	keys := styleDim.Render("  wheel scroll · click open · esc close · q quit")
	status := styleDim.Render(m.status)
	if m.statusErr {
		status = styleError.Render(m.status)
	}
	return ansi.Truncate(status+keys, m.width, "…")
}

// Offset returns the scroll translation in rows.
func (m Model) Offset() float64 { return m.scroll.Offset() }

// Panel returns the detail panel state.
func (m Model) Panel() panel.State { return m.panel.State() }

// Searching reports whether the search input is open.
func (m Model) Searching() bool { return m.searching }
