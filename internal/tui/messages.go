package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/matzehuels/wikicloud/pkg/cloud"
	"github.com/matzehuels/wikicloud/pkg/panel"
)

// titlesMsg carries a fetched title list back to the model.
type titlesMsg struct {
	epoch   uuid.UUID
	keyword string
	search  bool
	titles  []string
	err     error
}

// summaryMsg carries a resolved summary back to the model.
type summaryMsg struct {
	epoch  uuid.UUID
	result panel.Result
}

func fetchTitles(ctx context.Context, r *cloud.Runner, epoch uuid.UUID, keyword string, search bool, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(ctx, timeout)
		defer cancel()
		titles, err := r.FetchTitles(ctx, keyword)
		return titlesMsg{epoch: epoch, keyword: keyword, search: search, titles: titles, err: err}
	}
}

func fetchSummary(ctx context.Context, f panel.Fetcher, epoch uuid.UUID, t panel.Ticket, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(ctx, timeout)
		defer cancel()
		return summaryMsg{epoch: epoch, result: panel.Fetch(ctx, f, t)}
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}
