package cli

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/matzehuels/wikicloud/pkg/panel"
)

type stubResolver struct {
	calls atomic.Int32
}

func (s *stubResolver) Summary(_ context.Context, title string) panel.State {
	s.calls.Add(1)
	if title == "Missing" {
		return panel.Resolve(title, nil, errors.New("not found"))
	}
	return panel.Resolve(title, &panel.Summary{Extract: title + " is an article."}, nil)
}

func TestResolveSummariesOrder(t *testing.T) {
	r := &stubResolver{}
	titles := []string{"Rome", "Missing", "Carthage", "Athens", "Sparta", "Troy"}

	states, err := resolveSummaries(context.Background(), r, titles)
	if err != nil {
		t.Fatalf("resolveSummaries: %v", err)
	}
	if len(states) != len(titles) {
		t.Fatalf("got %d states, want %d", len(states), len(titles))
	}
	for i, st := range states {
		if st.Title != titles[i] {
			t.Errorf("states[%d].Title = %q, want %q", i, st.Title, titles[i])
		}
	}
	if states[1].Phase != panel.Failed {
		t.Errorf("Missing phase = %v, want failed", states[1].Phase)
	}
	if states[0].Phase != panel.Loaded || states[0].Text != "Rome is an article." {
		t.Errorf("Rome state = %+v", states[0])
	}
	if got := r.calls.Load(); got != int32(len(titles)) {
		t.Errorf("calls = %d, want %d", got, len(titles))
	}
}

func TestResolveSummariesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := resolveSummaries(ctx, &stubResolver{}, []string{"Rome"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
