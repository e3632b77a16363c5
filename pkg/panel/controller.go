package panel

import "context"

// Ticket identifies one summary fetch started by [Controller.Open].
type Ticket struct {
	Seq   uint64
	Title string
}

// Fetcher retrieves the summary of one exact title.
type Fetcher interface {
	Summary(ctx context.Context, title string) (*Summary, error)
}

// FetcherFunc adapts a function to [Fetcher].
type FetcherFunc func(ctx context.Context, title string) (*Summary, error)

// Summary calls f(ctx, title).
func (f FetcherFunc) Summary(ctx context.Context, title string) (*Summary, error) {
	return f(ctx, title)
}

// Result is a finished fetch, ready for [Controller.Complete].
type Result struct {
	Ticket  Ticket
	Summary *Summary
	Err     error
}

// Fetch runs the fetch for t. It never panics on provider failure; errors
// are carried in the result.
func Fetch(ctx context.Context, f Fetcher, t Ticket) Result {
	sum, err := f.Summary(ctx, t.Title)
	return Result{Ticket: t, Summary: sum, Err: err}
}

// Controller owns the panel state. It is not safe for concurrent use;
// callers deliver fetch results on the same goroutine that clicks.
type Controller struct {
	state State
	seq   uint64
}

// NewController returns a hidden panel.
func NewController() *Controller { return &Controller{} }

// State returns the current panel snapshot.
func (c *Controller) State() State { return c.state }

// Visible reports whether the panel is shown.
func (c *Controller) Visible() bool { return c.state.Visible() }

// Open shows title in the loading state and returns the ticket for the
// fetch the caller must start immediately.
func (c *Controller) Open(title string) Ticket {
	c.seq++
	c.state = LoadingState(title)
	return Ticket{Seq: c.seq, Title: title}
}

// Complete applies a finished fetch. The last completion wins regardless of
// which title is displayed; the displayed title and link stay those of the
// last click. Completions while hidden are dropped and Complete returns false.
func (c *Controller) Complete(r Result) bool {
	if !c.state.Visible() {
		return false
	}
	resolved := Resolve(r.Ticket.Title, r.Summary, r.Err)
	resolved.Title = c.state.Title
	resolved.Link = c.state.Link
	c.state = resolved
	return true
}

// Close hides the panel.
func (c *Controller) Close() { c.state = State{} }

// ClickOutside hides the panel if it is visible and reports whether it did.
func (c *Controller) ClickOutside() bool {
	if !c.state.Visible() {
		return false
	}
	c.Close()
	return true
}
