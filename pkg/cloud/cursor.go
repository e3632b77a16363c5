package cloud

// Cursor is the vertical position where the next band starts.
type Cursor struct {
	y        float64
	baseline float64
}

// NewCursor returns a cursor positioned at baseline.
func NewCursor(baseline float64) *Cursor {
	return &Cursor{y: baseline, baseline: baseline}
}

// Y returns the current position.
func (c *Cursor) Y() float64 { return c.y }

// Advance moves the cursor down by d.
func (c *Cursor) Advance(d float64) { c.y += d }

// Reset moves the cursor back to the baseline.
func (c *Cursor) Reset() { c.y = c.baseline }
