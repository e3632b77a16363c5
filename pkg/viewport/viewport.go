// Package viewport tracks the vertical scroll offset of the cloud surface.
//
// The offset is a plain translation: a point at surface y is shown at screen
// y + Offset(). Wheel input moves the surface against the wheel delta. There
// is no clamping, inertia or momentum, so the surface can be scrolled past
// its content in either direction.
package viewport

// Surface receives the translation whenever the offset changes.
type Surface interface {
	SetTranslation(y float64)
}

// SurfaceFunc adapts a function to [Surface].
type SurfaceFunc func(y float64)

// SetTranslation calls f(y).
func (f SurfaceFunc) SetTranslation(y float64) { f(y) }

// Controller owns one scroll offset. It is not safe for concurrent use.
type Controller struct {
	offset  float64
	surface Surface
}

// New returns a controller at offset zero. surface may be nil.
func New(surface Surface) *Controller {
	return &Controller{surface: surface}
}

// Offset returns the current translation.
func (c *Controller) Offset() float64 { return c.offset }

// Scroll consumes a wheel delta: positive delta scrolls content up.
// The new translation is applied to the surface immediately.
func (c *Controller) Scroll(delta float64) {
	c.offset -= delta
	c.apply()
}

// Reset returns the offset to zero and applies it.
func (c *Controller) Reset() {
	c.offset = 0
	c.apply()
}

// ToScreen converts a surface y coordinate to screen coordinates.
func (c *Controller) ToScreen(surfaceY float64) float64 { return surfaceY + c.offset }

func (c *Controller) apply() {
	if c.surface != nil {
		c.surface.SetTranslation(c.offset)
	}
}
