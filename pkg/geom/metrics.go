package geom

// Metrics measures the rendered footprint of a label.
//
// Implementations return the text extent plus their configured padding on
// every side. Any resource acquired to measure (a font face, a scratch element)
// must be released before Measure returns, on every path.
type Metrics interface {
	Measure(text string) (Size, error)
}

// MetricsFunc adapts a plain function to [Metrics].
type MetricsFunc func(text string) (Size, error)

// Measure calls f(text).
func (f MetricsFunc) Measure(text string) (Size, error) { return f(text) }

// Padded wraps m and grows every measured size by pad on all four sides.
// Implementations that measure raw text extents use it to apply padding.
func Padded(m Metrics, padX, padY float64) Metrics {
	return MetricsFunc(func(text string) (Size, error) {
		s, err := m.Measure(text)
		if err != nil {
			return Size{}, err
		}
		return Size{W: s.W + 2*padX, H: s.H + 2*padY}, nil
	})
}
