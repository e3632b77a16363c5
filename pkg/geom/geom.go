package geom

import "fmt"

// Size is the measured footprint of a label, padding included.
type Size struct {
	W, H float64
}

// Box is a placed rectangle: top-left corner plus size.
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

func (b Box) String() string {
	return fmt.Sprintf("(%.1f,%.1f %.1fx%.1f)", b.X, b.Y, b.W, b.H)
}

// Intersects reports whether a and b overlap as closed rectangles.
// The strict comparisons matter: boxes sharing an edge count as overlapping.
func Intersects(a, b Box) bool {
	return !(a.Right() < b.X ||
		a.X > b.Right() ||
		a.Bottom() < b.Y ||
		a.Y > b.Bottom())
}

// IntersectsAny reports whether candidate intersects any of boxes.
func IntersectsAny(candidate Box, boxes []Box) bool {
	for _, b := range boxes {
		if Intersects(candidate, b) {
			return true
		}
	}
	return false
}
