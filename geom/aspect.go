package geom

import "math"

// aspectEps is the degenerate-dimension threshold for AspectRatio, matching
// the decomposition engine's EPS for geometric comparisons.
const aspectEps = 1e-9

// AspectRatio computes the squareness of box b as min(w/h, h/w). A box with
// both dimensions at or below aspectEps is treated as perfectly square
// (1.0); a box with exactly one degenerate dimension is treated as
// maximally non-square (0.0).
func AspectRatio(b Box) float64 {
	w := b.Width()
	h := b.Height()

	wDeg := w <= aspectEps
	hDeg := h <= aspectEps

	switch {
	case wDeg && hDeg:
		return 1.0
	case wDeg || hDeg:
		return 0.0
	default:
		return math.Min(w/h, h/w)
	}
}
