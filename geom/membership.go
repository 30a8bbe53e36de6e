package geom

// Contains reports whether pt lies inside p using the even-odd rule over
// every ring of p. Boundary points may resolve either way; callers
// needing boundary-inclusive semantics should pre-clip instead.
func Contains(p AnyPolygon, pt Point) bool {
	if p == nil || p.IsEmpty() {
		return false
	}
	return pointInAnyRing(pt, p.Rings())
}

// IsRectangle reports whether p's single ring exactly matches its own
// bounding box (i.e. p is already an axis-aligned rectangle), which lets
// callers skip an expensive polygon-membership test and treat a box clip
// as an exact region intersection.
func IsRectangle(p AnyPolygon) bool {
	poly, ok := p.(Polygon)
	if !ok || len(poly.Ring) != 4 {
		return false
	}
	b := poly.Bounds()
	for _, pt := range poly.Ring {
		onVerticalEdge := pt.X == b.MinX || pt.X == b.MaxX
		onHorizontalEdge := pt.Y == b.MinY || pt.Y == b.MaxY
		if !onVerticalEdge || !onHorizontalEdge {
			return false
		}
	}
	return true
}
