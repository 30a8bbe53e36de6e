package geom

// Validate repairs a polygon's ring(s) well enough for the decomposition
// engine's needs: it drops consecutive duplicate vertices and rejects rings
// that collapse below 3 distinct vertices. It does not resolve genuine
// self-intersections (bowties) — see DESIGN.md for why a full
// make-valid routine is out of scope without a third-party geometry
// library in the example corpus; callers that need robust repair of
// self-intersecting input should pre-clean it before handing it to this
// package.
func Validate(p AnyPolygon) (AnyPolygon, error) {
	switch v := p.(type) {
	case Polygon:
		ring, err := dedupeRing(v.Ring)
		if err != nil {
			return nil, err
		}
		return Polygon{Ring: ring}, nil
	case MultiPolygon:
		out := make([]Polygon, 0, len(v.Polygons))
		for _, sub := range v.Polygons {
			ring, err := dedupeRing(sub.Ring)
			if err != nil {
				continue // drop degenerate components, keep the rest
			}
			out = append(out, Polygon{Ring: ring})
		}
		if len(out) == 0 {
			return nil, ErrEmptyRing
		}
		return MultiPolygon{Polygons: out}, nil
	default:
		return nil, ErrNotPolygonal
	}
}

// dedupeRing removes consecutive duplicate vertices (including the
// wrap-around closing edge) and errors if fewer than 3 distinct points
// remain.
func dedupeRing(ring []Point) ([]Point, error) {
	if len(ring) == 0 {
		return nil, ErrEmptyRing
	}
	out := make([]Point, 0, len(ring))
	for i, pt := range ring {
		if i == 0 || pt != ring[i-1] {
			out = append(out, pt)
		}
	}
	// Drop an explicit closing vertex equal to the first.
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	if len(out) < 3 {
		return nil, ErrEmptyRing
	}
	return out, nil
}

// DropZ is a no-op kept for interface parity with 3D input sources: Point
// carries only X and Y, so any Z component is already absent by the time
// geometry reaches this package. Callers migrating 3D data should drop Z
// before constructing Point values; this function exists as the single
// call site to delete once that migration is complete.
func DropZ(p AnyPolygon) AnyPolygon {
	return p
}
