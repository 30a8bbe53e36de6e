package geom

// ClipToBox clips p against the axis-aligned window b using Sutherland-
// Hodgman polygon clipping, one convex edge at a time. It is the only
// clipping primitive the decomposition engine needs, since every cut and
// every region bound is axis-aligned.
//
// For a MultiPolygon, each component is clipped independently and the
// surviving non-empty components are returned as a MultiPolygon (or a bare
// Polygon if exactly one survives). ok is false when nothing survives.
//
// Complexity: O(n) per ring per clip edge, i.e. O(4n) total.
func ClipToBox(p AnyPolygon, b Box) (result AnyPolygon, ok bool) {
	if b.IsEmpty() {
		return nil, false
	}
	switch v := p.(type) {
	case Polygon:
		clipped := clipRingToBox(v.Ring, b)
		if len(clipped) < 3 {
			return nil, false
		}
		return Polygon{Ring: clipped}, true
	case MultiPolygon:
		var survivors []Polygon
		for _, sub := range v.Polygons {
			clipped := clipRingToBox(sub.Ring, b)
			if len(clipped) >= 3 {
				survivors = append(survivors, Polygon{Ring: clipped})
			}
		}
		switch len(survivors) {
		case 0:
			return nil, false
		case 1:
			return survivors[0], true
		default:
			return MultiPolygon{Polygons: survivors}, true
		}
	default:
		return nil, false
	}
}

// clipEdge identifies one of the box's four half-plane clip edges.
type clipEdge int

const (
	clipLeft clipEdge = iota
	clipRight
	clipBottom
	clipTop
)

// inside reports whether pt is on the keep-side of edge e for box b.
func inside(pt Point, e clipEdge, b Box) bool {
	switch e {
	case clipLeft:
		return pt.X >= b.MinX
	case clipRight:
		return pt.X <= b.MaxX
	case clipBottom:
		return pt.Y >= b.MinY
	case clipTop:
		return pt.Y <= b.MaxY
	}
	return false
}

// intersect computes where segment a->b crosses clip edge e of box box.
func intersect(a, c Point, e clipEdge, box Box) Point {
	switch e {
	case clipLeft:
		t := (box.MinX - a.X) / (c.X - a.X)
		return Point{X: box.MinX, Y: a.Y + t*(c.Y-a.Y)}
	case clipRight:
		t := (box.MaxX - a.X) / (c.X - a.X)
		return Point{X: box.MaxX, Y: a.Y + t*(c.Y-a.Y)}
	case clipBottom:
		t := (box.MinY - a.Y) / (c.Y - a.Y)
		return Point{X: a.X + t*(c.X-a.X), Y: box.MinY}
	default: // clipTop
		t := (box.MaxY - a.Y) / (c.Y - a.Y)
		return Point{X: a.X + t*(c.X-a.X), Y: box.MaxY}
	}
}

// clipRingToBox runs Sutherland-Hodgman over all four box edges in turn.
func clipRingToBox(ring []Point, b Box) []Point {
	out := ring
	for _, e := range [...]clipEdge{clipLeft, clipRight, clipBottom, clipTop} {
		out = clipRingToEdge(out, e, b)
		if len(out) == 0 {
			return nil
		}
	}
	return out
}

func clipRingToEdge(ring []Point, e clipEdge, b Box) []Point {
	n := len(ring)
	if n == 0 {
		return nil
	}
	out := make([]Point, 0, n+2)
	for i := 0; i < n; i++ {
		curr := ring[i]
		prev := ring[(i-1+n)%n]
		currIn := inside(curr, e, b)
		prevIn := inside(prev, e, b)

		switch {
		case currIn && prevIn:
			out = append(out, curr)
		case currIn && !prevIn:
			out = append(out, intersect(prev, curr, e, b), curr)
		case !currIn && prevIn:
			out = append(out, intersect(prev, curr, e, b))
		default:
			// both outside: emit nothing
		}
	}
	return out
}

// Intersects reports whether p's bounding box overlaps b. This is a cheap
// conservative test used to short-circuit obstacle/strip queries before a
// more expensive clip is attempted; it may return true for geometries that
// do not actually overlap once clipped.
func Intersects(p AnyPolygon, b Box) bool {
	return p.Bounds().Intersects(b)
}

// ExtractPolygonal keeps only the polygonal components among parts,
// discarding nil/empty ones, and returns the survivors as a single
// Polygon or, when more than one survives, a MultiPolygon of them;
// overlapping survivors are not merged. Mirrors the original's "keep only Polygon/MultiPolygon"
// clipping post-processing step.
func ExtractPolygonal(parts ...AnyPolygon) (AnyPolygon, bool) {
	var polys []Polygon
	for _, p := range parts {
		if p == nil || p.IsEmpty() {
			continue
		}
		switch v := p.(type) {
		case Polygon:
			polys = append(polys, v)
		case MultiPolygon:
			polys = append(polys, v.Polygons...)
		}
	}
	switch len(polys) {
	case 0:
		return nil, false
	case 1:
		return polys[0], true
	default:
		return MultiPolygon{Polygons: polys}, true
	}
}
