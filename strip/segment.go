package strip

import (
	"math"
	"sort"

	"github.com/aerogrid/dronepart/geom"
)

const collinearEps = 1e-9

// segment is a directed line segment used internally for perimeter
// accounting; it never escapes this package.
type segment struct {
	A, B geom.Point
}

func (s segment) length() float64 {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// clipSegmentToBox clips s against the axis-aligned box b using the
// Liang-Barsky parametric line-clipping algorithm, returning ok=false if
// no portion of s lies within b.
func clipSegmentToBox(s segment, b geom.Box) (segment, bool) {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y
	t0, t1 := 0.0, 1.0

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return false
			}
			if r < t1 {
				t1 = r
			}
		}
		return true
	}

	if !clip(-dx, s.A.X-b.MinX) || !clip(dx, b.MaxX-s.A.X) ||
		!clip(-dy, s.A.Y-b.MinY) || !clip(dy, b.MaxY-s.A.Y) {
		return segment{}, false
	}
	if t0 > t1 {
		return segment{}, false
	}
	clipped := segment{
		A: geom.Point{X: s.A.X + t0*dx, Y: s.A.Y + t0*dy},
		B: geom.Point{X: s.A.X + t1*dx, Y: s.A.Y + t1*dy},
	}
	if clipped.length() < collinearEps {
		return segment{}, false
	}
	return clipped, true
}

// ringEdges returns the consecutive-vertex edges of ring, including the
// closing edge back to the first vertex.
func ringEdges(ring []geom.Point) []segment {
	n := len(ring)
	if n < 2 {
		return nil
	}
	edges := make([]segment, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edges = append(edges, segment{A: ring[i], B: ring[j]})
	}
	return edges
}

// collinearParam reports, if pt lies on the infinite line through a->b,
// its parameter t such that pt = a + t*(b-a). ok is false if pt is not on
// that line within collinearEps.
func collinearParam(pt, a, b geom.Point) (t float64, ok bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length2 := dx*dx + dy*dy
	if length2 < collinearEps*collinearEps {
		return 0, false
	}
	// Cross product magnitude measures perpendicular distance * |ab|.
	cross := (pt.X-a.X)*dy - (pt.Y-a.Y)*dx
	if math.Abs(cross)/math.Sqrt(length2) > 1e-7 {
		return 0, false
	}
	t = ((pt.X-a.X)*dx + (pt.Y-a.Y)*dy) / length2
	return t, true
}

// subtractBoundaryOverlap removes, from s, any portion that runs exactly
// along one of boundaryEdges (the region's exterior rings), mirroring the
// original's "_exclude_aligned_portions" step. It returns the surviving
// sub-segments, which may be zero, one, or several pieces.
func subtractBoundaryOverlap(s segment, boundaryEdges []segment) []segment {
	type interval struct{ lo, hi float64 }
	var covered []interval

	for _, edge := range boundaryEdges {
		tA, okA := collinearParam(edge.A, s.A, s.B)
		tB, okB := collinearParam(edge.B, s.A, s.B)
		if !okA || !okB {
			continue
		}
		lo, hi := tA, tB
		if lo > hi {
			lo, hi = hi, lo
		}
		lo = math.Max(lo, 0)
		hi = math.Min(hi, 1)
		if hi > lo {
			covered = append(covered, interval{lo, hi})
		}
	}
	if len(covered) == 0 {
		return []segment{s}
	}

	sort.Slice(covered, func(i, j int) bool { return covered[i].lo < covered[j].lo })
	merged := covered[:1]
	for _, iv := range covered[1:] {
		last := &merged[len(merged)-1]
		if iv.lo <= last.hi+collinearEps {
			if iv.hi > last.hi {
				last.hi = iv.hi
			}
			continue
		}
		merged = append(merged, iv)
	}

	dx, dy := s.B.X-s.A.X, s.B.Y-s.A.Y
	at := func(t float64) geom.Point {
		return geom.Point{X: s.A.X + t*dx, Y: s.A.Y + t*dy}
	}

	var out []segment
	cursor := 0.0
	for _, iv := range merged {
		if iv.lo > cursor+collinearEps {
			out = append(out, segment{A: at(cursor), B: at(iv.lo)})
		}
		if iv.hi > cursor {
			cursor = iv.hi
		}
	}
	if cursor < 1-collinearEps {
		out = append(out, segment{A: at(cursor), B: at(1)})
	}

	filtered := out[:0]
	for _, sub := range out {
		if sub.length() >= collinearEps {
			filtered = append(filtered, sub)
		}
	}
	return filtered
}

// isCollinearWithCoord reports whether both endpoints of s lie on
// x=coord (axis AxisX) or y=coord (axis AxisY), within eps. This mirrors
// the original's is_edge_collinear_with_coord, used to avoid double
// counting an obstacle edge that runs exactly along a strip's lower
// sweep boundary.
func isCollinearWithCoord(s segment, coord float64, axis Axis) bool {
	if axis == AxisX {
		return math.Abs(s.A.X-coord) < collinearEps && math.Abs(s.B.X-coord) < collinearEps
	}
	return math.Abs(s.A.Y-coord) < collinearEps && math.Abs(s.B.Y-coord) < collinearEps
}
