package strip

import (
	"math"
	"sort"

	"github.com/aerogrid/dronepart/geom"
)

// Manager is the event-sweep strip index for one region/obstacle-set/axis
// triple. Build once per axis evaluation; query as many times as needed.
type Manager struct {
	region    geom.AnyPolygon
	obstacles []geom.AnyPolygon
	axis      Axis

	events     []float64
	strips     []Record
	perStrip   map[Key]float64
	cumulative map[float64]float64

	regionIsRect  bool
	boundaryEdges []segment
}

// New builds a Manager for region/obstacles swept along axis. It errors
// if axis is invalid or region has no area.
func New(region geom.AnyPolygon, obstacles []geom.AnyPolygon, axis Axis) (*Manager, error) {
	if axis != AxisX && axis != AxisY {
		return nil, ErrInvalidAxis
	}
	if region == nil || region.IsEmpty() {
		return nil, ErrEmptyRegion
	}

	m := &Manager{
		region:       region,
		obstacles:    obstacles,
		axis:         axis,
		perStrip:     make(map[Key]float64),
		cumulative:   make(map[float64]float64),
		regionIsRect: geom.IsRectangle(region),
	}
	for _, ring := range region.Rings() {
		m.boundaryEdges = append(m.boundaryEdges, ringEdges(ring)...)
	}

	m.defineEvents()
	m.createStrips()
	m.computePerimeters()
	return m, nil
}

// defineEvents collects region bounds and every obstacle vertex's
// projection on the sweep axis into a sorted, deduplicated event list.
func (m *Manager) defineEvents() {
	seen := make(map[float64]struct{})
	b := m.region.Bounds()

	add := func(v float64) {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			m.events = append(m.events, v)
		}
	}

	if m.axis == AxisX {
		add(b.MinX)
		add(b.MaxX)
	} else {
		add(b.MinY)
		add(b.MaxY)
	}
	for _, obs := range m.obstacles {
		for _, ring := range obs.Rings() {
			for _, pt := range ring {
				if m.axis == AxisX {
					add(pt.X)
				} else {
					add(pt.Y)
				}
			}
		}
	}
	sort.Float64s(m.events)
}

// createStrips builds one Record per consecutive event pair.
func (m *Manager) createStrips() {
	b := m.region.Bounds()
	for i := 1; i < len(m.events); i++ {
		prev, curr := m.events[i-1], m.events[i]
		var box geom.Box
		if m.axis == AxisX {
			box = geom.Box{MinX: prev, MinY: b.MinY, MaxX: curr, MaxY: b.MaxY}
		} else {
			box = geom.Box{MinX: b.MinX, MinY: prev, MaxX: b.MaxX, MaxY: curr}
		}
		m.strips = append(m.strips, Record{Prev: prev, Curr: curr, Box: box})
	}
}

// computePerimeters sweeps the strips once, filling perStrip and the
// monotone cumulative map.
func (m *Manager) computePerimeters() {
	var accumulated float64
	for _, s := range m.strips {
		p := m.computeStripPerimeter(s.Box, s.Prev)
		accumulated += p
		m.perStrip[Key{Prev: s.Prev, Curr: s.Curr}] = p
		m.cumulative[s.Curr] = accumulated
	}
}

// computeStripPerimeter sums the length of every obstacle edge segment
// that falls within box and inside the region, excluding the portion
// that runs along the region boundary and any portion collinear with
// coordPrev (the strip's lower sweep boundary, already counted by the
// previous strip).
func (m *Manager) computeStripPerimeter(box geom.Box, coordPrev float64) float64 {
	var total float64
	for _, obs := range m.obstacles {
		if !geom.Intersects(obs, box) {
			continue
		}
		for _, ring := range obs.Rings() {
			for _, edge := range ringEdges(ring) {
				clipped, ok := clipSegmentToBox(edge, box)
				if !ok {
					continue
				}
				if !m.regionIsRect && !m.segmentInRegion(clipped) {
					continue
				}
				for _, piece := range subtractBoundaryOverlap(clipped, m.boundaryEdges) {
					if isCollinearWithCoord(piece, coordPrev, m.axis) {
						continue
					}
					total += piece.length()
				}
			}
		}
	}
	return total
}

// segmentInRegion is the non-rectangular-region fallback membership
// test: it accepts the segment if its midpoint lies inside the region.
// This is an approximation (see DESIGN.md) in place of true polygon
// intersection, adequate because every subregion this engine produces is
// itself axis-aligned rectangular; only a caller-supplied non-rectangular
// top-level region exercises this path.
func (m *Manager) segmentInRegion(s segment) bool {
	mid := geom.Point{X: (s.A.X + s.B.X) / 2, Y: (s.A.Y + s.B.Y) / 2}
	return geom.Contains(m.region, mid)
}

// PerStripPerimeter returns the obstacle perimeter contribution of the
// strip spanning [prev,curr], and whether such a strip exists.
func (m *Manager) PerStripPerimeter(prev, curr float64) (float64, bool) {
	v, ok := m.perStrip[Key{Prev: prev, Curr: curr}]
	return v, ok
}

// CumulativePerimeter returns the precomputed cumulative perimeter up to
// event coordinate coord, and whether coord is an event.
func (m *Manager) CumulativePerimeter(coord float64) (float64, bool) {
	v, ok := m.cumulative[coord]
	return v, ok
}

// AccumulatedPerimeter returns the obstacle perimeter accumulated from
// the region's lower sweep bound up to coord, for an arbitrary coord (not
// necessarily an event). Event coordinates are O(1) lookups; other
// coordinates cost one partial-strip sweep.
func (m *Manager) AccumulatedPerimeter(coord float64) float64 {
	if v, ok := m.cumulative[coord]; ok {
		return v
	}

	var lastEvent float64
	haveLast := false
	for _, e := range m.events {
		if coord < e {
			break
		}
		lastEvent = e
		haveLast = true
	}
	if !haveLast {
		return 0
	}
	total := m.cumulative[lastEvent]

	for _, s := range m.strips {
		if s.Prev == lastEvent && coord < s.Curr {
			b := m.region.Bounds()
			var partialBox geom.Box
			if m.axis == AxisX {
				partialBox = geom.Box{MinX: lastEvent, MinY: b.MinY, MaxX: coord, MaxY: b.MaxY}
			} else {
				partialBox = geom.Box{MinX: b.MinX, MinY: lastEvent, MaxX: b.MaxX, MaxY: coord}
			}
			total += m.computeStripPerimeter(partialBox, lastEvent)
			break
		}
	}
	return total
}

// TotalObstaclePerimeter returns the sum of every obstacle's exterior
// length, excluding portions aligned with the region boundary.
//
// Preserved ambiguity: when the region boundary cannot be determined
// (region is empty — which New already rejects, but a zero-ring region
// reaches here if constructed by an internal caller), this falls back to
// summing every obstacle's raw .Perimeter(), matching the original's
// ambiguous fallback branch exactly rather than silently resolving it.
func (m *Manager) TotalObstaclePerimeter() float64 {
	if len(m.boundaryEdges) == 0 {
		var sum float64
		for _, obs := range m.obstacles {
			sum += obs.Perimeter()
		}
		return sum
	}

	var total float64
	for _, obs := range m.obstacles {
		for _, ring := range obs.Rings() {
			for _, edge := range ringEdges(ring) {
				for _, piece := range subtractBoundaryOverlap(edge, m.boundaryEdges) {
					total += piece.length()
				}
			}
		}
	}
	return total
}

// RegionDiagonal returns the full diagonal of the region's bounding box.
func (m *Manager) RegionDiagonal() float64 {
	b := m.region.Bounds()
	return math.Hypot(b.Width(), b.Height())
}

// RegionWCRT returns the region-level worst-case round-trip time:
// diagonal + 0.5 * total obstacle perimeter.
func (m *Manager) RegionWCRT() float64 {
	return m.RegionDiagonal() + 0.5*m.TotalObstaclePerimeter()
}

// regionDiagonalHalf returns the half-cut diagonal measure used by
// TargetWCRT: sqrt(H^2 + (W/2)^2) for AxisX, sqrt(W^2 + (H/2)^2) for AxisY.
func (m *Manager) regionDiagonalHalf() float64 {
	b := m.region.Bounds()
	w, h := b.Width(), b.Height()
	if m.axis == AxisX {
		return math.Hypot(h, w/2)
	}
	return math.Hypot(w, h/2)
}

// TargetWCRT returns the diagonal of one half of the region split at the
// midpoint of the sweep axis (hypot(height, width/2) for AxisX) plus a
// quarter of the total obstacle perimeter. Nothing in this module calls it.
func (m *Manager) TargetWCRT() float64 {
	return m.regionDiagonalHalf() + 0.25*m.TotalObstaclePerimeter()
}

// DiagonalAt returns the diagonal distance from the region's lower-left
// corner to x=coord (AxisX) or y=coord (AxisY).
func (m *Manager) DiagonalAt(coord float64) float64 {
	b := m.region.Bounds()
	w, h := b.Width(), b.Height()
	if m.axis == AxisX {
		return math.Hypot(h, coord-b.MinX)
	}
	return math.Hypot(w, coord-b.MinY)
}

// WCRTAt returns the WCRT of the subregion from the lower sweep bound up
// to coord: DiagonalAt(coord) + 0.5*AccumulatedPerimeter(coord). This is
// also the formula for the "left" (AxisX) or "bottom" (AxisY) subregion's
// WCRT at a division point.
func (m *Manager) WCRTAt(coord float64) float64 {
	return m.DiagonalAt(coord) + 0.5*m.AccumulatedPerimeter(coord)
}

// WCRTRight returns the WCRT of the "right" (AxisX) or "top" (AxisY)
// subregion formed by cutting at divisionPoint.
func (m *Manager) WCRTRight(divisionPoint float64) float64 {
	b := m.region.Bounds()
	w, h := b.Width(), b.Height()
	var diagRight float64
	if m.axis == AxisX {
		diagRight = math.Hypot(h, b.MaxX-divisionPoint)
	} else {
		diagRight = math.Hypot(w, b.MaxY-divisionPoint)
	}
	pTotal := m.TotalObstaclePerimeter()
	pLeft := m.AccumulatedPerimeter(divisionPoint)
	return diagRight + 0.5*(pTotal-pLeft)
}

// Events returns the sorted, deduplicated event coordinates. The
// returned slice must not be mutated by callers.
func (m *Manager) Events() []float64 {
	return m.events
}

// Strips returns the strip records in sweep order. The returned slice
// must not be mutated by callers.
func (m *Manager) Strips() []Record {
	return m.strips
}

// Axis returns the sweep axis this Manager was built for.
func (m *Manager) Axis() Axis {
	return m.axis
}

// Region returns the region this Manager was built over.
func (m *Manager) Region() geom.AnyPolygon {
	return m.region
}

// Obstacles returns the obstacle set this Manager was built over. The
// returned slice must not be mutated by callers.
func (m *Manager) Obstacles() []geom.AnyPolygon {
	return m.obstacles
}
