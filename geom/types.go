package geom

import "math"

// Point is a 2D coordinate. The engine never carries a Z component past
// ingestion — see DropZ.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned bounding rectangle. A Box is empty when
// MinX > MaxX (or MinY > MaxY); EmptyBox returns the canonical empty value.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyBox returns the canonical empty bounding box.
func EmptyBox() Box {
	return Box{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
}

// IsEmpty reports whether b contains no area.
func (b Box) IsEmpty() bool {
	return b.MaxX < b.MinX || b.MaxY < b.MinY
}

// Width returns MaxX-MinX.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY-MinY.
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Union returns the smallest Box containing both b and o.
func (b Box) Union(o Box) Box {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return Box{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Intersects reports whether b and o share any area (touching counts).
func (b Box) Intersects(o Box) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX && b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// AnyPolygon is satisfied by Polygon and MultiPolygon. It is the common
// currency passed between every component of the decomposition engine.
type AnyPolygon interface {
	// Rings returns every exterior ring (one per simple polygon component).
	Rings() [][]Point
	// Bounds returns the axis-aligned bounding box, or an empty Box if
	// the geometry has no vertices.
	Bounds() Box
	// Area returns the total unsigned area across all rings.
	Area() float64
	// Perimeter returns the total ring length across all rings.
	Perimeter() float64
	// IsEmpty reports whether the geometry has no rings with area.
	IsEmpty() bool
}

// Polygon is a single simple polygon described by its exterior ring. Holes
// are not modeled; the core never needs them (obstacles are simple and
// non-overlapping post-preprocessing).
type Polygon struct {
	Ring []Point
}

// NewPolygon builds a Polygon from a vertex slice. The ring need not be
// explicitly closed (first==last); callers may pass either form.
func NewPolygon(pts []Point) Polygon {
	return Polygon{Ring: pts}
}

// Rings implements AnyPolygon.
func (p Polygon) Rings() [][]Point {
	if len(p.Ring) == 0 {
		return nil
	}
	return [][]Point{p.Ring}
}

// Bounds implements AnyPolygon.
func (p Polygon) Bounds() Box {
	b := EmptyBox()
	for _, pt := range p.Ring {
		if pt.X < b.MinX {
			b.MinX = pt.X
		}
		if pt.Y < b.MinY {
			b.MinY = pt.Y
		}
		if pt.X > b.MaxX {
			b.MaxX = pt.X
		}
		if pt.Y > b.MaxY {
			b.MaxY = pt.Y
		}
	}
	return b
}

// Area implements AnyPolygon via the shoelace formula (unsigned).
func (p Polygon) Area() float64 {
	return math.Abs(signedArea(p.Ring))
}

// Perimeter implements AnyPolygon: sum of consecutive-vertex distances,
// including the closing edge back to the first vertex.
func (p Polygon) Perimeter() float64 {
	return ringPerimeter(p.Ring)
}

// IsEmpty implements AnyPolygon.
func (p Polygon) IsEmpty() bool {
	return len(p.Ring) < 3 || p.Area() < 1e-12
}

// MultiPolygon is a union of simple Polygon components.
type MultiPolygon struct {
	Polygons []Polygon
}

// Rings implements AnyPolygon.
func (m MultiPolygon) Rings() [][]Point {
	rings := make([][]Point, 0, len(m.Polygons))
	for _, p := range m.Polygons {
		if len(p.Ring) > 0 {
			rings = append(rings, p.Ring)
		}
	}
	return rings
}

// Bounds implements AnyPolygon.
func (m MultiPolygon) Bounds() Box {
	b := EmptyBox()
	for _, p := range m.Polygons {
		b = b.Union(p.Bounds())
	}
	return b
}

// Area implements AnyPolygon.
func (m MultiPolygon) Area() float64 {
	var total float64
	for _, p := range m.Polygons {
		total += p.Area()
	}
	return total
}

// Perimeter implements AnyPolygon.
func (m MultiPolygon) Perimeter() float64 {
	var total float64
	for _, p := range m.Polygons {
		total += p.Perimeter()
	}
	return total
}

// IsEmpty implements AnyPolygon.
func (m MultiPolygon) IsEmpty() bool {
	for _, p := range m.Polygons {
		if !p.IsEmpty() {
			return false
		}
	}
	return true
}

// signedArea computes the shoelace signed area of ring (positive for
// counter-clockwise winding). The ring need not be explicitly closed.
func signedArea(ring []Point) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	return sum / 2
}

// ringPerimeter sums the edge lengths of ring, closing it implicitly.
func ringPerimeter(ring []Point) float64 {
	n := len(ring)
	if n < 2 {
		return 0
	}
	var total float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		total += dist(ring[i], ring[j])
	}
	return total
}

func dist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
