package geom

import "github.com/aerogrid/dronepart/gridgraph"

// grid is a uniform rasterization of a Box into cells of side cellSize.
// It backs the two operations the decomposition engine needs but that no
// polygon-boolean library in the example corpus provides: merging
// overlapping obstacle footprints (see union.go) and measuring the
// largest connected free-space area inside a region after obstacles are
// subtracted from it. Accuracy is bounded by cellSize; callers pick a
// resolution appropriate to the smallest feature they must not miss.
//
// Connectivity analysis itself is delegated to gridgraph.GridGraph; this
// type only owns the polygon-to-cell sampling gridgraph has no notion of.
type grid struct {
	bounds       Box
	cols, rows   int
	cellSize     float64
	occupied     []bool // row-major, true where any polygon covers the cell center
}

// rasterize samples p at the center of every cell in a cols x rows grid
// covering bounds. A cell is occupied when its center point falls inside
// any ring of p (even-odd rule).
func rasterize(p AnyPolygon, bounds Box, cellSize float64) *grid {
	cols := int(bounds.Width()/cellSize) + 1
	rows := int(bounds.Height()/cellSize) + 1
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g := &grid{bounds: bounds, cols: cols, rows: rows, cellSize: cellSize, occupied: make([]bool, cols*rows)}
	if p == nil || p.IsEmpty() {
		return g
	}
	rings := p.Rings()
	for y := 0; y < rows; y++ {
		cy := bounds.MinY + (float64(y)+0.5)*cellSize
		for x := 0; x < cols; x++ {
			cx := bounds.MinX + (float64(x)+0.5)*cellSize
			if pointInAnyRing(Point{X: cx, Y: cy}, rings) {
				g.occupied[y*g.cols+x] = true
			}
		}
	}
	return g
}

// pointInAnyRing reports whether pt lies inside any ring via the standard
// even-odd (ray casting) rule.
func pointInAnyRing(pt Point, rings [][]Point) bool {
	for _, ring := range rings {
		if pointInRing(pt, ring) {
			return true
		}
	}
	return false
}

func pointInRing(pt Point, ring []Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		yi, xi := ring[i].Y, ring[i].X
		yj, xj := ring[j].Y, ring[j].X
		if (yi > pt.Y) != (yj > pt.Y) {
			xCross := xi + (pt.Y-yi)/(yj-yi)*(xj-xi)
			if pt.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// connectedComponentAreas hands g's occupancy grid to gridgraph as a
// land(1)/water(0) integer grid and returns the area of each 4-connected
// land component gridgraph.ConnectedComponents finds, in the same units
// as bounds.
func (g *grid) connectedComponentAreas() []float64 {
	if g.cols == 0 || g.rows == 0 {
		return nil
	}
	values := make([][]int, g.rows)
	for y := 0; y < g.rows; y++ {
		row := make([]int, g.cols)
		for x := 0; x < g.cols; x++ {
			if g.occupied[y*g.cols+x] {
				row[x] = 1
			}
		}
		values[y] = row
	}
	gg, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil
	}
	components := gg.ConnectedComponents()[gridgraph.DefaultGridOptions().LandThreshold]
	cellArea := g.cellSize * g.cellSize
	areas := make([]float64, len(components))
	for i, comp := range components {
		areas[i] = float64(len(comp)) * cellArea
	}
	return areas
}

// defaultCellSize picks a resolution fine enough to resolve roughly 200
// cells along the longer side of b, bounded below to avoid a degenerate
// zero-size box producing a divide-by-zero.
func defaultCellSize(b Box) float64 {
	longest := b.Width()
	if b.Height() > longest {
		longest = b.Height()
	}
	if longest <= 0 {
		return 1
	}
	return longest / 200
}

// LargestFreeAreaRatio rasterizes region and subtracts obstacles at an
// automatically chosen resolution, returning the area of the largest
// 4-connected free component divided by region's total area. It is the
// raster approximation the decomposition engine uses in place of a true
// polygon-boolean "largest connected free space" query.
func LargestFreeAreaRatio(region AnyPolygon, obstacles []AnyPolygon) float64 {
	if region == nil || region.IsEmpty() {
		return 0
	}
	bounds := region.Bounds()
	cellSize := defaultCellSize(bounds)
	regionGrid := rasterize(region, bounds, cellSize)

	for i := range regionGrid.occupied {
		if !regionGrid.occupied[i] {
			continue
		}
		x, y := i%regionGrid.cols, i/regionGrid.cols
		cx := bounds.MinX + (float64(x)+0.5)*cellSize
		cy := bounds.MinY + (float64(y)+0.5)*cellSize
		pt := Point{X: cx, Y: cy}
		for _, ob := range obstacles {
			if ob == nil || ob.IsEmpty() {
				continue
			}
			if !ob.Bounds().Intersects(Box{MinX: cx, MinY: cy, MaxX: cx, MaxY: cy}) {
				continue
			}
			if pointInAnyRing(pt, ob.Rings()) {
				regionGrid.occupied[i] = false
				break
			}
		}
	}

	areas := regionGrid.connectedComponentAreas()
	if len(areas) == 0 {
		return 0
	}
	largest := areas[0]
	for _, a := range areas[1:] {
		if a > largest {
			largest = a
		}
	}
	regionArea := region.Area()
	if regionArea <= 0 {
		return 0
	}
	return largest / regionArea
}
