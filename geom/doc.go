// Package geom provides the minimal 2D polygon primitives the decomposition
// engine needs: bounding boxes, simple-polygon validity/repair, Z-dropping,
// aspect ratio, axis-aligned clipping, and a raster-backed approximation of
// polygon union and connected-component analysis.
//
// What:
//
//   - Point, Box: plain value types for coordinates and bounding rectangles.
//   - Polygon, MultiPolygon: simple exterior-ring polygons and their unions,
//     both satisfying AnyPolygon.
//   - Validate drops duplicate vertices and rejects degenerate rings
//     (self-intersections are not repaired); DropZ is a 2D-only no-op
//     kept for interface parity with 3D input sources.
//   - ClipToBox performs Sutherland-Hodgman clipping against an axis-aligned
//     window — the only clip shape the decomposition engine ever needs.
//   - Rasterize + ConnectedComponents back the engine's obstacle-merge and
//     largest-free-space queries when an exact polygon boolean isn't needed.
//
// Why:
//
//   - The decomposition engine only ever clips against axis-aligned boxes
//     (region bounds, cut planes) — a general polygon-clipping library is
//     more machinery than the problem requires.
//
// Errors:
//
//   - ErrNotPolygonal: input could not be reduced to a Polygon/MultiPolygon.
//   - ErrEmptyRing: a ring has fewer than 3 distinct vertices.
//
// Complexity:
//
//   - ClipToBox: O(n) in ring vertices.
//   - Rasterize: O(resolution²) cells times O(v) vertices per obstacle.
package geom
