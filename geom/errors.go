package geom

import "errors"

// Sentinel errors for geom operations. Callers should use errors.Is to
// branch on semantics rather than comparing error strings.
var (
	// ErrNotPolygonal indicates a geometry could not be reduced to a
	// Polygon or MultiPolygon (e.g. it degenerated to a point or line).
	ErrNotPolygonal = errors.New("geom: geometry is not polygonal")

	// ErrEmptyRing indicates a ring has fewer than 3 distinct vertices
	// and cannot describe a non-degenerate polygon.
	ErrEmptyRing = errors.New("geom: ring has fewer than 3 vertices")

	// ErrDisconnectedRegion indicates a region MultiPolygon component could
	// not be resolved to a single bounding box (empty input).
	ErrDisconnectedRegion = errors.New("geom: region has no bounded components")
)
