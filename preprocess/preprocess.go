package preprocess

import "github.com/aerogrid/dronepart/geom"

// RegionWithObstacles is the validated, normalized input every
// decomposition strategy operates on: a region with all obstacles
// clipped inside it and merged into a disjoint set.
type RegionWithObstacles struct {
	Region          geom.AnyPolygon
	Obstacles       []geom.AnyPolygon // individually clipped, may still overlap
	MergedObstacles []geom.AnyPolygon // disjoint, via geom.Union
}

// New validates region, then builds, validates, and clips each
// obstacle (given as a raw vertex ring) to region's bounding box,
// discarding any obstacle that is invalid or falls entirely outside
// it. It then merges the surviving obstacles into a disjoint set.
//
// Clipping uses region's axis-aligned bounding box rather than true
// polygon intersection: the example corpus carries no polygon-boolean
// library (see geom/clip.go), and every region this engine's caller
// constructs is itself axis-aligned, so the box clip is exact in the
// common case and a bounded approximation otherwise.
func New(region geom.AnyPolygon, obstacleCoords [][]geom.Point) (*RegionWithObstacles, error) {
	validatedRegion, err := geom.Validate(region)
	if err != nil {
		return nil, ErrInvalidGeometry
	}

	bounds := validatedRegion.Bounds()
	var obstacles []geom.AnyPolygon
	for _, coords := range obstacleCoords {
		candidate := geom.NewPolygon(coords)
		validated, err := geom.Validate(candidate)
		if err != nil {
			continue // discarded: invalid geometry
		}
		clipped, ok := geom.ClipToBox(validated, bounds)
		if !ok || clipped.IsEmpty() {
			continue // discarded: lies entirely outside the region
		}
		obstacles = append(obstacles, clipped)
	}

	merged := mergeObstacles(obstacles)

	return &RegionWithObstacles{
		Region:          validatedRegion,
		Obstacles:       obstacles,
		MergedObstacles: merged,
	}, nil
}

// mergeObstacles folds overlapping or adjacent obstacles into a
// disjoint set via geom.Union, splitting a resulting MultiPolygon into
// its individual components so callers always see a flat list.
func mergeObstacles(obstacles []geom.AnyPolygon) []geom.AnyPolygon {
	if len(obstacles) == 0 {
		return nil
	}
	union, ok := geom.Union(obstacles)
	if !ok {
		return obstacles
	}
	switch v := union.(type) {
	case geom.MultiPolygon:
		out := make([]geom.AnyPolygon, len(v.Polygons))
		for i, p := range v.Polygons {
			out[i] = p
		}
		return out
	default:
		return []geom.AnyPolygon{union}
	}
}

// CheckConnectivity reports whether region's free space (area not
// covered by MergedObstacles) forms a single connected component,
// mirroring check_region_connectivity's geom_type == "Polygon" test.
// It uses the same raster-based largest-connected-component measure
// the decomposition engine's coverage stop relies on.
func (r *RegionWithObstacles) CheckConnectivity() bool {
	regionArea := r.Region.Area()
	if regionArea <= 0 {
		return false
	}
	largestRatio := geom.LargestFreeAreaRatio(r.Region, r.MergedObstacles)
	var obstacleArea float64
	for _, ob := range r.MergedObstacles {
		obstacleArea += ob.Area()
	}
	totalFreeRatio := (regionArea - obstacleArea) / regionArea
	if totalFreeRatio < 0 {
		totalFreeRatio = 0
	}
	const slack = 1e-6
	return largestRatio >= totalFreeRatio-slack
}
