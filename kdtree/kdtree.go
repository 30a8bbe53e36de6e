package kdtree

import (
	"github.com/aerogrid/dronepart/divider"
	"github.com/aerogrid/dronepart/dtree"
	"github.com/aerogrid/dronepart/geom"
	"github.com/aerogrid/dronepart/strip"
)

// divisionFunc computes the cut coordinate along ax for region/obstacles,
// and whether a usable division point was found at all.
type divisionFunc func(region geom.AnyPolygon, obstacles []geom.AnyPolygon, ax strip.Axis) (float64, bool)

// NaivePartition partitions region by always cutting at the bounding-box
// midpoint along the current axis, ignoring obstacle distribution
// entirely; axis alternates x/y/x/y... by recursion depth. It is the
// simplest possible KD-tree baseline the obstacle-aware engine is
// compared against.
//
// Grounded on NaiveKDTreePartitioning.naive_kd_partition
// (kd_tree_naive_decomposition.py, original_source).
func NaivePartition(region geom.AnyPolygon, obstacles []geom.AnyPolygon, opts ...Option) ([]dtree.Partition, error) {
	return runPartition(region, obstacles, newConfig(opts...), midpointDivision)
}

// HalfPerimeterPartition partitions region by cutting at the first
// strip event where cumulative obstacle perimeter crosses half the
// region's total obstacle perimeter, axis alternating x/y/x/y... by
// recursion depth (unlike the obstacle-aware engine, this baseline
// never evaluates both axes and picks the better one).
//
// Grounded on KDTreePartitioning.kd_tree_partition
// (kd_tree_perimeter_decomposition.py, original_source).
func HalfPerimeterPartition(region geom.AnyPolygon, obstacles []geom.AnyPolygon, opts ...Option) ([]dtree.Partition, error) {
	return runPartition(region, obstacles, newConfig(opts...), halfPerimeterDivision)
}

func midpointDivision(region geom.AnyPolygon, _ []geom.AnyPolygon, ax strip.Axis) (float64, bool) {
	b := region.Bounds()
	if ax == strip.AxisX {
		return 0.5 * (b.MinX + b.MaxX), true
	}
	return 0.5 * (b.MinY + b.MaxY), true
}

func halfPerimeterDivision(region geom.AnyPolygon, obstacles []geom.AnyPolygon, ax strip.Axis) (float64, bool) {
	sp, err := strip.New(region, obstacles, ax)
	if err != nil {
		return 0, false
	}
	half := sp.TotalObstaclePerimeter() / 2
	for _, s := range sp.Strips() {
		if cumulative, ok := sp.CumulativePerimeter(s.Curr); ok && cumulative >= half {
			return s.Curr, true
		}
	}
	return 0, false
}

// partitioner carries one run's accumulated leaves and its fixed
// division strategy.
type partitioner struct {
	cfg    Config
	divFn  divisionFunc
	leaves []dtree.Partition
}

func runPartition(region geom.AnyPolygon, obstacles []geom.AnyPolygon, cfg Config, divFn divisionFunc) ([]dtree.Partition, error) {
	if region == nil || region.IsEmpty() {
		return nil, ErrNilRegion
	}
	p := &partitioner{cfg: cfg, divFn: divFn}
	p.partition(region, obstacles, nil, 0, strip.AxisX)
	return p.leaves, nil
}

// partition is the shared recursion shape both naive_kd_partition and
// kd_tree_partition collapse into: depth/area stop, validity repair,
// optional advanced coverage-and-stop check, division-point lookup via
// divFn, obstacle-aware clipping through divider.DivideRegion,
// unconditional dimension-threshold pruning of each child, optional
// advanced subregion validity, and recursion with the axis toggled.
func (p *partitioner) partition(region geom.AnyPolygon, obstacles []geom.AnyPolygon, history []dtree.Axis, depth int, ax strip.Axis) {
	// Step 1: depth/area stop.
	if depth >= p.cfg.MaxDepth || region.Area() < p.cfg.MinDimensionThreshold {
		p.leaves = append(p.leaves, dtree.NewPartition(region, obstacles, history, depth, true))
		return
	}

	// Step 2: validity repair. A region that fails Validate is stored
	// as-is with Valid=false, mirroring the original's own quirk of
	// appending whatever validate_geometry returned (including None)
	// rather than discarding the branch outright.
	if _, err := geom.Validate(region); err != nil {
		p.leaves = append(p.leaves, dtree.NewPartition(region, obstacles, history, depth, false))
		return
	}

	// Step 3: optional coverage-and-stop check.
	if p.cfg.AdvancedChecks && p.checkCoverageAndStop(region, obstacles) {
		p.leaves = append(p.leaves, dtree.NewPartition(region, obstacles, history, depth, true))
		return
	}

	// Step 4: locate the division point for this strategy.
	divisionPoint, ok := p.divFn(region, obstacles, ax)
	if !ok {
		p.leaves = append(p.leaves, dtree.NewPartition(region, obstacles, history, depth, true))
		return
	}

	// Step 5: divide.
	leftRegion, leftObs, rightRegion, rightObs, err := divider.DivideRegion(region, obstacles, ax, divisionPoint)
	if err != nil {
		p.leaves = append(p.leaves, dtree.NewPartition(region, obstacles, history, depth, true))
		return
	}

	// Step 6: unconditional dimension-threshold pruning, plus the
	// optional advanced subregion-validity check.
	leftOK := p.isChildUsable(leftRegion, leftObs)
	rightOK := p.isChildUsable(rightRegion, rightObs)
	if !leftOK && !rightOK {
		p.leaves = append(p.leaves, dtree.NewPartition(region, obstacles, history, depth, true))
		return
	}

	childHistory := append(append([]dtree.Axis{}, history...), toDtreeAxis(ax))
	nextAxis := strip.AxisY
	if ax == strip.AxisY {
		nextAxis = strip.AxisX
	}
	if leftOK {
		p.partition(leftRegion, leftObs, childHistory, depth+1, nextAxis)
	}
	if rightOK {
		p.partition(rightRegion, rightObs, childHistory, depth+1, nextAxis)
	}
}

// isChildUsable applies the unconditional narrow-dimension prune every
// candidate child gets, plus the advanced subregion-validity check when
// AdvancedChecks is enabled.
func (p *partitioner) isChildUsable(region geom.AnyPolygon, obstacles []geom.AnyPolygon) bool {
	if region == nil || region.IsEmpty() {
		return false
	}
	if p.cfg.AdvancedChecks && !p.isSubregionValid(region, obstacles) {
		return false
	}
	b := region.Bounds()
	return b.Width() >= p.cfg.MinDimensionThreshold && b.Height() >= p.cfg.MinDimensionThreshold
}

// checkCoverageAndStop mirrors _check_coverage_and_stop: obstacle
// coverage ratio must reach CoverageRatioStop, AND the leftover free
// area, AND its largest contiguous patch, must both fall below
// DroneThreshold.
func (p *partitioner) checkCoverageAndStop(region geom.AnyPolygon, obstacles []geom.AnyPolygon) bool {
	regionArea := region.Area()
	obstacleArea := sumArea(obstacles)
	coverageRatio := 1.0
	if regionArea > 1e-12 {
		coverageRatio = obstacleArea / regionArea
	}
	if coverageRatio < p.cfg.CoverageRatioStop {
		return false
	}
	freeArea := regionArea - obstacleArea
	if freeArea >= p.cfg.DroneThreshold {
		return false
	}
	return largestFreeSpaceArea(region, obstacles) < p.cfg.DroneThreshold
}

// isSubregionValid mirrors _is_subregion_valid: dimension threshold
// (checked again here to match the original's own redundant check),
// full obstacle coverage rejection, coverage-triggered largest-hole
// check, and the optional connectivity check.
func (p *partitioner) isSubregionValid(region geom.AnyPolygon, obstacles []geom.AnyPolygon) bool {
	if region == nil || region.IsEmpty() {
		return false
	}
	b := region.Bounds()
	if b.Width() < p.cfg.MinDimensionThreshold || b.Height() < p.cfg.MinDimensionThreshold {
		return false
	}
	regionArea := region.Area()
	obstacleArea := sumArea(obstacles)
	if obstacleArea >= regionArea-1e-9 {
		return false
	}
	if p.cfg.CheckConnectivity {
		if largestFreeSpaceArea(region, obstacles) < p.cfg.DroneThreshold {
			return false
		}
	}
	return true
}

func sumArea(polys []geom.AnyPolygon) float64 {
	var total float64
	for _, p := range polys {
		if p != nil {
			total += p.Area()
		}
	}
	return total
}

// largestFreeSpaceArea is the raster approximation of
// _compute_largest_free_space, shared in spirit with decomposition's
// helper of the same purpose: geom.LargestFreeAreaRatio normalizes by
// region.Area(), so this multiplies back up to an absolute area
// comparable against DroneThreshold.
func largestFreeSpaceArea(region geom.AnyPolygon, obstacles []geom.AnyPolygon) float64 {
	return geom.LargestFreeAreaRatio(region, obstacles) * region.Area()
}

func toDtreeAxis(ax strip.Axis) dtree.Axis {
	if ax == strip.AxisY {
		return dtree.AxisY
	}
	return dtree.AxisX
}
