package decomposition

import (
	"github.com/aerogrid/dronepart/axis"
	"github.com/aerogrid/dronepart/dtree"
	"github.com/aerogrid/dronepart/geom"
	"github.com/aerogrid/dronepart/strip"
)

// Decompose recursively partitions region (minus obstacles) into the set
// of dtree.Partition leaves that together cover it, applying opts over
// DefaultConfig. It never returns an empty slice for a non-empty region:
// if no recursive branch produces a valid leaf, the whole region is
// recorded as a single partition (the original's "track_back" mode).
func Decompose(region geom.AnyPolygon, obstacles []geom.AnyPolygon, opts ...Option) ([]dtree.Partition, error) {
	if region == nil || region.IsEmpty() {
		return nil, ErrNilRegion
	}
	cfg := NewConfig(opts...)

	d := &decomposer{cfg: cfg}
	producedAny := d.decompose(region, obstacles, nil, 0)

	if !producedAny {
		d.leaves = append(d.leaves, dtree.NewPartition(region, obstacles, nil, 0, true))
	}
	return d.leaves, nil
}

// decomposer carries the recursion's accumulated leaves so Decompose
// itself can stay a thin, single-call entry point.
type decomposer struct {
	cfg    Config
	leaves []dtree.Partition
}

// decompose is the full ten-step recursion contract: empty guard,
// coverage stop, depth stop, validity guard, axis selection,
// degenerate-cut guard, left/right validity, recursion, and a single
// fallback-axis retry (track-back itself lives in Decompose, since it
// only applies at the top level). It reports whether this branch
// produced a partition: a coverage-stop leaf always counts, whatever its
// Valid flag; a depth-stop leaf counts only when it is valid.
func (d *decomposer) decompose(region geom.AnyPolygon, obstacles []geom.AnyPolygon, history []dtree.Axis, depth int) bool {
	// Step 1: empty guard.
	if region == nil || region.IsEmpty() {
		return false
	}

	// Step 2: coverage stop. When obstacles already cover at least
	// CoverageRatioStop of the region AND what remains free is both
	// small in total and small in its largest contiguous patch, a
	// single drone can already cover it; no further splitting helps.
	if d.isCoverageSatisfied(region, obstacles) {
		d.leaves = append(d.leaves, dtree.NewPartition(region, obstacles, history, depth, d.isSubregionValid(region, obstacles)))
		return true
	}

	// Step 3: depth stop.
	if depth >= d.cfg.MaxDepth {
		isOK := d.isSubregionValid(region, obstacles)
		d.leaves = append(d.leaves, dtree.NewPartition(region, obstacles, history, depth, isOK))
		return isOK
	}

	// Step 4: validity guard before spending effort on axis selection.
	if !d.isSubregionValid(region, obstacles) {
		return false
	}

	// Step 5: axis selection, computed once and reused by both the
	// primary attempt and (if needed) the fallback-axis retry.
	axisCfg := axis.Config{Method: d.cfg.Method, TieThreshold: d.cfg.TieThreshold}
	result, err := axis.Select(region, obstacles, axisCfg)
	if err != nil {
		return false
	}

	if d.attemptPartition(region, result, history, depth) {
		return true
	}

	// Step 9: single fallback-axis retry. Re-running axis.Select on the
	// same region/obstacles/config is deterministic, so this only helps
	// when the fallback actually lands on the other axis; if it picks
	// the same axis again (the common case once degenerate-cut or
	// validity already ruled it out), the retry is a documented no-op
	// (fallback-idempotence), matching the original's own
	// best_axis==fallback_axis short-circuit.
	if d.cfg.AllowFallbackAxis {
		fallback, err := axis.Select(region, obstacles, axisCfg)
		if err == nil && fallback.Chosen != result.Chosen {
			if d.attemptPartition(region, fallback, history, depth) {
				return true
			}
		}
	}

	return false
}

// attemptPartition checks result for a degenerate cut, validates both
// children, and recurses into each. It returns true if at least one
// descendant recorded a leaf.
func (d *decomposer) attemptPartition(region geom.AnyPolygon, result axis.Result, history []dtree.Axis, depth int) bool {
	if isDegenerateCut(region, result) {
		return false
	}

	chosenAxis := toDtreeAxis(result.Chosen)
	childHistory := append(append([]dtree.Axis{}, history...), chosenAxis)

	leftOK := d.isSubregionValid(result.LeftRegion, result.LeftObstacles)
	rightOK := d.isSubregionValid(result.RightRegion, result.RightObstacles)
	if !leftOK && !rightOK {
		return false
	}

	var produced bool
	if leftOK && d.decompose(result.LeftRegion, result.LeftObstacles, childHistory, depth+1) {
		produced = true
	}
	if rightOK && d.decompose(result.RightRegion, result.RightObstacles, childHistory, depth+1) {
		produced = true
	}
	return produced
}

// isDegenerateCut reports whether result's division point coincides
// with one of region's bounds on the chosen axis, or left divider.
// DivideRegion's degenerate-cut guard already rejected it by leaving a
// subregion empty.
func isDegenerateCut(region geom.AnyPolygon, result axis.Result) bool {
	if result.LeftRegion == nil || result.LeftRegion.IsEmpty() ||
		result.RightRegion == nil || result.RightRegion.IsEmpty() {
		return true
	}
	b := region.Bounds()
	if result.Chosen == strip.AxisX {
		return result.DivisionPoint <= b.MinX || result.DivisionPoint >= b.MaxX
	}
	return result.DivisionPoint <= b.MinY || result.DivisionPoint >= b.MaxY
}

func toDtreeAxis(a strip.Axis) dtree.Axis {
	if a == strip.AxisY {
		return dtree.AxisY
	}
	return dtree.AxisX
}

// isCoverageSatisfied mirrors _decompose's stop rule exactly: the
// obstacle-covered fraction of region's area must reach
// CoverageRatioStop, AND the leftover free area, AND the largest
// contiguous free patch within it, must both fall below DroneThreshold.
func (d *decomposer) isCoverageSatisfied(region geom.AnyPolygon, obstacles []geom.AnyPolygon) bool {
	regionArea := region.Area()
	obstacleArea := sumArea(obstacles)

	coverageRatio := 1.0
	if regionArea > 1e-12 {
		coverageRatio = obstacleArea / regionArea
	}
	if coverageRatio < d.cfg.CoverageRatioStop {
		return false
	}

	freeArea := regionArea - obstacleArea
	if freeArea >= d.cfg.DroneThreshold {
		return false
	}
	return largestFreeSpaceArea(region, obstacles) < d.cfg.DroneThreshold
}

// isSubregionValid is the validity guard applied both before axis
// selection and to each candidate child: the region must be non-empty,
// geometrically valid, meet the minimum-dimension floor on both axes,
// not be already fully obstacle-covered, and (when coverage is high
// enough to matter) leave a large-enough contiguous free patch; an
// optional stricter single-connected-component check may additionally
// apply.
func (d *decomposer) isSubregionValid(region geom.AnyPolygon, obstacles []geom.AnyPolygon) bool {
	if region == nil || region.IsEmpty() {
		return false
	}
	if _, err := geom.Validate(region); err != nil {
		return false
	}
	b := region.Bounds()
	if b.Width() < d.cfg.MinDimensionThreshold || b.Height() < d.cfg.MinDimensionThreshold {
		return false
	}

	regionArea := region.Area()
	obstacleArea := sumArea(obstacles)
	if obstacleArea >= regionArea-1e-9 {
		return false
	}

	coverageRatio := 1.0
	if regionArea > 1e-12 {
		coverageRatio = obstacleArea / regionArea
	}
	if coverageRatio >= d.cfg.CoverageRatioStop {
		if largestFreeSpaceArea(region, obstacles) < d.cfg.DroneThreshold {
			return false
		}
	}

	if d.cfg.CheckConnectivity {
		if largestFreeSpaceArea(region, obstacles) < d.cfg.DroneThreshold {
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

// largestFreeSpaceArea is the raster approximation of _compute_largest_
// free_space's exact polygon-difference query: geom.LargestFreeAreaRatio
// already normalizes by region.Area(), so this multiplies back up to an
// absolute area comparable to DroneThreshold.
func largestFreeSpaceArea(region geom.AnyPolygon, obstacles []geom.AnyPolygon) float64 {
	return geom.LargestFreeAreaRatio(region, obstacles) * region.Area()
}
