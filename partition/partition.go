package partition

import (
	"github.com/aerogrid/dronepart/decomposition"
	"github.com/aerogrid/dronepart/dtree"
	"github.com/aerogrid/dronepart/geom"
	"github.com/aerogrid/dronepart/kdtree"
	"github.com/aerogrid/dronepart/preprocess"
	"github.com/aerogrid/dronepart/stats"
	"github.com/aerogrid/dronepart/strip"
)

// Result is Run's output: the leaf partitions produced by the chosen
// strategy, each leaf's region-level WCRT, and the summary statistics
// across all of them.
type Result struct {
	Partitions []dtree.Partition
	WCRT       []float64
	Stats      stats.Summary
}

// Run validates region and obstacleCoords via preprocess.New, runs the
// strategy selected by opts (StrategyHierarchical by default), and
// summarizes the worst-case round-trip time of every resulting
// partition.
func Run(region geom.AnyPolygon, obstacleCoords [][]geom.Point, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)

	pre, err := preprocess.New(region, obstacleCoords)
	if err != nil {
		return Result{}, err
	}

	var leaves []dtree.Partition
	switch cfg.Strategy {
	case StrategyKDNaive:
		leaves, err = kdtree.NaivePartition(pre.Region, pre.MergedObstacles, cfg.KDTreeOptions...)
	case StrategyKDHalfPerimeter:
		leaves, err = kdtree.HalfPerimeterPartition(pre.Region, pre.MergedObstacles, cfg.KDTreeOptions...)
	default:
		leaves, err = decomposition.Decompose(pre.Region, pre.MergedObstacles, cfg.DecompositionOptions...)
	}
	if err != nil {
		return Result{}, err
	}
	if len(leaves) == 0 {
		return Result{}, ErrNoPartitions
	}
	if cfg.DebugLogger != nil {
		cfg.DebugLogger.Printf("partition: strategy=%s leaves=%d", cfg.Strategy, len(leaves))
	}

	wcrt := make([]float64, 0, len(leaves))
	for _, leaf := range leaves {
		sp, err := strip.New(leaf.SubRegion, leaf.Obstacles, strip.AxisX)
		if err != nil {
			continue
		}
		wcrt = append(wcrt, sp.RegionWCRT())
	}

	return Result{
		Partitions: leaves,
		WCRT:       wcrt,
		Stats:      stats.Summarize(wcrt),
	}, nil
}
