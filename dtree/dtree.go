// Package dtree defines the shared partition record produced by every
// space-partitioning strategy in this module (the obstacle-aware
// hierarchical decomposition and both KD-tree baselines), so downstream
// consumers (the partition façade, stats, visualization) can treat all
// three strategies uniformly.
//
// Grounded on core.Graph/core.Vertex's plain-struct-plus-accessor style:
// a partition is data, not behavior, so it exposes fields directly
// rather than wrapping them behind an interface.
package dtree

import "github.com/aerogrid/dronepart/geom"

// Axis names a cut direction; duplicated from the strip package's Axis
// (rather than imported) so dtree has no dependency on strip, keeping it
// importable by every strategy package without a cycle.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Partition is one terminal node of a space-partitioning run: the
// sub-region assigned to a single drone dispatch point, the obstacles
// that still intersect it, the sequence of axis cuts that produced it,
// and whether it passed every validity guard on the path to being
// recorded.
type Partition struct {
	SubRegion   geom.AnyPolygon
	Obstacles   []geom.AnyPolygon
	AxisHistory []Axis
	Depth       int
	Valid       bool
}

// NewPartition constructs a Partition, copying axisHistory and obstacles
// defensively so the caller's recursion state can keep mutating its own
// working slices without aliasing the recorded partition.
func NewPartition(region geom.AnyPolygon, obstacles []geom.AnyPolygon, axisHistory []Axis, depth int, valid bool) Partition {
	obsCopy := make([]geom.AnyPolygon, len(obstacles))
	copy(obsCopy, obstacles)
	historyCopy := make([]Axis, len(axisHistory))
	copy(historyCopy, axisHistory)
	return Partition{
		SubRegion:   region,
		Obstacles:   obsCopy,
		AxisHistory: historyCopy,
		Depth:       depth,
		Valid:       valid,
	}
}
