// Package decomposition implements the obstacle-aware hierarchical
// recursive binary-space decomposition: given a region and its polygonal
// obstacles, it recursively cuts along the axis package's chosen axis
// until every leaf sub-region satisfies the drone-dispatch coverage
// stop, a depth limit, or a minimum-dimension floor, producing the set
// of dtree.Partition leaves that downstream dispatch planning consumes.
//
// Grounded on hierarchical_decomposition_algorithm.py's
// HierarchicalDecomposition class (original_source): Decompose mirrors
// _decompose's ten-step contract (empty guard, coverage stop, depth
// stop, validity guard, axis selection, degenerate-cut guard, left/right
// validity, recursion, single fallback-axis retry, and a top-level
// track-back that records the whole region if nothing else validated).
// The functional-options Config/Option pair is grounded on
// dfs.DFSOptions/dfs.Option.
package decomposition
