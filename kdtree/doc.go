// Package kdtree implements the two fixed-axis-order KD-tree partitioning
// baselines the obstacle-aware hierarchical decomposition is compared
// against: NaivePartition, which always cuts at the bounding-box
// midpoint, and HalfPerimeterPartition, which cuts at the first strip
// event where cumulative obstacle perimeter crosses half the region's
// total. Both alternate axis x/y/x/y... by depth rather than selecting
// the better axis, and share the same recursion shape, stopping rules,
// and optional advanced checks.
//
// Grounded on kd_tree_naive_decomposition.py's NaiveKDTreePartitioning
// and kd_tree_perimeter_decomposition.py's KDTreePartitioning
// (original_source): naive_kd_partition and kd_tree_partition collapse
// into the shared runPartition, parameterized by a divisionFunc closure
// per strategy.
package kdtree
