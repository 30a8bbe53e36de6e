// Package preprocess validates and normalizes a region and its raw
// obstacle coordinate lists before any decomposition strategy sees
// them: rejecting degenerate geometry, clipping obstacles to the
// region boundary, discarding obstacles that fall entirely outside it,
// and merging overlapping or adjacent obstacles into a disjoint set.
//
// Grounded on preprocessing.py's RegionWithObstacles class
// (original_source): New mirrors __init__'s validate-region ->
// create-and-clip-obstacles -> merge-obstacles pipeline, and
// CheckConnectivity mirrors check_region_connectivity.
package preprocess
