// Package strip implements the event-sweep strip manager that the
// obstacle-aware divider and optimal axis selector both depend on: given
// a rectangular region, a set of obstacles, and a sweep axis, it builds
// the sorted list of event coordinates (region bounds plus every obstacle
// vertex projected onto the axis), partitions the region into strips
// between consecutive events, and precomputes per-strip and cumulative
// obstacle-perimeter contributions in one sweep over the strips.
//
// What: answers "how much obstacle perimeter lies between the region's
// lower bound and coordinate c" by a linear scan of the events plus one
// partial-strip clip, plus the worst-case round-trip-time (WCRT)
// formulas built on top of it.
//
// Why: the divider's Brent/Newton root search evaluates WCRT imbalance
// at many candidate cut coordinates per recursion node; precomputing
// cumulative perimeter once per axis means each evaluation clips obstacle
// edges against at most one partial strip instead of the whole span.
//
// Grounded on strip_perimeter.py's Strip class (original_source), with
// Shapely's exact polygon-boolean intersection replaced by an
// axis-aligned box clip plus a best-effort polygon-membership test — see
// DESIGN.md for why no geometry-boolean library exists anywhere in the
// example corpus.
//
// Complexity: O(n log n) construction (n = obstacle vertex count, for
// event sorting), O(strips × obstacle edges) perimeter sweep.
package strip
