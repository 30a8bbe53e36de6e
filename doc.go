// Package dronepart partitions an obstacle-laden 2D region into
// sub-regions small enough for a single drone's round trip to cover.
//
// 🚀 What is dronepart?
//
//	A deterministic, zero-I/O decomposition engine that brings together:
//
//	  • Geometry primitives: polygon validation, clipping, and raster-based
//	    connectivity queries (geom/)
//	  • An obstacle-aware recursive binary-space decomposition that splits
//	    on whichever axis minimizes worst-case round-trip time (decomposition/)
//	  • Two KD-tree baselines — naive midpoint and half-perimeter — for
//	    comparison against the obstacle-aware engine (kdtree/)
//	  • A thin façade wiring preprocessing, a chosen strategy, and aggregate
//	    statistics behind one Run call (partition/)
//
// ✨ Why choose dronepart?
//
//   - Deterministic    — identical inputs always produce identical output
//   - Pure Go          — no cgo, no polygon-boolean C library dependency
//   - Composable       — every sub-package is independently importable
//   - Honest           — never silently fabricates an output; the only
//     user-visible contract is "output is never empty for a valid input"
//
// Under the hood, everything is organized under these subpackages:
//
//	geom/          — Polygon2D/MultiPolygon2D, validity, clipping, raster
//	                 connectivity (largest free-space component, union)
//	numsolve/      — Brent root-finder, defensive Newton-Raphson
//	stats/         — descriptive statistics over a WCRT sample
//	strip/         — event-sweep strip manager, cumulative perimeter, WCRT
//	dtree/         — the Partition record shared by every strategy's output
//	divider/       — obstacle-aware division-point root-finding and region
//	                 clipping
//	axis/          — the NWCRT/MSDU optimal-axis selector
//	decomposition/ — the hierarchical decomposition driver
//	kdtree/        — the naive and half-perimeter KD-tree baselines
//	preprocess/    — region/obstacle validation, clipping, merging
//	partition/     — the Run façade tying every strategy together
//
// Quick ASCII example — a region with one obstacle split along its best
// axis into two sub-regions, each independently re-evaluated:
//
//	+-----------+       +-----+-----+
//	|   [obs]   |  -->  | [ob]|     |
//	|           |       |     |     |
//	+-----------+       +-----+-----+
//
// See DESIGN.md for the grounding ledger and SPEC_FULL.md for the
// complete component-by-component specification this module implements.
//
//	go get github.com/aerogrid/dronepart
package dronepart
