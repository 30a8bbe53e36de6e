// Package axis implements the optimal axis selector: for a region and
// its obstacles, it evaluates both candidate sweep axes (X and Y),
// balances WCRT across the cut each axis would produce, and picks the
// axis that minimizes normalized WCRT imbalance (NWCRT), breaking near
// ties by squareness (MSDU, mean-squared-deviation-from-unit-squareness,
// inverted so larger is more square).
//
// Grounded on optimal_axis_selection.py's OptimalAxisSelection class
// (original_source): evaluate_axis builds a strip.Manager and
// divider.Divider per axis and memoizes the resulting division point and
// subregions so select_best_axis's caller never recomputes them.
package axis
