// Package numsolve provides scalar root-finding for the decomposition
// engine's division-point search: Brent's method as the robust bracketed
// solver, and a defensive Newton-Raphson that falls back to Brent when the
// derivative vanishes or a step fails to converge.
//
// What: given a monotone-ish continuous function g on [a,b] with a sign
// change, find c such that g(c) ~= 0.
//
// Why: the obstacle-aware divider's Case 1/2/3 handlers reduce "find the cut
// line that balances WCRT across the divide" to a 1D root-finding problem;
// this package is the only place that numeric solve lives.
//
// Errors: ErrInvalidBracket (see errors.go), returned only when the input
// bracket has no sign change. Neither solver errors on exhausting its
// iteration budget; both silently return their best approximation, per
// the original's behavior.
//
// Complexity: O(maxIter) evaluations of f per call.
package numsolve
