package numsolve

import "math"

// newtonDerivativeFloor is the minimum |f'(x)| below which Newton-Raphson
// is considered numerically unsafe and control falls back to Brent.
const newtonDerivativeFloor = 1e-7

// newton runs plain Newton-Raphson from x0, reporting ok=false the moment
// the derivative is too small or the iteration budget is exhausted without
// reaching tol.
func newton(f, fPrime func(float64) float64, x0, tol float64, maxIter int) (root float64, ok bool) {
	x := x0
	for i := 0; i < maxIter; i++ {
		fx := f(x)
		if math.Abs(fx) < tol {
			return x, true
		}
		fpx := fPrime(x)
		if math.Abs(fpx) < newtonDerivativeFloor {
			return 0, false
		}
		xNew := x - fx/fpx
		if math.Abs(xNew-x) < tol {
			return xNew, true
		}
		x = xNew
	}
	return 0, false
}

// DefensiveNewton attempts plain Newton-Raphson from x0; if the derivative
// collapses below 1e-7 or the iteration budget is exhausted without
// reaching tol, it falls back to Brent over bracket, which is assumed to
// satisfy Brent's sign-change precondition.
//
// Complexity: O(maxIterNewton) evaluations of f/f', plus, on fallback,
// O(maxIterBrent) evaluations of f.
func DefensiveNewton(f, fPrime func(float64) float64, x0 float64, bracket [2]float64, tol float64, maxIterNewton, maxIterBrent int) (float64, error) {
	if root, ok := newton(f, fPrime, x0, tol, maxIterNewton); ok {
		return root, nil
	}
	return Brent(f, bracket[0], bracket[1], tol, maxIterBrent)
}
