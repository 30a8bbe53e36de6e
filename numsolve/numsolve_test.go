package numsolve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerogrid/dronepart/numsolve"
)

func TestBrentFindsRootOfCubic(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 2 }
	root, err := numsolve.Brent(f, 1, 2, 1e-7, 100)
	require.NoError(t, err)
	assert.Less(t, math.Abs(f(root)), 1e-5)
}

func TestBrentInvalidBracket(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 } // always positive
	_, err := numsolve.Brent(f, -1, 1, 1e-7, 100)
	assert.ErrorIs(t, err, numsolve.ErrInvalidBracket)
}

func TestBrentLinearRootExact(t *testing.T) {
	f := func(x float64) float64 { return 2*x - 4 } // root at x=2
	root, err := numsolve.Brent(f, 0, 10, 1e-9, 100)
	require.NoError(t, err)
	assert.InDelta(t, 2, root, 1e-6)
}

func TestDefensiveNewtonConvergesViaNewton(t *testing.T) {
	f := func(x float64) float64 { return x*x - 4 }
	fPrime := func(x float64) float64 { return 2 * x }
	root, err := numsolve.DefensiveNewton(f, fPrime, 3, [2]float64{0, 10}, 1e-9, 100, 100)
	require.NoError(t, err)
	assert.InDelta(t, 2, root, 1e-6)
}

func TestDefensiveNewtonFallsBackOnZeroDerivative(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 2 }
	// fPrime is deliberately wrong (always ~0) to force the Brent fallback.
	fPrime := func(x float64) float64 { return 1e-12 }
	root, err := numsolve.DefensiveNewton(f, fPrime, 1.5, [2]float64{1, 2}, 1e-7, 50, 100)
	require.NoError(t, err)
	assert.Less(t, math.Abs(f(root)), 1e-4)
}
