package divider

import (
	"math"

	"github.com/aerogrid/dronepart/geom"
	"github.com/aerogrid/dronepart/numsolve"
	"github.com/aerogrid/dronepart/strip"
)

// Method selects the root-finding strategy FindOptimalDivisionPoint uses
// once a bracket is established.
type Method int

const (
	MethodBrent Method = iota
	MethodNewton
)

const (
	degenerateNudge       = 1e-6
	derivativeStep        = 1e-6
	defaultTol            = 1e-7
	defaultMaxIterNewton  = 100
	defaultMaxIterBrent   = 100
	degenerateEdgeEps     = 1e-9
	zeroPerimeterEps      = 1e-9
)

// Divider finds and applies the WCRT-balancing cut for one axis, built
// from a strip.Manager already constructed for that axis.
type Divider struct {
	sp     *strip.Manager
	method Method
}

// New builds a Divider over sp using method for the root search.
func New(sp *strip.Manager, method Method) *Divider {
	return &Divider{sp: sp, method: method}
}

// g is WCRT_left(cutCoord) - WCRT_right(cutCoord); its root is the
// balance point the divider searches for.
func (d *Divider) g(cutCoord float64) float64 {
	return d.sp.WCRTAt(cutCoord) - d.sp.WCRTRight(cutCoord)
}

// gPrime is a central-difference numerical derivative of g, used only by
// the Newton branch of apply_numerical_method.
func (d *Divider) gPrime(cutCoord float64) float64 {
	return (d.g(cutCoord+derivativeStep) - d.g(cutCoord-derivativeStep)) / (2 * derivativeStep)
}

// FindStripOfInterest scans every strip for the one most likely to
// contain the WCRT crossing: the first strip whose upper-bound WCRT_left
// exceeds WCRT_right, or, failing that, the strip with the smallest
// |WCRT_left-WCRT_right| gap.
func (d *Divider) FindStripOfInterest() (strip.Record, bool) {
	strips := d.sp.Strips()
	if len(strips) == 0 {
		return strip.Record{}, false
	}

	var best strip.Record
	haveBest := false
	minDiff := math.Inf(1)

	for _, s := range strips {
		wcrtLeft := d.sp.WCRTAt(s.Curr)
		wcrtRight := d.sp.WCRTRight(s.Curr)
		diff := math.Abs(wcrtLeft - wcrtRight)
		if diff < minDiff {
			best = s
			haveBest = true
			minDiff = diff
		}
		if wcrtLeft > wcrtRight {
			return s, true
		}
	}
	return best, haveBest
}

// stripCase classifies a strip as described in DetermineCase's doc.
type stripCase int

const (
	caseEmpty stripCase = 1
	caseRegular stripCase = 2
	caseDegenerate stripCase = 3
)

// DetermineCase classifies s as Case 1 (no obstacle perimeter within the
// strip), Case 2 (obstacles present, no degeneracy), or Case 3 (an
// obstacle edge runs exactly along the strip's upper sweep boundary
// s.Curr, which would make a cut placed there coincide with that edge).
func (d *Divider) DetermineCase(s strip.Record) stripCase {
	perim, _ := d.sp.PerStripPerimeter(s.Prev, s.Curr)
	if perim < zeroPerimeterEps {
		return caseEmpty
	}

	axis := d.sp.Axis()
	for _, obs := range d.sp.Obstacles() {
		if !geom.Intersects(obs, s.Box) {
			continue
		}
		for _, ring := range obs.Rings() {
			n := len(ring)
			for i := 0; i < n; i++ {
				a := ring[i]
				b := ring[(i+1)%n]
				if axis == strip.AxisX {
					if math.Abs(a.X-b.X) < degenerateEdgeEps && math.Abs(a.X-s.Curr) < degenerateEdgeEps {
						return caseDegenerate
					}
				} else {
					if math.Abs(a.Y-b.Y) < degenerateEdgeEps && math.Abs(a.Y-s.Curr) < degenerateEdgeEps {
						return caseDegenerate
					}
				}
			}
		}
	}
	return caseRegular
}

// FindOptimalDivisionPoint locates the cut coordinate that balances WCRT
// across the divide, dispatching to the case 1/2/3 handler for the
// identified strip of interest.
func (d *Divider) FindOptimalDivisionPoint() (float64, error) {
	s, ok := d.FindStripOfInterest()
	if !ok {
		return 0, ErrNoStripOfInterest
	}

	gPrev := d.g(s.Prev)
	gCurr := d.g(s.Curr)

	switch d.DetermineCase(s) {
	case caseEmpty:
		return d.handleCase1(s.Prev, s.Curr, gPrev, gCurr), nil
	case caseDegenerate:
		return d.handleCase3(s.Prev, s.Curr, gPrev, gCurr), nil
	default:
		return d.handleCase2(s.Prev, s.Curr, gPrev, gCurr), nil
	}
}

// handleCase1 and handleCase2 share the original's identical logic: root
// search if g changes sign across the strip, else the upper bound.
func (d *Divider) handleCase1(cPrev, cCurr, gPrev, gCurr float64) float64 {
	if gPrev*gCurr < 0 {
		return d.applyNumericalMethod(cPrev, cCurr)
	}
	return cCurr
}

func (d *Divider) handleCase2(cPrev, cCurr, gPrev, gCurr float64) float64 {
	if gPrev*gCurr < 0 {
		return d.applyNumericalMethod(cPrev, cCurr)
	}
	return cCurr
}

// handleCase3 nudges off the degenerate boundary by degenerateNudge
// before attempting a root search. Preserved exactly from the original,
// including returning cCurr (not cCurr-delta) when g(cCurr-delta) <= 0:
// this is a deliberately-kept ambiguity, not a bug — see DESIGN.md.
func (d *Divider) handleCase3(cPrev, cCurr, gPrev, gCurr float64) float64 {
	cMinusDelta := cCurr - degenerateNudge
	gMinusDelta := d.g(cMinusDelta)

	if gMinusDelta <= 0 {
		return cCurr
	}
	if gPrev*gMinusDelta < 0 {
		return d.applyNumericalMethod(cPrev, cMinusDelta)
	}
	return cCurr
}

// applyNumericalMethod runs the configured root-finder over [a,b].
func (d *Divider) applyNumericalMethod(a, b float64) float64 {
	if d.method == MethodBrent {
		root, err := numsolve.Brent(d.g, a, b, defaultTol, defaultMaxIterBrent)
		if err != nil {
			return b
		}
		return root
	}
	x0 := 0.5 * (a + b)
	root, err := numsolve.DefensiveNewton(d.g, d.gPrime, x0, [2]float64{a, b}, defaultTol, defaultMaxIterNewton, defaultMaxIterBrent)
	if err != nil {
		return b
	}
	return root
}
