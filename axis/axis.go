package axis

import (
	"math"

	"github.com/aerogrid/dronepart/divider"
	"github.com/aerogrid/dronepart/geom"
	"github.com/aerogrid/dronepart/strip"
)

// AxisX and AxisY name the two candidate sweep axes a region can be cut
// along; re-exported from strip so callers of this package need not
// import strip just to name an axis.
const (
	AxisX = strip.AxisX
	AxisY = strip.AxisY
)

const (
	squarenessEps       = 1e-9
	nwcrtDenominatorEps = 1e-9
)

// Metrics holds one axis's evaluation: its normalized WCRT imbalance, its
// squareness tie-break score, the division point found, and the
// resulting subregions (memoized so Select's caller never recomputes
// them).
type Metrics struct {
	NWCRT          float64
	MSDU           float64
	DivisionPoint  float64
	LeftRegion     geom.AnyPolygon
	LeftObstacles  []geom.AnyPolygon
	RightRegion    geom.AnyPolygon
	RightObstacles []geom.AnyPolygon
}

// Result is the outcome of Select: the chosen axis, both axes' Metrics,
// and the chosen axis's subregions pulled to the top level for
// convenience.
type Result struct {
	Chosen         strip.Axis
	MetricsByAxis  map[strip.Axis]Metrics
	DivisionPoint  float64
	LeftRegion     geom.AnyPolygon
	LeftObstacles  []geom.AnyPolygon
	RightRegion    geom.AnyPolygon
	RightObstacles []geom.AnyPolygon
}

// Config parameterizes Select: which numerical method the divider uses,
// and the NWCRT-tie threshold below which MSDU breaks the tie.
type Config struct {
	Method       divider.Method
	TieThreshold float64
}

// DefaultConfig matches the original's defaults: Newton-Raphson (with
// Brent fallback) and a tie threshold of 1e-2.
func DefaultConfig() Config {
	return Config{Method: divider.MethodNewton, TieThreshold: 1e-2}
}

// Select evaluates both axes for region/obstacles and returns the one
// that minimizes NWCRT, breaking a near-tie (|NWCRT_x-NWCRT_y| <=
// cfg.TieThreshold) in favor of the more-square (larger MSDU) axis.
func Select(region geom.AnyPolygon, obstacles []geom.AnyPolygon, cfg Config) (Result, error) {
	metricsX, err := evaluateAxis(region, obstacles, strip.AxisX, cfg.Method)
	if err != nil {
		return Result{}, err
	}
	metricsY, err := evaluateAxis(region, obstacles, strip.AxisY, cfg.Method)
	if err != nil {
		return Result{}, err
	}

	chosen := strip.AxisX
	chosenMetrics := metricsX
	if math.Abs(metricsX.NWCRT-metricsY.NWCRT) <= cfg.TieThreshold {
		if metricsY.MSDU > metricsX.MSDU {
			chosen = strip.AxisY
			chosenMetrics = metricsY
		}
	} else if metricsY.NWCRT < metricsX.NWCRT {
		chosen = strip.AxisY
		chosenMetrics = metricsY
	}

	return Result{
		Chosen:         chosen,
		MetricsByAxis:  map[strip.Axis]Metrics{strip.AxisX: metricsX, strip.AxisY: metricsY},
		DivisionPoint:  chosenMetrics.DivisionPoint,
		LeftRegion:     chosenMetrics.LeftRegion,
		LeftObstacles:  chosenMetrics.LeftObstacles,
		RightRegion:    chosenMetrics.RightRegion,
		RightObstacles: chosenMetrics.RightObstacles,
	}, nil
}

// evaluateAxis builds the strip/divider pair for one axis, finds its
// division point, splits the region, and computes NWCRT/MSDU.
func evaluateAxis(region geom.AnyPolygon, obstacles []geom.AnyPolygon, a strip.Axis, method divider.Method) (Metrics, error) {
	sp, err := strip.New(region, obstacles, a)
	if err != nil {
		return Metrics{}, err
	}
	d := divider.New(sp, method)

	divisionPoint, err := d.FindOptimalDivisionPoint()
	if err != nil {
		return Metrics{}, err
	}

	leftRegion, leftObstacles, rightRegion, rightObstacles, err := divider.DivideRegion(region, obstacles, a, divisionPoint)
	if err != nil {
		return Metrics{}, err
	}

	leftSP, err := strip.New(leftRegion, leftObstacles, a)
	if err != nil {
		return Metrics{}, err
	}
	rightSP, err := strip.New(rightRegion, rightObstacles, a)
	if err != nil {
		return Metrics{}, err
	}

	wcrtLeft := leftSP.RegionWCRT()
	wcrtRight := rightSP.RegionWCRT()
	sumWCRT := wcrtLeft + wcrtRight
	diffWCRT := math.Abs(wcrtLeft - wcrtRight)

	nwcrt := 0.0
	if sumWCRT > nwcrtDenominatorEps {
		nwcrt = diffWCRT / sumWCRT
	}

	sqLeft := squareMeasure(leftRegion)
	sqRight := squareMeasure(rightRegion)
	msdu := squarenessMSDU(sqLeft, sqRight)

	return Metrics{
		NWCRT:          nwcrt,
		MSDU:           msdu,
		DivisionPoint:  divisionPoint,
		LeftRegion:     leftRegion,
		LeftObstacles:  leftObstacles,
		RightRegion:    rightRegion,
		RightObstacles: rightObstacles,
	}, nil
}

// squareMeasure returns w/h for region's bounding box: 1.0 if both
// dimensions are degenerate, 0.0 if exactly one is, else the raw
// (unclamped) width/height ratio. Unlike geom.AspectRatio this is not
// symmetric in w and h — MSDU's (sq-1)^2 term needs the signed ratio.
func squareMeasure(region geom.AnyPolygon) float64 {
	if region == nil || region.IsEmpty() {
		return 1.0
	}
	b := region.Bounds()
	w, h := b.Width(), b.Height()
	switch {
	case w < squarenessEps && h < squarenessEps:
		return 1.0
	case w < squarenessEps || h < squarenessEps:
		return 0.0
	default:
		return w / h
	}
}

// squarenessMSDU computes the inverted mean-squared-deviation-from-unit-
// squareness across both subregions: larger means more square overall.
func squarenessMSDU(sqLeft, sqRight float64) float64 {
	meanSqDev := 0.5 * ((sqLeft-1.0)*(sqLeft-1.0) + (sqRight-1.0)*(sqRight-1.0))
	return 1.0 / (meanSqDev + squarenessEps)
}
