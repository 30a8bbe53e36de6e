package axis

import (
	"testing"

	"github.com/aerogrid/dronepart/geom"
)

func square(minX, minY, maxX, maxY float64) geom.Polygon {
	return geom.NewPolygon([]geom.Point{
		{X: minX, Y: minY}, {X: maxX, Y: minY}, {X: maxX, Y: maxY}, {X: minX, Y: maxY},
	})
}

func TestSelectOnEmptySquareReturnsValidSubregions(t *testing.T) {
	region := square(0, 0, 10, 10)
	result, err := Select(region, nil, DefaultConfig())
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if result.LeftRegion == nil || result.RightRegion == nil {
		t.Fatal("expected both subregions to be populated")
	}
	if result.LeftRegion.Area()+result.RightRegion.Area() <= 0 {
		t.Error("expected non-zero combined subregion area")
	}
}

func TestSelectChoosesOneOfTheTwoEvaluatedAxes(t *testing.T) {
	// A very wide rectangle with one centered obstacle; we only assert
	// Select picks one of the two evaluated axes and returns metrics for
	// both.
	region := square(0, 0, 100, 10)
	obstacle := square(40, 2, 60, 8)
	result, err := Select(region, []geom.AnyPolygon{obstacle}, DefaultConfig())
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if result.Chosen != AxisX && result.Chosen != AxisY {
		t.Errorf("Chosen = %v, want AxisX or AxisY", result.Chosen)
	}
	if len(result.MetricsByAxis) != 2 {
		t.Errorf("MetricsByAxis has %d entries, want 2", len(result.MetricsByAxis))
	}
}

func TestSquareMeasureDegenerateCases(t *testing.T) {
	point := geom.Polygon{Ring: []geom.Point{{X: 5, Y: 5}}}
	if got := squareMeasure(point); got != 1.0 {
		t.Errorf("squareMeasure(degenerate point) = %v, want 1.0", got)
	}
	wide := square(0, 0, 10, 10)
	if got := squareMeasure(wide); got != 1.0 {
		t.Errorf("squareMeasure(square) = %v, want 1.0", got)
	}
}
