package strip

import (
	"math"
	"testing"

	"github.com/aerogrid/dronepart/geom"
)

func square(minX, minY, maxX, maxY float64) geom.Polygon {
	return geom.NewPolygon([]geom.Point{
		{X: minX, Y: minY}, {X: maxX, Y: minY}, {X: maxX, Y: maxY}, {X: minX, Y: maxY},
	})
}

func TestNewRejectsInvalidAxisAndEmptyRegion(t *testing.T) {
	region := square(0, 0, 10, 10)
	if _, err := New(region, nil, Axis(99)); err == nil {
		t.Error("expected error for invalid axis")
	}
	empty := geom.Polygon{}
	if _, err := New(empty, nil, AxisX); err == nil {
		t.Error("expected error for empty region")
	}
}

func TestEventsIncludeRegionBoundsAndObstacleVertices(t *testing.T) {
	region := square(0, 0, 10, 10)
	obstacle := square(3, 3, 5, 5)
	mgr, err := New(region, []geom.AnyPolygon{obstacle}, AxisX)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	events := mgr.Events()
	want := map[float64]bool{0: true, 10: true, 3: true, 5: true}
	if len(events) != len(want) {
		t.Fatalf("Events() = %v, want 4 unique values", events)
	}
	for _, e := range events {
		if !want[e] {
			t.Errorf("unexpected event %v", e)
		}
	}
}

func TestCumulativePerimeterIsMonotone(t *testing.T) {
	region := square(0, 0, 10, 10)
	obstacle := square(3, 3, 5, 5)
	mgr, err := New(region, []geom.AnyPolygon{obstacle}, AxisX)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	events := mgr.Events()
	var prev float64
	for i, e := range events {
		v, ok := mgr.CumulativePerimeter(e)
		if !ok {
			continue // first event has no cumulative entry (no strip ends there)
		}
		if i > 0 && v < prev-1e-9 {
			t.Errorf("cumulative perimeter not monotone at event %v: %v < %v", e, v, prev)
		}
		prev = v
	}
}

func TestAccumulatedPerimeterMatchesAtEventsAndInterpolates(t *testing.T) {
	region := square(0, 0, 10, 10)
	obstacle := square(3, 3, 5, 5)
	mgr, err := New(region, []geom.AnyPolygon{obstacle}, AxisX)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	atEnd := mgr.AccumulatedPerimeter(5)
	v, ok := mgr.CumulativePerimeter(5)
	if !ok || math.Abs(atEnd-v) > 1e-9 {
		t.Errorf("AccumulatedPerimeter(5) = %v, want CumulativePerimeter(5) = %v", atEnd, v)
	}
	mid := mgr.AccumulatedPerimeter(4)
	if mid < 0 || mid > atEnd+1e-9 {
		t.Errorf("AccumulatedPerimeter(4) = %v, want in [0, %v]", mid, atEnd)
	}
}

func TestRegionWCRTNoObstacles(t *testing.T) {
	region := square(0, 0, 10, 10)
	mgr, err := New(region, nil, AxisX)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	want := math.Hypot(10, 10)
	if math.Abs(mgr.RegionWCRT()-want) > 1e-9 {
		t.Errorf("RegionWCRT() = %v, want %v", mgr.RegionWCRT(), want)
	}
}

func TestWCRTRightDecreasesAsDivisionPointIncreases(t *testing.T) {
	region := square(0, 0, 10, 10)
	obstacle := square(3, 3, 5, 5)
	mgr, err := New(region, []geom.AnyPolygon{obstacle}, AxisX)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	early := mgr.WCRTRight(1)
	late := mgr.WCRTRight(9)
	if late >= early {
		t.Errorf("WCRTRight(9)=%v should be < WCRTRight(1)=%v as the diagonal term shrinks", late, early)
	}
}

func TestTotalObstaclePerimeterPositiveWithObstacle(t *testing.T) {
	region := square(0, 0, 10, 10)
	obstacle := square(3, 3, 5, 5)
	mgr, err := New(region, []geom.AnyPolygon{obstacle}, AxisX)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if mgr.TotalObstaclePerimeter() <= 0 {
		t.Errorf("TotalObstaclePerimeter() = %v, want > 0", mgr.TotalObstaclePerimeter())
	}
}
