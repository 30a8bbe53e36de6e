package divider

import (
	"math"
	"testing"

	"github.com/aerogrid/dronepart/geom"
	"github.com/aerogrid/dronepart/strip"
)

func square(minX, minY, maxX, maxY float64) geom.Polygon {
	return geom.NewPolygon([]geom.Point{
		{X: minX, Y: minY}, {X: maxX, Y: minY}, {X: maxX, Y: maxY}, {X: minX, Y: maxY},
	})
}

func TestFindOptimalDivisionPointOnEmptyRegionIsMidpointish(t *testing.T) {
	region := square(0, 0, 10, 10)
	sp, err := strip.New(region, nil, strip.AxisX)
	if err != nil {
		t.Fatalf("strip.New() error = %v", err)
	}
	d := New(sp, MethodBrent)
	cut, err := d.FindOptimalDivisionPoint()
	if err != nil {
		t.Fatalf("FindOptimalDivisionPoint() error = %v", err)
	}
	if cut <= 0 || cut >= 10 {
		t.Errorf("cut = %v, want strictly inside (0,10)", cut)
	}
}

func TestDetermineCaseEmptyStripIsCase1(t *testing.T) {
	region := square(0, 0, 10, 10)
	sp, err := strip.New(region, nil, strip.AxisX)
	if err != nil {
		t.Fatalf("strip.New() error = %v", err)
	}
	d := New(sp, MethodBrent)
	s, ok := d.FindStripOfInterest()
	if !ok {
		t.Fatal("expected a strip of interest")
	}
	if got := d.DetermineCase(s); got != caseEmpty {
		t.Errorf("DetermineCase() = %v, want caseEmpty", got)
	}
}

func TestDetermineCaseWithObstacleIsCase2(t *testing.T) {
	region := square(0, 0, 10, 10)
	// A diamond has no edge parallel to the sweepline, so no strip is
	// Case 3; an axis-aligned square would put a vertical edge on the
	// upper boundary of every strip with perimeter in it.
	obstacle := geom.NewPolygon([]geom.Point{
		{X: 4, Y: 3}, {X: 5, Y: 4}, {X: 4, Y: 5}, {X: 3, Y: 4},
	})
	sp, err := strip.New(region, []geom.AnyPolygon{obstacle}, strip.AxisX)
	if err != nil {
		t.Fatalf("strip.New() error = %v", err)
	}
	d := New(sp, MethodBrent)
	foundNonEmpty := false
	for _, s := range sp.Strips() {
		if c := d.DetermineCase(s); c == caseRegular {
			foundNonEmpty = true
		}
	}
	if !foundNonEmpty {
		t.Error("expected at least one Case 2 strip with the obstacle present")
	}
}

func TestDivideRegionSplitsAreaInHalf(t *testing.T) {
	region := square(0, 0, 10, 10)
	leftRegion, _, rightRegion, _, err := DivideRegion(region, nil, strip.AxisX, 5)
	if err != nil {
		t.Fatalf("DivideRegion() error = %v", err)
	}
	if math.Abs(leftRegion.Area()-50) > 1e-6 || math.Abs(rightRegion.Area()-50) > 1e-6 {
		t.Errorf("areas = %v/%v, want 50/50", leftRegion.Area(), rightRegion.Area())
	}
}

func TestDivideRegionRejectsCutOnBoundary(t *testing.T) {
	region := square(0, 0, 10, 10)
	_, _, _, _, err := DivideRegion(region, nil, strip.AxisX, 0)
	if err == nil {
		t.Error("expected ErrDegenerateCut for a cut coinciding with the region bound")
	}
}

func TestDivideRegionClipsObstaclesToEachSide(t *testing.T) {
	region := square(0, 0, 10, 10)
	obstacle := square(3, 3, 5, 5)
	_, leftObs, _, rightObs, err := DivideRegion(region, []geom.AnyPolygon{obstacle}, strip.AxisX, 4)
	if err != nil {
		t.Fatalf("DivideRegion() error = %v", err)
	}
	if len(leftObs) != 1 || len(rightObs) != 1 {
		t.Errorf("expected the straddling obstacle on both sides, got left=%d right=%d", len(leftObs), len(rightObs))
	}
}
