package kdtree

import (
	"testing"

	"github.com/aerogrid/dronepart/geom"
)

func square(minX, minY, maxX, maxY float64) geom.Polygon {
	return geom.NewPolygon([]geom.Point{
		{X: minX, Y: minY}, {X: maxX, Y: minY}, {X: maxX, Y: maxY}, {X: minX, Y: maxY},
	})
}

func TestNaivePartitionRejectsNilRegion(t *testing.T) {
	if _, err := NaivePartition(nil, nil); err != ErrNilRegion {
		t.Errorf("NaivePartition(nil, ...) error = %v, want ErrNilRegion", err)
	}
}

func TestNaivePartitionSplitsAtMidpointRegardlessOfObstacles(t *testing.T) {
	region := square(0, 0, 10, 10)
	obstacle := square(8, 0, 9, 10) // entirely off-center; naive ignores this
	leaves, err := NaivePartition(region, []geom.AnyPolygon{obstacle}, WithMaxDepth(1))
	if err != nil {
		t.Fatalf("NaivePartition() error = %v", err)
	}
	if len(leaves) != 2 {
		t.Fatalf("got %d leaves, want 2 (one midpoint split)", len(leaves))
	}
	for _, leaf := range leaves {
		b := leaf.SubRegion.Bounds()
		if b.Width() > 5.0001 {
			t.Errorf("leaf width = %v, want <= 5 (midpoint cut)", b.Width())
		}
	}
}

func TestNaivePartitionAxisAlternatesByDepth(t *testing.T) {
	region := square(0, 0, 10, 10)
	leaves, err := NaivePartition(region, nil, WithMaxDepth(2))
	if err != nil {
		t.Fatalf("NaivePartition() error = %v", err)
	}
	for _, leaf := range leaves {
		if len(leaf.AxisHistory) == 0 {
			continue
		}
		if leaf.AxisHistory[0].String() != "x" {
			t.Errorf("first axis = %v, want x", leaf.AxisHistory[0])
		}
	}
}

func TestHalfPerimeterPartitionRejectsNilRegion(t *testing.T) {
	if _, err := HalfPerimeterPartition(nil, nil); err != ErrNilRegion {
		t.Errorf("HalfPerimeterPartition(nil, ...) error = %v, want ErrNilRegion", err)
	}
}

func TestHalfPerimeterPartitionWithNoObstaclesStillProducesLeaves(t *testing.T) {
	region := square(0, 0, 10, 10)
	leaves, err := HalfPerimeterPartition(region, nil, WithMaxDepth(2))
	if err != nil {
		t.Fatalf("HalfPerimeterPartition() error = %v", err)
	}
	if len(leaves) == 0 {
		t.Fatal("expected at least one leaf")
	}
	var total float64
	for _, leaf := range leaves {
		total += leaf.SubRegion.Area()
	}
	if total > region.Area()+1e-6 {
		t.Errorf("leaves cover %v, exceeds region area %v", total, region.Area())
	}
}

func TestHalfPerimeterPartitionBiasesCutTowardObstacleHeavySide(t *testing.T) {
	region := square(0, 0, 10, 10)
	obstacle := square(0, 0, 2, 10) // obstacle concentrated near the low-x edge
	leaves, err := HalfPerimeterPartition(region, []geom.AnyPolygon{obstacle}, WithMaxDepth(1))
	if err != nil {
		t.Fatalf("HalfPerimeterPartition() error = %v", err)
	}
	if len(leaves) != 2 {
		t.Fatalf("got %d leaves, want 2", len(leaves))
	}
	// The only counted obstacle edge is x=2, so the cut lands at x=2,
	// left of the midpoint.
	if w := leaves[0].SubRegion.Bounds().Width(); w >= 5 {
		t.Errorf("left leaf width = %v, want < 5 (cut biased toward the obstacle)", w)
	}
}

func TestRunPartitionRespectsMinDimensionThreshold(t *testing.T) {
	// A midpoint cut on a 10-wide region produces two 5-wide halves;
	// with a min-dimension threshold of 6 neither child is usable, so
	// the whole region must be stored unsplit.
	region := square(0, 0, 10, 10)
	leaves, err := NaivePartition(region, nil, WithMaxDepth(10), WithMinDimensionThreshold(6))
	if err != nil {
		t.Fatalf("NaivePartition() error = %v", err)
	}
	if len(leaves) != 1 {
		t.Fatalf("got %d leaves, want 1 (threshold blocks the only possible split)", len(leaves))
	}
	if leaves[0].SubRegion.Bounds().Width() != 10 {
		t.Errorf("leaf width = %v, want 10 (unsplit)", leaves[0].SubRegion.Bounds().Width())
	}
}
