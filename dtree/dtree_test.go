package dtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aerogrid/dronepart/dtree"
	"github.com/aerogrid/dronepart/geom"
)

func TestNewPartitionCopiesSlices(t *testing.T) {
	region := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	obstacles := []geom.AnyPolygon{region}
	history := []dtree.Axis{dtree.AxisX, dtree.AxisY}

	p := dtree.NewPartition(region, obstacles, history, 2, true)

	obstacles[0] = nil
	history[0] = dtree.AxisY

	assert.NotNil(t, p.Obstacles[0], "Partition.Obstacles aliases caller's slice")
	assert.Equal(t, dtree.AxisX, p.AxisHistory[0], "Partition.AxisHistory aliases caller's slice")
	assert.Equal(t, 2, p.Depth)
	assert.True(t, p.Valid)
}

func TestAxisString(t *testing.T) {
	assert.Equal(t, "x", dtree.AxisX.String())
	assert.Equal(t, "y", dtree.AxisY.String())
}
