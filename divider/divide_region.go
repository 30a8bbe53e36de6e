package divider

import (
	"github.com/aerogrid/dronepart/geom"
	"github.com/aerogrid/dronepart/strip"
)

// DivideRegion splits region at cutCoord along axis into a "left"/"bottom"
// half and a "right"/"top" half, clipping every obstacle into each half
// via geom.ClipToBox. It returns ErrDegenerateCut if cutCoord coincides
// with a region bound or either resulting subregion is empty.
func DivideRegion(region geom.AnyPolygon, obstacles []geom.AnyPolygon, axis strip.Axis, cutCoord float64) (
	leftRegion geom.AnyPolygon, leftObstacles []geom.AnyPolygon,
	rightRegion geom.AnyPolygon, rightObstacles []geom.AnyPolygon,
	err error,
) {
	b := region.Bounds()

	var leftBox, rightBox geom.Box
	if axis == strip.AxisX {
		if cutCoord <= b.MinX || cutCoord >= b.MaxX {
			return nil, nil, nil, nil, ErrDegenerateCut
		}
		leftBox = geom.Box{MinX: b.MinX, MinY: b.MinY, MaxX: cutCoord, MaxY: b.MaxY}
		rightBox = geom.Box{MinX: cutCoord, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
	} else {
		if cutCoord <= b.MinY || cutCoord >= b.MaxY {
			return nil, nil, nil, nil, ErrDegenerateCut
		}
		leftBox = geom.Box{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: cutCoord}
		rightBox = geom.Box{MinX: b.MinX, MinY: cutCoord, MaxX: b.MaxX, MaxY: b.MaxY}
	}

	leftRegion, leftOK := geom.ClipToBox(region, leftBox)
	rightRegion, rightOK := geom.ClipToBox(region, rightBox)
	if !leftOK || !rightOK {
		return nil, nil, nil, nil, ErrDegenerateCut
	}

	for _, obs := range obstacles {
		if clipped, ok := geom.ClipToBox(obs, leftBox); ok {
			leftObstacles = append(leftObstacles, clipped)
		}
		if clipped, ok := geom.ClipToBox(obs, rightBox); ok {
			rightObstacles = append(rightObstacles, clipped)
		}
	}

	return leftRegion, leftObstacles, rightRegion, rightObstacles, nil
}
